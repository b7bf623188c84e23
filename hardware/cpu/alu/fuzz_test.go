// This file is part of aluoracle.
//
// aluoracle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// aluoracle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with aluoracle.  If not, see <https://www.gnu.org/licenses/>.

package alu_test

import (
	"testing"

	"github.com/retrocheck/aluoracle/hardware/cpu/alu"
)

func FuzzArithmetic(f *testing.F) {
	f.Add(uint8(0x79), uint8(0x01), false, true)
	f.Add(uint8(0xff), uint8(0x01), true, false)
	f.Add(uint8(0x00), uint8(0x01), true, true)

	f.Fuzz(func(t *testing.T, a uint8, v uint8, carry bool, decimal bool) {
		var c uint8
		if carry {
			c = 1
		}
		mode := alu.Binary
		if decimal {
			mode = alu.Decimal
		}

		r, fl := alu.Add(a, v, c, mode)
		if fl.Zero != (r == 0) || fl.Negative != (r >= 0x80) {
			t.Errorf("adc %02x %02x c=%d %s: inconsistent flags %s for %02x", a, v, c, mode, fl, r)
		}

		r, fl = alu.Subtract(a, v, c, mode)
		if fl.Zero != (r == 0) || fl.Negative != (r >= 0x80) {
			t.Errorf("sbc %02x %02x c=%d %s: inconsistent flags %s for %02x", a, v, c, mode, fl, r)
		}
		if fl.Carry != (int(a)+int(c)-1 >= int(v)) {
			t.Errorf("sbc %02x %02x c=%d %s: carry flag %v", a, v, c, mode, fl.Carry)
		}
	})
}
