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

package registers_test

import (
	"testing"

	"github.com/retrocheck/aluoracle/curated"
	"github.com/retrocheck/aluoracle/hardware/cpu/registers"
	"github.com/retrocheck/aluoracle/test"
)

func TestChainDecimal(t *testing.T) {
	sr := registers.NewStatusRegister()
	sr.DecimalMode = true

	// 1234 + 0999 = 2233
	r, err := registers.Chain(registers.OpADC, []uint8{0x34, 0x12}, []uint8{0x99, 0x09}, &sr)
	test.DemandSuccess(t, err)
	test.ExpectEquivalence(t, r, []uint8{0x33, 0x22})
	test.ExpectEquality(t, sr.Carry, false)

	// 2233 - 0999 = 1234
	sr.Carry = true
	r, err = registers.Chain(registers.OpSBC, r, []uint8{0x99, 0x09}, &sr)
	test.DemandSuccess(t, err)
	test.ExpectEquivalence(t, r, []uint8{0x34, 0x12})
	test.ExpectEquality(t, sr.Carry, true)

	// 9999 + 0001 = 0000 with carry out
	sr.Carry = false
	r, err = registers.Chain(registers.OpADC, []uint8{0x99, 0x99}, []uint8{0x01, 0x00}, &sr)
	test.DemandSuccess(t, err)
	test.ExpectEquivalence(t, r, []uint8{0x00, 0x00})
	test.ExpectEquality(t, sr.Carry, true)
	test.ExpectEquality(t, sr.Zero, true)
}

func TestChainBinary(t *testing.T) {
	sr := registers.NewStatusRegister()

	r, err := registers.Chain(registers.OpADC, []uint8{0xff, 0x00}, []uint8{0x01, 0x00}, &sr)
	test.DemandSuccess(t, err)
	test.ExpectEquivalence(t, r, []uint8{0x00, 0x01})
	test.ExpectEquality(t, sr.Zero, false)
	test.ExpectEquality(t, sr.Carry, false)

	// the zero flag only reflects the most significant byte
	sr.Carry = true
	r, err = registers.Chain(registers.OpSBC, r, []uint8{0x01, 0x00}, &sr)
	test.DemandSuccess(t, err)
	test.ExpectEquivalence(t, r, []uint8{0xff, 0x00})
	test.ExpectEquality(t, sr.Zero, true)
	test.ExpectEquality(t, sr.Carry, true)
}

func TestChainErrors(t *testing.T) {
	sr := registers.NewStatusRegister()

	_, err := registers.Chain(registers.OpADC, []uint8{0x01}, []uint8{0x01, 0x02}, &sr)
	test.ExpectSuccess(t, curated.Is(err, registers.ChainWidth))

	_, err = registers.Chain(registers.OpADC, nil, nil, &sr)
	test.ExpectSuccess(t, curated.Is(err, registers.ChainEmpty))

	_, err = registers.Chain(registers.Operation(9), []uint8{0x01}, []uint8{0x01}, &sr)
	test.ExpectSuccess(t, curated.Is(err, registers.ChainOperation))

	test.ExpectEquality(t, registers.OpADC.String(), "ADC")
	test.ExpectEquality(t, registers.OpSBC.String(), "SBC")
}
