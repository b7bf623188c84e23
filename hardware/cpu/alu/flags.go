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

package alu

import (
	"fmt"
	"strings"
)

// Flags are the status flags affected by ADC and SBC.
type Flags struct {
	Negative bool
	Overflow bool
	Zero     bool
	Carry    bool
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// String returns the flags in the form used by sweep reports. For example:
//
//	N=1 V=0 Z=0 C=1
func (f Flags) String() string {
	return fmt.Sprintf("N=%d V=%d Z=%d C=%d", b2i(f.Negative), b2i(f.Overflow), b2i(f.Zero), b2i(f.Carry))
}

// Status returns the flags in the letter form used for status registers.
// Upper case indicates the flag is set. For example:
//
//	nVzC
func (f Flags) Status() string {
	s := strings.Builder{}
	s.WriteRune(letter('n', f.Negative))
	s.WriteRune(letter('v', f.Overflow))
	s.WriteRune(letter('z', f.Zero))
	s.WriteRune(letter('c', f.Carry))
	return s.String()
}

func letter(r rune, set bool) rune {
	if set {
		return r - 'a' + 'A'
	}
	return r
}
