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

package registers

import (
	"strings"

	"github.com/retrocheck/aluoracle/hardware/cpu/alu"
)

// StatusRegister holds the flags of the CPU that are relevant to ADC and SBC.
// The break and interrupt flags have no bearing on arithmetic and are not
// represented.
type StatusRegister struct {
	Sign        bool
	Overflow    bool
	DecimalMode bool
	Zero        bool
	Carry       bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the flags in letter form. Upper case letters indicate that
// the flag is set. The dash is the unused bit of the register.
func (sr StatusRegister) String() string {
	s := strings.Builder{}
	s.WriteString(flag('s', sr.Sign))
	s.WriteString(flag('v', sr.Overflow))
	s.WriteRune('-')
	s.WriteString(flag('d', sr.DecimalMode))
	s.WriteString(flag('z', sr.Zero))
	s.WriteString(flag('c', sr.Carry))
	return s.String()
}

func flag(r rune, set bool) string {
	if set {
		return strings.ToUpper(string(r))
	}
	return string(r)
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// processor status bits
const (
	bitCarry    = 0x01
	bitZero     = 0x02
	bitDecimal  = 0x08
	bitUnused   = 0x20
	bitOverflow = 0x40
	bitSign     = 0x80
)

// Value converts the StatusRegister to the value that would be pushed to the
// stack by PHP. Bits not represented by the StatusRegister are zero, apart
// from the unused bit which always reads as one.
func (sr StatusRegister) Value() uint8 {
	v := uint8(bitUnused)

	if sr.Sign {
		v |= bitSign
	}
	if sr.Overflow {
		v |= bitOverflow
	}
	if sr.DecimalMode {
		v |= bitDecimal
	}
	if sr.Zero {
		v |= bitZero
	}
	if sr.Carry {
		v |= bitCarry
	}

	return v
}

// FromValue sets the flags from an 8 bit value, as would be pulled from the
// stack by PLP.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&bitSign == bitSign
	sr.Overflow = v&bitOverflow == bitOverflow
	sr.DecimalMode = v&bitDecimal == bitDecimal
	sr.Zero = v&bitZero == bitZero
	sr.Carry = v&bitCarry == bitCarry
}

// Apply the flags returned by the alu. The decimal mode flag is unchanged.
func (sr *StatusRegister) Apply(f alu.Flags) {
	sr.Sign = f.Negative
	sr.Overflow = f.Overflow
	sr.Zero = f.Zero
	sr.Carry = f.Carry
}

// Flags returns the arithmetic flags in the form used by the alu.
func (sr StatusRegister) Flags() alu.Flags {
	return alu.Flags{
		Negative: sr.Sign,
		Overflow: sr.Overflow,
		Zero:     sr.Zero,
		Carry:    sr.Carry,
	}
}

func (sr StatusRegister) carry() uint8 {
	if sr.Carry {
		return 1
	}
	return 0
}

func (sr StatusRegister) mode() alu.Mode {
	if sr.DecimalMode {
		return alu.Decimal
	}
	return alu.Binary
}
