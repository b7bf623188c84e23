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
	"fmt"

	"github.com/retrocheck/aluoracle/hardware/cpu/alu"
)

// Register is an 8 bit register, used for the accumulator.
type Register struct {
	label string
	value uint8
}

// NewRegister creates a new register with a label and initial value.
func NewRegister(val uint8, label string) *Register {
	return &Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register
func (r Register) Value() uint8 {
	return r.value
}

// IsNegative checks the sign bit of the register
func (r Register) IsNegative() bool {
	return r.value&0x80 == 0x80
}

// IsZero checks if register is zero
func (r Register) IsZero() bool {
	return r.value == 0
}

// Load value into register
func (r *Register) Load(val uint8) {
	r.value = val
}

// ADC adds val and the carry flag to the register. The status register
// decides whether decimal mode is in effect and is updated with the new sign,
// overflow, zero and carry flags.
func (r *Register) ADC(val uint8, sr *StatusRegister) {
	v, f := alu.Add(r.value, val, sr.carry(), sr.mode())
	r.value = v
	sr.Apply(f)
}

// SBC subtracts val and the inverse of the carry flag from the register. The
// status register is used and updated in the same way as for ADC.
func (r *Register) SBC(val uint8, sr *StatusRegister) {
	v, f := alu.Subtract(r.value, val, sr.carry(), sr.mode())
	r.value = v
	sr.Apply(f)
}
