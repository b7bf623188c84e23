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

	"github.com/retrocheck/aluoracle/curated"
)

// InvalidCarry is the pattern for errors returned by CheckCarry().
const InvalidCarry = "alu: carry-in must be 0 or 1 (got %d)"

// CheckCarry returns an error if carryIn is not 0 or 1. Callers that accept a
// carry value from outside the program (the command line, for example) should
// use this to reject bad values before calling Add() or Subtract().
func CheckCarry(carryIn uint8) error {
	if carryIn > 1 {
		return curated.Errorf(InvalidCarry, carryIn)
	}
	return nil
}

// contract panics if the arguments are outside of the domain of Add() and
// Subtract(). a bad argument is a bug in the caller.
func contract(carryIn uint8, mode Mode) {
	if err := CheckCarry(carryIn); err != nil {
		panic(err)
	}
	if mode != Binary && mode != Decimal {
		panic(curated.Errorf(UnknownMode, fmt.Sprintf("%d", int(mode))))
	}
}

// signs differ in bit 7
func signDiffers(a, b int) bool {
	return (a^b)&0x80 == 0x80
}

// Add returns the result of ADC with accumulator a, the operand and the
// incoming carry. The returned flags are computed afresh.
//
// Panics if carryIn is not 0 or 1 or if mode is not a valid Mode.
func Add(a, operand uint8, carryIn uint8, mode Mode) (uint8, Flags) {
	contract(carryIn, mode)

	var f Flags
	var r uint8

	acc := int(a)
	val := int(operand)
	c := int(carryIn)

	if mode == Decimal {
		lo := (acc & 0x0f) + (val & 0x0f) + c
		hi := (acc & 0xf0) + (val & 0xf0)

		// decimal carry out of the units
		if lo > 0x09 {
			hi += 0x10
			lo += 0x06
		}

		// the overflow flag is taken from the partially adjusted high nibble
		// sum. the tens adjustment below has no effect on it
		f.Overflow = !signDiffers(acc, val) && signDiffers(acc, hi)

		// decimal carry out of the tens
		if hi > 0x90 {
			hi += 0x60
		}

		f.Carry = hi > 0xff
		r = uint8((lo & 0x0f) | (hi & 0xf0))
	} else {
		wide := acc + val + c
		r = uint8(wide)
		f.Carry = wide > 0xff
		f.Overflow = !signDiffers(acc, val) && signDiffers(acc, int(r))
	}

	f.Zero = r == 0
	f.Negative = r&0x80 == 0x80

	return r, f
}

// Subtract returns the result of SBC with accumulator a, the operand and the
// incoming carry. As with the real instruction the carry acts as an inverted
// borrow: a carryIn of 1 means that nothing is borrowed and a Carry flag of
// true on return means that the subtraction did not borrow.
//
// Panics if carryIn is not 0 or 1 or if mode is not a valid Mode.
func Subtract(a, operand uint8, carryIn uint8, mode Mode) (uint8, Flags) {
	contract(carryIn, mode)

	var f Flags

	acc := int(a)
	val := int(operand)
	c := int(carryIn)

	// may be negative
	wide := acc - val + c - 1

	// overflow is decided before any decimal adjustment
	f.Overflow = signDiffers(acc, wide&0xff) && signDiffers(acc, val)

	if mode == Decimal {
		// borrow out of the tens
		if wide < 0 {
			wide -= 0x60
		}

		// borrow out of the units. the probe is independent of the tens
		// adjustment above
		lo := (acc & 0x0f) - (val & 0x0f) + c - 1
		if lo < 0 {
			wide -= 0x06
		}
	}

	// carry only considers the unadjusted operands
	f.Carry = acc+c-1 >= val

	r := uint8(wide & 0xff)
	f.Zero = r == 0
	f.Negative = r&0x80 == 0x80

	return r, f
}
