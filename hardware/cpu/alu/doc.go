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

// Package alu is a reference oracle for the ADC and SBC instructions of the
// 65C02, in both binary and decimal (packed BCD) mode.
//
// The package has no state. The carry flag, which on a real processor lives
// in the status register between instructions, is an explicit argument to
// Add() and Subtract() and the resulting flags are returned as a new Flags
// value alongside the result byte:
//
//	r, f := alu.Add(0x79, 0x01, 0, alu.Decimal)
//	// r == 0x80, f.Overflow == true
//
// Chaining multi-byte arithmetic is simply a matter of passing the Carry
// field of one call as the carry-in of the next. The registers package does
// this on behalf of a processor-like accumulator and status register.
//
// Decimal mode follows the behaviour of the VICE 65c02 core. In particular,
// the overflow flag of a decimal addition is computed from the high nibble
// sum after the low nibble has been adjusted but before the high nibble has
// been adjusted, and decimal subtraction derives the carry flag from the
// unadjusted operands. Other silicon (the NMOS 6502, the 2A03 which has no
// decimal mode at all) behaves differently and is not modelled.
//
// The functions are safe to call concurrently.
package alu
