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
	"github.com/retrocheck/aluoracle/curated"
)

// Operation is the instruction to use in a Chain().
type Operation int

// List of valid Operation values.
const (
	OpADC Operation = iota
	OpSBC
)

func (op Operation) String() string {
	switch op {
	case OpADC:
		return "ADC"
	case OpSBC:
		return "SBC"
	}
	return "unknown"
}

// Patterns for errors returned by Chain().
const (
	ChainWidth     = "chain: operands must be the same width (%d and %d bytes)"
	ChainEmpty     = "chain: operands are empty"
	ChainOperation = "chain: unknown operation (%d)"
)

// Chain performs ADC or SBC over multi-byte operands. The operands are little
// endian: index 0 is the least significant byte. The carry flag in the status
// register is the carry-in for the first byte and the carry out of each byte
// is the carry-in for the next, exactly as a sequence of instructions would
// behave.
//
// On return the status register reflects the operation on the most
// significant byte only. In particular the Zero flag says nothing about the
// lower bytes of the result.
func Chain(op Operation, a, b []uint8, sr *StatusRegister) ([]uint8, error) {
	if len(a) != len(b) {
		return nil, curated.Errorf(ChainWidth, len(a), len(b))
	}
	if len(a) == 0 {
		return nil, curated.Errorf(ChainEmpty)
	}

	var f func(*Register, uint8, *StatusRegister)
	switch op {
	case OpADC:
		f = (*Register).ADC
	case OpSBC:
		f = (*Register).SBC
	default:
		return nil, curated.Errorf(ChainOperation, int(op))
	}

	acc := NewRegister(0, "A")
	result := make([]uint8, len(a))
	for i := range a {
		acc.Load(a[i])
		f(acc, b[i], sr)
		result[i] = acc.Value()
	}

	return result, nil
}
