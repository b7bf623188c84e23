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

package sweep

import (
	"fmt"
	"iter"
	"strings"

	"github.com/retrocheck/aluoracle/curated"
	"github.com/retrocheck/aluoracle/hardware/cpu/alu"
)

// Op is the instruction being swept.
type Op int

// List of valid Op values.
const (
	ADC Op = iota
	SBC
)

func (op Op) String() string {
	switch op {
	case ADC:
		return "adc"
	case SBC:
		return "sbc"
	}
	return "unknown"
}

// Symbol returns the arithmetic symbol used in the report.
func (op Op) Symbol() string {
	if op == SBC {
		return "-"
	}
	return "+"
}

// Apply the operation to the alu.
func (op Op) Apply(a, operand uint8, carryIn uint8, mode alu.Mode) (uint8, alu.Flags) {
	if op == SBC {
		return alu.Subtract(a, operand, carryIn, mode)
	}
	return alu.Add(a, operand, carryIn, mode)
}

// Sweep is one exhaustive run of an operation in one mode with one carry-in.
type Sweep struct {
	Op      Op
	Mode    alu.Mode
	CarryIn uint8
}

// modeTag is the name of the mode as it appears in the report.
func modeTag(mode alu.Mode) string {
	if mode == alu.Decimal {
		return "bcd"
	}
	return "normal"
}

// String returns the tag that prefixes every line of the sweep's report. For
// example:
//
//	adc,bcd,carry1
func (s Sweep) String() string {
	return fmt.Sprintf("%s,%s,carry%d", s.Op, modeTag(s.Mode), s.CarryIn)
}

// All returns every sweep in report order.
func All() []Sweep {
	var sweeps []Sweep
	for _, op := range []Op{ADC, SBC} {
		for _, mode := range []alu.Mode{alu.Binary, alu.Decimal} {
			for c := uint8(0); c <= 1; c++ {
				sweeps = append(sweeps, Sweep{Op: op, Mode: mode, CarryIn: c})
			}
		}
	}
	return sweeps
}

// UnknownSweep is the pattern for errors returned by ParseSweep().
const UnknownSweep = "sweep: unrecognised sweep (%s)"

// ParseSweep converts the tag returned by String() back to a Sweep. The
// comparison is case insensitive.
func ParseSweep(tag string) (Sweep, error) {
	var s Sweep

	p := strings.Split(strings.ToLower(strings.TrimSpace(tag)), ",")
	if len(p) != 3 {
		return s, curated.Errorf(UnknownSweep, tag)
	}

	switch p[0] {
	case "adc":
		s.Op = ADC
	case "sbc":
		s.Op = SBC
	default:
		return s, curated.Errorf(UnknownSweep, tag)
	}

	mode, err := alu.ParseMode(p[1])
	if err != nil {
		return s, curated.Errorf(UnknownSweep, tag)
	}
	s.Mode = mode

	switch p[2] {
	case "carry0":
		s.CarryIn = 0
	case "carry1":
		s.CarryIn = 1
	default:
		return s, curated.Errorf(UnknownSweep, tag)
	}

	return s, nil
}

// ParseSweeps converts a list of tags. An empty list means every sweep.
func ParseSweeps(tags []string) ([]Sweep, error) {
	if len(tags) == 0 {
		return All(), nil
	}

	sweeps := make([]Sweep, 0, len(tags))
	for _, t := range tags {
		s, err := ParseSweep(t)
		if err != nil {
			return nil, err
		}
		sweeps = append(sweeps, s)
	}
	return sweeps, nil
}

// Vector is a single line of a sweep.
type Vector struct {
	A       uint8
	Operand uint8
	Result  uint8
	Flags   alu.Flags
}

// the number of vectors in a sweep. every combination of accumulator and
// operand
const numVectors = 0x100 * 0x100

// Vectors iterates over every accumulator and operand combination of the
// sweep. The accumulator is the outer loop.
func (s Sweep) Vectors() iter.Seq[Vector] {
	return func(yield func(Vector) bool) {
		for a := 0; a <= 0xff; a++ {
			for v := 0; v <= 0xff; v++ {
				r, f := s.Op.Apply(uint8(a), uint8(v), s.CarryIn, s.Mode)
				if !yield(Vector{A: uint8(a), Operand: uint8(v), Result: r, Flags: f}) {
					return
				}
			}
		}
	}
}

// Line formats a vector as a line of the report, including the newline.
func (s Sweep) Line(v Vector) string {
	return fmt.Sprintf("%s:  %02x %s %02x =  %02x %s\n", s, v.A, s.Op.Symbol(), v.Operand, v.Result, v.Flags)
}
