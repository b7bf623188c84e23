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
	"strings"

	"github.com/retrocheck/aluoracle/curated"
)

// Mode selects whether decimal correction is applied to the arithmetic.
type Mode int

// List of valid Mode values.
const (
	Binary Mode = iota
	Decimal
)

func (m Mode) String() string {
	switch m {
	case Binary:
		return "binary"
	case Decimal:
		return "decimal"
	}
	return "unknown"
}

// UnknownMode is the pattern for errors returned by ParseMode().
const UnknownMode = "alu: unknown mode (%s)"

// ParseMode converts a string to a Mode. In addition to the String()
// representations, "normal" and "bcd" are accepted as these are the names used
// in sweep reports.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "normal":
		return Binary, nil
	case "decimal", "bcd":
		return Decimal, nil
	}
	return Binary, curated.Errorf(UnknownMode, s)
}
