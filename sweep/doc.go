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

// Package sweep drives the alu over its entire input domain and writes the
// results as a report. There are eight sweeps: ADC and SBC, in binary and
// decimal mode, with carry-in clear and set. Each sweep covers every
// combination of accumulator and operand:
//
//	adc,normal,carry0:  00 + 00 =  00 N=0 V=0 Z=1 C=0
//	adc,normal,carry0:  00 + 01 =  01 N=0 V=0 Z=0 C=0
//	...
//
// The report format is the same as that of the VICE derived simulation the
// oracle was built against, so that the output of the two can be compared
// with diff. Binary mode is called "normal" in the report and decimal mode is
// called "bcd".
//
// Each sweep has a pinned SHA-1 digest in the Golden table. The Verify()
// function recomputes the digests and lists any sweep that no longer matches.
//
// Reports can be restricted to the lines that satisfy a Filter. Filters are
// Starlark expressions. See NewFilter() for the names available to the
// expression.
package sweep
