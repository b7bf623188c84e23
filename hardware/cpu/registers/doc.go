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

// Package registers gives the alu a processor shaped face. The Register type
// is the 8 bit accumulator and the StatusRegister type holds the flags that
// ADC and SBC read and write. Unlike the functions in the alu package, the
// carry flag here is persistent state, carried in the StatusRegister from one
// instruction to the next:
//
//	a := registers.NewRegister(0x79, "A")
//	sr := registers.NewStatusRegister()
//	sr.DecimalMode = true
//
//	a.ADC(0x01, &sr)
//	// a.Value() == 0x80, sr.String() == "SV-Dzc"
//
// The Chain() function uses this to perform ADC and SBC over values wider
// than 8 bits, one byte at a time, in the same way as a 6502 program would.
package registers
