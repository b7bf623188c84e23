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

package main

import (
	"encoding/hex"
	"fmt"
	"slices"
	"strings"

	"github.com/retrocheck/aluoracle/curated"
	"github.com/retrocheck/aluoracle/hardware/cpu/alu"
	"github.com/retrocheck/aluoracle/hardware/cpu/registers"
	"github.com/retrocheck/aluoracle/modalflag"
)

// InvalidOperand is the pattern for errors caused by a badly formed operand
// in CALC mode.
const InvalidOperand = "calc: invalid operand (%s)"

// parseOperand converts a hex string to little-endian bytes. the string can
// have a leading $ or 0x. a string with an odd number of digits has an
// implied leading zero
func parseOperand(s string) ([]uint8, error) {
	h := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "$"), "0x")
	if h == "" {
		return nil, curated.Errorf(InvalidOperand, s)
	}
	if len(h)%2 == 1 {
		h = "0" + h
	}

	b, err := hex.DecodeString(h)
	if err != nil {
		return nil, curated.Errorf(InvalidOperand, s)
	}

	slices.Reverse(b)
	return b, nil
}

// formatOperand is the reverse of parseOperand(), without any prefix
func formatOperand(b []uint8) string {
	r := slices.Clone(b)
	slices.Reverse(r)
	return hex.EncodeToString(r)
}

func parseOperation(s string) (registers.Operation, error) {
	switch strings.ToLower(s) {
	case "+", "adc":
		return registers.OpADC, nil
	case "-", "sbc":
		return registers.OpSBC, nil
	}
	return 0, curated.Errorf("calc: unknown operation (%s)", s)
}

func calc(md *modalflag.Modes) error {
	md.NewMode()

	decimal := md.AddBool("decimal", false, "decimal (BCD) mode")
	carry := md.AddUint("carry", 0, "carry-in (0 or 1)")

	md.AdditionalHelp("usage: CALC [-decimal] [-carry 0|1] <a> <+|-> <b>\n" +
		"operands are hex. operands of more than one byte are added or subtracted\n" +
		"as a chain of instructions, least significant byte first")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *carry > 0xff {
		return curated.Errorf(alu.InvalidCarry, *carry)
	}
	if err := alu.CheckCarry(uint8(*carry)); err != nil {
		return err
	}

	if len(md.RemainingArgs()) != 3 {
		return fmt.Errorf("%s mode requires three arguments: <a> <+|-> <b>", md)
	}

	a, err := parseOperand(md.GetArg(0))
	if err != nil {
		return err
	}
	op, err := parseOperation(md.GetArg(1))
	if err != nil {
		return err
	}
	b, err := parseOperand(md.GetArg(2))
	if err != nil {
		return err
	}

	sr := registers.NewStatusRegister()
	sr.DecimalMode = *decimal
	sr.Carry = *carry == 1

	r, err := registers.Chain(op, a, b, &sr)
	if err != nil {
		return err
	}

	sym := "+"
	if op == registers.OpSBC {
		sym = "-"
	}

	fmt.Fprintf(md.Output, "%s %s %s = %s %s (%s)\n", formatOperand(a), sym, formatOperand(b),
		formatOperand(r), sr.Flags(), sr)

	return nil
}
