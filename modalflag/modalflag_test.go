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

package modalflag_test

import (
	"testing"
	"time"

	"github.com/retrocheck/aluoracle/modalflag"
	"github.com/retrocheck/aluoracle/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectSuccess(t, md.Parsed())
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-decimal", "79", "01"})
	decimal := md.AddBool("decimal", false, "decimal mode")
	test.ExpectFailure(t, *decimal)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *decimal)
	test.ExpectEquivalence(t, md.RemainingArgs(), []string{"79", "01"})
	test.ExpectEquality(t, md.GetArg(1), "01")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-nonsense"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	w := &test.CompareWriter{}

	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, w.Compare("No help available\n"), w.String())
}

func TestHelpFlags(t *testing.T) {
	w := &test.CompareWriter{}

	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})
	md.AddBool("decimal", true, "decimal mode")
	md.AddString("filter", "", "filter `expression`")
	md.AddInt("workers", 4, "number of workers")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expected := "Usage:\n" +
		"  -decimal\n" +
		"    \tdecimal mode (default true)\n" +
		"  -filter expression\n" +
		"    \tfilter expression\n" +
		"  -workers int\n" +
		"    \tnumber of workers (default 4)\n"
	test.ExpectSuccess(t, w.Compare(expected), w.String())
}

func TestHelpModes(t *testing.T) {
	w := &test.CompareWriter{}

	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("sweep", "calc", "verify")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expected := "Usage:\n" +
		"  available sub-modes: SWEEP, CALC, VERIFY\n" +
		"    default: SWEEP\n"
	test.ExpectSuccess(t, w.Compare(expected), w.String())
}

func TestHelpFlagsAndModes(t *testing.T) {
	w := &test.CompareWriter{}

	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})
	md.AddBool("log", false, "echo log")
	md.AddSubModes("SWEEP", "CALC")
	md.AdditionalHelp("more help")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expected := "Usage:\n" +
		"  -log\n" +
		"    \techo log\n" +
		"\n" +
		"  available sub-modes: SWEEP, CALC\n" +
		"    default: SWEEP\n" +
		"\n" +
		"more help\n"
	test.ExpectSuccess(t, w.Compare(expected), w.String())
}

func TestHelpForMode(t *testing.T) {
	w := &test.CompareWriter{}

	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"VERIFY", "-help"})
	md.AddSubModes("SWEEP", "VERIFY")
	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)

	md.NewMode()
	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, w.Compare("No help available for VERIFY\n"), w.String())
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"calc", "-decimal", "-carry", "1", "79", "+", "01"})
	md.AddSubModes("SWEEP", "CALC")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "CALC")

	md.NewMode()
	decimal := md.AddBool("decimal", false, "decimal mode")
	carry := md.AddUint("carry", 0, "carry in")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *decimal)
	test.ExpectEquality(t, *carry, 1)
	test.ExpectEquivalence(t, md.RemainingArgs(), []string{"79", "+", "01"})
	test.ExpectEquality(t, md.Path(), "CALC")
}

func TestDefaultSubMode(t *testing.T) {
	// flags for the default sub-mode are not known at the top level
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-filter", "v and not c", "adc,bcd,carry0"})
	md.AddSubModes("SWEEP", "CALC")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "SWEEP")

	md.NewMode()
	filter := md.AddString("filter", "", "filter expression")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *filter, "v and not c")
	test.ExpectEquivalence(t, md.RemainingArgs(), []string{"adc,bcd,carry0"})

	// an unlisted argument selects the default too, and is not consumed
	md.NewArgs([]string{"adc,bcd,carry0"})
	md.AddSubModes("SWEEP", "CALC")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Path(), "SWEEP/SWEEP")
	test.ExpectEquivalence(t, md.RemainingArgs(), []string{"adc,bcd,carry0"})
}

func TestNestedModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"regress", "delete", "key"})
	md.AddSubModes("SWEEP", "REGRESS")
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	md.NewMode()
	md.AddSubModes("RUN", "LIST", "ADD", "DELETE")
	_, err = md.Parse()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, md.Mode(), "DELETE")
	test.ExpectEquality(t, md.Path(), "REGRESS/DELETE")
	test.ExpectEquality(t, md.String(), "REGRESS/DELETE")
	test.ExpectEquivalence(t, md.RemainingArgs(), []string{"key"})
}

func TestListAndDuration(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-profile", "cpu, mem,", "-duration", "2s"})
	profile := md.AddList("profile", nil, "profiles")
	duration := md.AddDuration("duration", time.Second, "duration")

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquivalence(t, *profile, []string{"cpu", "mem"})
	test.ExpectEquality(t, *duration, 2*time.Second)

	var visited []string
	md.Visit(func(f string) {
		visited = append(visited, f)
	})
	test.ExpectEquivalence(t, visited, []string{"duration", "profile"})
}
