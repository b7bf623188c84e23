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

package regression_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retrocheck/aluoracle/curated"
	"github.com/retrocheck/aluoracle/database"
	"github.com/retrocheck/aluoracle/hardware/cpu/alu"
	"github.com/retrocheck/aluoracle/regression"
	"github.com/retrocheck/aluoracle/sweep"
	"github.com/retrocheck/aluoracle/test"
)

var (
	adcBCD = sweep.Sweep{Op: sweep.ADC, Mode: alu.Decimal, CarryIn: 0}
	sbcBin = sweep.Sweep{Op: sweep.SBC, Mode: alu.Binary, CarryIn: 1}
)

func TestRegression(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "regressiondb")

	w := &test.CompareWriter{}

	// the database does not exist yet
	err := regression.RegressList(w, dbPath)
	test.ExpectSuccess(t, curated.Is(err, database.NotAvailable))

	test.DemandSuccess(t, regression.RegressAdd(ctx, w, dbPath, adcBCD, "first"))
	test.ExpectSuccess(t, w.Compare("added: 000 [sweep] adc,bcd,carry0 e69a6444 \"first\"\n"), w.String())

	w.Clear()
	test.DemandSuccess(t, regression.RegressAdd(ctx, w, dbPath, sbcBin, ""))
	test.ExpectSuccess(t, w.Compare("added: 001 [sweep] sbc,normal,carry1 9b6c8277\n"), w.String())

	data, err := os.ReadFile(dbPath)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data),
		"000,sweep,adc,bcd,carry0,e69a64442a32c267470310044b60cc1e9a98add2,vice-65c02/1,first\n"+
			"001,sweep,sbc,normal,carry1,9b6c8277c319b5a6c277e328fa3ecda7a93a5a2e,vice-65c02/1,\n")

	w.Clear()
	test.DemandSuccess(t, regression.RegressList(w, dbPath))
	test.ExpectSuccess(t, w.Compare("000 [sweep] adc,bcd,carry0 e69a6444 \"first\"\n"+
		"001 [sweep] sbc,normal,carry1 9b6c8277\n"+
		"Total: 2\n"), w.String())

	w.Clear()
	test.DemandSuccess(t, regression.RegressRun(ctx, w, dbPath, regression.RunOptions{}))
	test.ExpectSuccess(t, w.Compare("pass: 000 [sweep] adc,bcd,carry0 e69a6444 \"first\"\n"+
		"pass: 001 [sweep] sbc,normal,carry1 9b6c8277\n"+
		"regression tests: 2 pass, 0 fail\n"), w.String())

	// run a single entry
	w.Clear()
	test.DemandSuccess(t, regression.RegressRun(ctx, w, dbPath, regression.RunOptions{Keys: []string{"1"}}))
	test.ExpectSuccess(t, w.Compare("pass: 001 [sweep] sbc,normal,carry1 9b6c8277\n"+
		"regression tests: 1 pass, 0 fail\n"), w.String())

	err = regression.RegressRun(ctx, w, dbPath, regression.RunOptions{Keys: []string{"one"}})
	test.ExpectSuccess(t, curated.Is(err, regression.InvalidKey))

	err = regression.RegressRun(ctx, w, dbPath, regression.RunOptions{Keys: []string{"5"}})
	test.ExpectSuccess(t, curated.Is(err, database.KeyNotAvailable))
}

func TestFailure(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "regressiondb")

	// a recorded digest that the current build does not produce
	test.DemandSuccess(t, os.WriteFile(dbPath, []byte(
		"000,sweep,adc,bcd,carry0,0000000000000000000000000000000000000000,vice-65c02/0,\n"+
			"001,sweep,sbc,normal,carry1,9b6c8277c319b5a6c277e328fa3ecda7a93a5a2e,vice-65c02/1,\n"), 0600))

	w := &test.CompareWriter{}
	err := regression.RegressRun(ctx, w, dbPath, regression.RunOptions{Verbose: true})
	test.ExpectSuccess(t, curated.Is(err, regression.Failures))
	test.ExpectSuccess(t, w.Compare("fail: 000 [sweep] adc,bcd,carry0 00000000 (vice-65c02/0)\n"+
		"  recorded: 0000000000000000000000000000000000000000\n"+
		"   current: e69a64442a32c267470310044b60cc1e9a98add2\n"+
		"pass: 001 [sweep] sbc,normal,carry1 9b6c8277\n"+
		"regression tests: 1 pass, 1 fail\n"), w.String())

	// only the failure is run
	w.Clear()
	err = regression.RegressRun(ctx, w, dbPath, regression.RunOptions{Fails: true})
	test.ExpectSuccess(t, curated.Is(err, regression.Failures))
	test.ExpectSuccess(t, w.Compare("fail: 000 [sweep] adc,bcd,carry0 00000000 (vice-65c02/0)\n"+
		"regression tests: 0 pass, 1 fail\n"), w.String())

	// a run without failures clears the list of failures
	w.Clear()
	test.DemandSuccess(t, regression.RegressRun(ctx, w, dbPath, regression.RunOptions{Keys: []string{"1"}}))
	w.Clear()
	test.DemandSuccess(t, regression.RegressRun(ctx, w, dbPath, regression.RunOptions{Fails: true}))
	test.ExpectSuccess(t, w.Compare("no failures recorded\n"), w.String())
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "regressiondb")

	w := &test.CompareWriter{}
	test.DemandSuccess(t, regression.RegressAdd(ctx, w, dbPath, sbcBin, ""))

	// declined
	w.Clear()
	test.DemandSuccess(t, regression.RegressDelete(w, strings.NewReader("n\n"), dbPath, "0"))
	test.ExpectSuccess(t, w.Compare("[sweep] sbc,normal,carry1 9b6c8277\ndelete? (y/n): "), w.String())

	w.Clear()
	test.DemandSuccess(t, regression.RegressList(w, dbPath))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "Total: 1\n"), w.String())

	// accepted
	w.Clear()
	test.DemandSuccess(t, regression.RegressDelete(w, strings.NewReader("y\n"), dbPath, "0"))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "deleted test #000 from regression database\n"), w.String())

	w.Clear()
	test.DemandSuccess(t, regression.RegressList(w, dbPath))
	test.ExpectSuccess(t, w.Compare("database is empty\n"), w.String())

	err := regression.RegressDelete(w, strings.NewReader("y\n"), dbPath, "0")
	test.ExpectSuccess(t, curated.Is(err, database.KeyNotAvailable))

	err = regression.RegressDelete(w, strings.NewReader("y\n"), dbPath, "zero")
	test.ExpectSuccess(t, curated.Is(err, regression.InvalidKey))
}

func TestNotes(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "regressiondb")

	w := &test.CompareWriter{}
	err := regression.RegressAdd(ctx, w, dbPath, sbcBin, "notes, with a comma")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, w.Compare(""))
}

func TestEmpty(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "regressiondb")
	test.DemandSuccess(t, os.WriteFile(dbPath, nil, 0600))

	w := &test.CompareWriter{}
	test.DemandSuccess(t, regression.RegressRun(context.Background(), w, dbPath, regression.RunOptions{}))
	test.ExpectSuccess(t, w.Compare("regression database is empty\n"), w.String())
}
