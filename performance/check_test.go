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

package performance_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/retrocheck/aluoracle/curated"
	"github.com/retrocheck/aluoracle/performance"
	"github.com/retrocheck/aluoracle/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "none")

	p, err = performance.ParseProfile([]string{"CPU", "trace", "mem"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "cpu,mem,trace")

	_, err = performance.ParseProfile([]string{"cpu", "disk"})
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestRunProfiler(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "test")

	var ran bool
	err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, prefix, func() error {
		ran = true
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(prefix + "_cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(prefix + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(prefix + "_trace.profile")
	test.ExpectSuccess(t, errors.Is(err, os.ErrNotExist))

	// errors from the run function are returned unchanged
	runErr := errors.New("run error")
	err = performance.RunProfiler(performance.ProfileNone, prefix, func() error {
		return runErr
	})
	test.ExpectSuccess(t, errors.Is(err, runErr))
}

func TestCalcRate(t *testing.T) {
	rate, accuracy := performance.CalcRate(100, 2.0, 0)
	test.ExpectEquality(t, rate, 50.0)
	test.ExpectEquality(t, accuracy, 0.0)

	rate, accuracy = performance.CalcRate(100, 2.0, 100)
	test.ExpectEquality(t, rate, 50.0)
	test.ExpectEquality(t, accuracy, 50.0)

	rate, _ = performance.CalcRate(100, 0, 0)
	test.ExpectEquality(t, rate, 0.0)
}

func TestCheck(t *testing.T) {
	w := &strings.Builder{}
	res, err := performance.Check(context.Background(), w, performance.Options{
		Duration: 10 * time.Millisecond,
		Workers:  2,
	})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, res.Sweeps >= 1)
	test.ExpectEquality(t, res.Vectors, res.Sweeps*0x10000)
	test.ExpectEquality(t, res.Mismatches, 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "sweeps/second"), w.String())
	test.ExpectEquality(t, res.Throttled, 0)
}

func TestCheckRate(t *testing.T) {
	w := &strings.Builder{}
	res, err := performance.Check(context.Background(), w, performance.Options{
		Duration: 50 * time.Millisecond,
		Rate:     20,
	})
	test.DemandSuccess(t, err)

	// the limiter allows one sweep every 50ms
	test.ExpectSuccess(t, res.Sweeps >= 1 && res.Sweeps <= 2, res.Sweeps)

	// the first sweep always waits for the limiter
	test.ExpectSuccess(t, res.Throttled >= 1, res.Throttled)
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "%\n"), w.String())
}

func TestCheckCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &strings.Builder{}
	res, err := performance.Check(ctx, w, performance.Options{Duration: time.Second})
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))
	test.ExpectEquality(t, res.Sweeps, 0)
	test.ExpectEquality(t, w.String(), "")
}
