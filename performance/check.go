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

package performance

import (
	"context"
	"errors"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/retrocheck/aluoracle/curated"
	"github.com/retrocheck/aluoracle/logger"
	"github.com/retrocheck/aluoracle/performance/limiter"
	"github.com/retrocheck/aluoracle/sweep"
	"github.com/retrocheck/aluoracle/translate"
)

// Mismatches is the pattern for the error returned by Check() when one or
// more sweeps did not produce the golden digest.
const Mismatches = "performance: %d sweeps did not match golden digests"

// DefaultDuration is a reasonable duration for a performance check.
const DefaultDuration = 5 * time.Second

// Options for the Check() function.
type Options struct {
	// how long to run for. at least one sweep is always run
	Duration time.Duration

	// profiles to generate
	Profile Profile

	// the maximum number of sweeps running at the same time. a value of zero
	// or less means runtime.GOMAXPROCS(0)
	Workers int

	// the maximum number of sweeps started per second. zero is unlimited
	Rate int
}

// Result of the Check() function.
type Result struct {
	Sweeps     int
	Vectors    int
	Mismatches int
	Elapsed    time.Duration

	// the number of times starting a sweep was delayed by the rate limit
	Throttled int
}

// Check the performance of the oracle by digesting sweeps, in the order given
// by sweep.All(), for the specified duration. Each digest is compared with the
// golden table so a performance check doubles as a correctness check.
//
// A summary is written to output. Profiling information is generated as
// defined by the Profile field of the Options argument.
func Check(ctx context.Context, output io.Writer, opts Options) (Result, error) {
	var res Result

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var lim *limiter.Limiter
	if opts.Rate > 0 {
		var err error
		lim, err = limiter.NewLimiter(opts.Rate)
		if err != nil {
			return res, curated.Errorf("performance: %v", err)
		}
		defer lim.Stop()
	}

	var completed atomic.Int64
	var mismatches atomic.Int64
	var throttled int

	runner := func() error {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)

		sweeps := sweep.All()
		start := time.Now()
		deadline := start.Add(opts.Duration)

		for i := 0; i == 0 || time.Now().Before(deadline); i++ {
			if gctx.Err() != nil {
				break // for loop
			}
			if lim != nil && !lim.HasWaited() {
				throttled++
				if err := lim.Wait(gctx); err != nil {
					break // for loop
				}
			}

			s := sweeps[i%len(sweeps)]
			g.Go(func() error {
				h, err := sweep.Digest(gctx, s)
				if err != nil {
					return err
				}
				if h != sweep.Golden[s.String()] {
					logger.Logf(logger.Allow, "performance", "%s: digest mismatch", s)
					mismatches.Add(1)
				}
				completed.Add(1)
				return nil
			})
		}

		err := g.Wait()
		res.Elapsed = time.Since(start)
		if err != nil {
			return err
		}
		return ctx.Err()
	}

	err := RunProfiler(opts.Profile, "performance", runner)

	res.Sweeps = int(completed.Load())
	res.Vectors = res.Sweeps * 0x10000
	res.Mismatches = int(mismatches.Load())
	res.Throttled = throttled

	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Logf(logger.Allow, "performance", "cancelled after %d sweeps", res.Sweeps)
		}
		return res, err
	}

	var target int
	if lim != nil {
		target = lim.Rate()
		logger.Logf(logger.Allow, "performance", "rate limit of %d/s delayed %d sweeps", target, res.Throttled)
	}

	rate, accuracy := CalcRate(res.Sweeps, res.Elapsed.Seconds(), target)
	summary := translate.From("%d sweeps (%d vectors) in %.2f seconds: %.2f sweeps/second",
		res.Sweeps, res.Vectors, res.Elapsed.Seconds(), rate)
	if target > 0 {
		summary = translate.From("%s %.1f%%", summary, accuracy)
	}
	io.WriteString(output, summary)
	io.WriteString(output, "\n")

	if res.Mismatches > 0 {
		return res, curated.Errorf(Mismatches, res.Mismatches)
	}

	return res, nil
}
