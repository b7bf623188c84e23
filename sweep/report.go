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
	"bufio"
	"bytes"
	"context"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/retrocheck/aluoracle/logger"
)

// Header is the first line of a full report.
const Header = "65c02   adc/sbc simulation\n"

// how often (in vectors) a sweep checks for cancellation
const cancelCheck = 0x100

// render writes the lines of a sweep that match the filter. a nil filter
// matches every vector. returns the number of lines written.
func render(ctx context.Context, w io.Writer, s Sweep, filter *Filter) (int, error) {
	var match func(Vector) (bool, error)
	if filter != nil {
		match = filter.matcher()
	}

	bw := bufio.NewWriter(w)

	var lines int
	var count int
	for vec := range s.Vectors() {
		count++
		if count%cancelCheck == 0 {
			if err := ctx.Err(); err != nil {
				return lines, err
			}
		}

		if match != nil {
			ok, err := match(vec)
			if err != nil {
				return lines, err
			}
			if !ok {
				continue
			}
		}

		if _, err := bw.WriteString(s.Line(vec)); err != nil {
			return lines, err
		}
		lines++
	}

	return lines, bw.Flush()
}

// Write the report for a single sweep, without the header. The filter can be
// nil.
func Write(w io.Writer, s Sweep, filter *Filter) error {
	_, err := render(context.Background(), w, s, filter)
	return err
}

// Options for the Report() function.
type Options struct {
	// only write lines that match the filter. can be nil
	Filter *Filter

	// the maximum number of sweeps rendered at the same time. a value of
	// zero or less means runtime.GOMAXPROCS(0)
	Workers int

	// omit the header line
	NoHeader bool
}

func (opts Options) workers() int {
	if opts.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return opts.Workers
}

// Report writes the report for the list of sweeps. Sweeps are rendered
// concurrently but written to the io.Writer in the order they are listed,
// separated by a blank line.
func Report(ctx context.Context, w io.Writer, sweeps []Sweep, opts Options) error {
	buffers := make([]bytes.Buffer, len(sweeps))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for i, s := range sweeps {
		g.Go(func() error {
			n, err := render(ctx, &buffers[i], s, opts.Filter)
			if err != nil {
				return err
			}
			logger.Logf(logger.Allow, "sweep", "%s: %d lines", s, n)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if !opts.NoHeader {
		if _, err := io.WriteString(w, Header); err != nil {
			return err
		}
	}

	for i := range buffers {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := buffers[i].WriteTo(w); err != nil {
			return err
		}
	}

	return nil
}
