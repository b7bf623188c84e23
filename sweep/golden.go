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
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/retrocheck/aluoracle/curated"
	"github.com/retrocheck/aluoracle/digest"
	"github.com/retrocheck/aluoracle/logger"
)

// GoldenVersion identifies the behaviour recorded in the Golden table. It
// should change whenever the table changes.
const GoldenVersion = "vice-65c02/1"

// Golden is the SHA-1 digest of the complete report of each sweep, keyed by
// the sweep tag. The digest covers the lines of the sweep only, not the
// report header or the blank lines between sweeps.
//
// The SBC carry flag is the result of a signed comparison, meaning no borrow
// occurred. The C simulation compares unsigned values that wrap when the
// accumulator is zero and the carry-in is clear, so its report differs from
// these digests in the C flag of the 512 lines of sbc,normal,carry0 and
// sbc,bcd,carry0 where the accumulator is 00.
var Golden = map[string]string{
	"adc,normal,carry0": "af584fd32da7d18f4c8714a468ecc91e0245c66c",
	"adc,normal,carry1": "91665284020f111fdc1af8823325d45bb838218d",
	"adc,bcd,carry0":    "e69a64442a32c267470310044b60cc1e9a98add2",
	"adc,bcd,carry1":    "f9516cde9a38039576efa9ef4727f557b223c675",
	"sbc,normal,carry0": "1e10c39249e72d6489465bb7b847e7af25b63d14",
	"sbc,normal,carry1": "9b6c8277c319b5a6c277e328fa3ecda7a93a5a2e",
	"sbc,bcd,carry0":    "d0f2eace53b72ee97dee807426ffd12097ada148",
	"sbc,bcd,carry1":    "eccc0a1f13da48d6a2fba9114010799ae9cb8432",
}

// IncompleteSweep is the pattern for the error returned by Digest() when the
// report of a sweep does not have a line for every vector.
const IncompleteSweep = "sweep: %s: report has %d lines"

// reports are reused between calls to Digest(). the performance check
// digests sweeps continuously
var reports = sync.Pool{
	New: func() any {
		return digest.NewReport()
	},
}

// Digest returns the SHA-1 digest of the complete report of the sweep.
func Digest(ctx context.Context, s Sweep) (string, error) {
	dig := reports.Get().(*digest.Report)
	defer reports.Put(dig)

	dig.ResetDigest()
	if _, err := render(ctx, dig, s, nil); err != nil {
		return "", err
	}

	if dig.Lines() != numVectors {
		return "", curated.Errorf(IncompleteSweep, s, dig.Lines())
	}

	return dig.Hash(), nil
}

// Mismatch describes a sweep whose digest differs from the Golden table.
type Mismatch struct {
	Sweep Sweep
	Want  string
	Got   string
}

// Verify computes the digest of every sweep in the list and compares it with
// the Golden table. Sweeps are computed concurrently. The list of mismatches
// is in the same order as the list of sweeps.
func Verify(ctx context.Context, sweeps []Sweep) ([]Mismatch, error) {
	hashes := make([]string, len(sweeps))

	g, ctx := errgroup.WithContext(ctx)
	for i, s := range sweeps {
		g.Go(func() error {
			h, err := Digest(ctx, s)
			if err != nil {
				return err
			}
			hashes[i] = h
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var mismatches []Mismatch
	for i, s := range sweeps {
		want := Golden[s.String()]
		if hashes[i] != want {
			logger.Logf(logger.Allow, "verify", "%s: digest mismatch", s)
			mismatches = append(mismatches, Mismatch{Sweep: s, Want: want, Got: hashes[i]})
		}
	}

	return mismatches, nil
}
