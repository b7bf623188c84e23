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

package regression

import (
	"context"
	"fmt"
	"strings"

	"github.com/retrocheck/aluoracle/curated"
	"github.com/retrocheck/aluoracle/database"
	"github.com/retrocheck/aluoracle/sweep"
)

const sweepEntryID = "sweep"

const (
	sweepFieldOp int = iota
	sweepFieldMode
	sweepFieldCarry
	sweepFieldDigest
	sweepFieldVersion
	sweepFieldNotes
	numSweepFields
)

// SweepEntry is a regression entry recording the digest of a single sweep.
type SweepEntry struct {
	Sweep sweep.Sweep

	// the digest of the sweep when the entry was added
	Digest string

	// the version of the golden table when the entry was added
	Version string

	// user supplied notes. cannot contain commas or newlines
	Notes string
}

// NewSweepEntry computes the digest of the sweep and returns a new
// SweepEntry.
func NewSweepEntry(ctx context.Context, s sweep.Sweep, notes string) (*SweepEntry, error) {
	dig, err := sweep.Digest(ctx, s)
	if err != nil {
		return nil, curated.Errorf("regression: %v", err)
	}

	return &SweepEntry{
		Sweep:   s,
		Digest:  dig,
		Version: sweep.GoldenVersion,
		Notes:   notes,
	}, nil
}

func deserialiseSweepEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != numSweepFields {
		return nil, curated.Errorf("regression: sweep entry: wrong number of fields (%d)", len(fields))
	}

	// the sweep tag is stored over three fields because it contains the
	// database's field separator
	s, err := sweep.ParseSweep(strings.Join(fields[sweepFieldOp:sweepFieldDigest], ","))
	if err != nil {
		return nil, curated.Errorf("regression: sweep entry: %v", err)
	}

	return &SweepEntry{
		Sweep:   s,
		Digest:  fields[sweepFieldDigest],
		Version: fields[sweepFieldVersion],
		Notes:   fields[sweepFieldNotes],
	}, nil
}

// ID implements the database.Entry interface.
func (ent *SweepEntry) ID() string {
	return sweepEntryID
}

// String implements the database.Entry interface.
func (ent *SweepEntry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] %s %.8s", ent.ID(), ent.Sweep, ent.Digest))
	if ent.Version != sweep.GoldenVersion {
		s.WriteString(fmt.Sprintf(" (%s)", ent.Version))
	}
	if ent.Notes != "" {
		s.WriteString(fmt.Sprintf(" %q", ent.Notes))
	}
	return s.String()
}

// Serialise implements the database.Entry interface.
func (ent *SweepEntry) Serialise() (database.SerialisedEntry, error) {
	tag := strings.Split(ent.Sweep.String(), ",")
	if len(tag) != 3 {
		return nil, curated.Errorf("regression: sweep entry: unexpected sweep tag (%s)", ent.Sweep)
	}
	return database.SerialisedEntry{
		tag[0], tag[1], tag[2],
		ent.Digest,
		ent.Version,
		ent.Notes,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (ent *SweepEntry) CleanUp() error {
	return nil
}

// regress computes the digest of the sweep and compares it with the recorded
// digest. returns the current digest.
func (ent *SweepEntry) regress(ctx context.Context) (bool, string, error) {
	dig, err := sweep.Digest(ctx, ent.Sweep)
	if err != nil {
		return false, "", curated.Errorf("regression: %v", err)
	}
	return dig == ent.Digest, dig, nil
}
