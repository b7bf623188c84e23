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
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/retrocheck/aluoracle/curated"
	"github.com/retrocheck/aluoracle/database"
	"github.com/retrocheck/aluoracle/logger"
	"github.com/retrocheck/aluoracle/resources"
	"github.com/retrocheck/aluoracle/sweep"
)

// Patterns for errors that callers might want to test for.
const (
	Failures   = "regression: %d tests failed"
	InvalidKey = "regression: invalid key (%s)"
)

// DBFile is the name of the regression database in the resources directory.
const DBFile = "regressionDB"

// DefaultDBPath returns the path to the regression database in the resources
// directory, creating the directory if necessary.
func DefaultDBPath() (string, error) {
	return resources.JoinPath(DBFile)
}

// when starting a database session we need to register what entries we will
// find in the database
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(sweepEntryID, deserialiseSweepEntry)
}

func parseKeys(keys []string) ([]int, error) {
	k := make([]int, 0, len(keys))
	for _, s := range keys {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, curated.Errorf(InvalidKey, s)
		}
		k = append(k, v)
	}
	return k, nil
}

// RegressAdd computes the digest of the sweep and adds it to the database.
// The database is created if it does not exist.
func RegressAdd(ctx context.Context, output io.Writer, dbPath string, s sweep.Sweep, notes string) error {
	ent, err := NewSweepEntry(ctx, s, notes)
	if err != nil {
		return err
	}

	if want := sweep.Golden[s.String()]; ent.Digest != want {
		logger.Logf(logger.Allow, "regression", "%s: adding digest that differs from golden digest", s)
	}

	db, err := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}

	key, err := db.Add(ent)
	if err != nil {
		_ = db.EndSession(false)
		return err
	}

	if err := db.EndSession(true); err != nil {
		return err
	}

	fmt.Fprintf(output, "added: %03d %s\n", key, ent)
	return nil
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer, dbPath string) error {
	db, err := database.StartSession(dbPath, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressDelete removes an entry from the database after confirmation. The
// entry is deleted if the confirmation begins with 'y' or 'Y'.
func RegressDelete(output io.Writer, confirmation io.Reader, dbPath string, key string) error {
	keys, err := parseKeys([]string{key})
	if err != nil {
		return err
	}

	db, err := database.StartSession(dbPath, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}

	ent, err := db.Get(keys[0])
	if err != nil {
		_ = db.EndSession(false)
		return err
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", ent)

	confirm, err := bufio.NewReader(confirmation).ReadString('\n')
	if err != nil && err != io.EOF {
		_ = db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	confirm = strings.TrimSpace(confirm)
	if !strings.HasPrefix(confirm, "y") && !strings.HasPrefix(confirm, "Y") {
		return db.EndSession(false)
	}

	if err := db.Delete(keys[0]); err != nil {
		_ = db.EndSession(false)
		return err
	}

	if err := db.EndSession(true); err != nil {
		return err
	}

	fmt.Fprintf(output, "deleted test #%03d from regression database\n", keys[0])
	return nil
}

// RunOptions for the RegressRun() function.
type RunOptions struct {
	// the keys of the entries to run. an empty list means every entry
	Keys []string

	// only run the entries that failed on the previous run. ignored if Keys
	// is not empty
	Fails bool

	// print the recorded and current digest of failed entries
	Verbose bool
}

// RegressRun checks the entries in the database. Returns an error with the
// Failures pattern if any entry fails.
func RegressRun(ctx context.Context, output io.Writer, dbPath string, opts RunOptions) error {
	db, err := database.StartSession(dbPath, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	selected := opts.Keys
	if len(selected) == 0 && opts.Fails {
		selected, err = loadFails(dbPath)
		if err != nil {
			return err
		}
		if len(selected) == 0 {
			fmt.Fprintln(output, "no failures recorded")
			return nil
		}
	}

	keys, err := parseKeys(selected)
	if err != nil {
		return err
	}

	if db.NumEntries() == 0 {
		fmt.Fprintln(output, "regression database is empty")
		return nil
	}

	var numPass int
	var fails []string

	onSelect := func(key int, e database.Entry) error {
		ent, ok := e.(*SweepEntry)
		if !ok {
			return curated.Errorf("regression: unexpected entry type (%s)", e.ID())
		}

		ok, dig, err := ent.regress(ctx)
		if err != nil {
			return err
		}

		if ok {
			numPass++
			fmt.Fprintf(output, "pass: %03d %s\n", key, ent)
			return nil
		}

		fails = append(fails, fmt.Sprintf("%03d", key))
		fmt.Fprintf(output, "fail: %03d %s\n", key, ent)
		if opts.Verbose {
			fmt.Fprintf(output, "  recorded: %s\n", ent.Digest)
			fmt.Fprintf(output, "   current: %s\n", dig)
		}
		logger.Logf(logger.Allow, "regression", "%s: fail", ent.Sweep)

		return nil
	}

	if len(keys) == 0 {
		_, err = db.SelectAll(onSelect)
	} else {
		_, err = db.SelectKeys(onSelect, keys...)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "regression tests: %d pass, %d fail\n", numPass, len(fails))

	if err := saveFails(dbPath, fails); err != nil {
		return err
	}

	if len(fails) > 0 {
		return curated.Errorf(Failures, len(fails))
	}

	return nil
}
