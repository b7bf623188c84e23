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

package database_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retrocheck/aluoracle/curated"
	"github.com/retrocheck/aluoracle/database"
	"github.com/retrocheck/aluoracle/test"
)

// noteEntry is a minimal entry type with a single field
type noteEntry struct {
	note    string
	cleaned *bool
}

func (e *noteEntry) ID() string {
	return "note"
}

func (e *noteEntry) String() string {
	return e.note
}

func (e *noteEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{e.note}, nil
}

func (e *noteEntry) CleanUp() error {
	if e.cleaned != nil {
		*e.cleaned = true
	}
	return nil
}

func deserialiseNote(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != 1 {
		return nil, errors.New("note: wrong number of fields")
	}
	return &noteEntry{note: fields[0]}, nil
}

func initSession(db *database.Session) error {
	return db.RegisterEntryType("note", deserialiseNote)
}

func TestNotAvailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")

	_, err := database.StartSession(path, database.ActivityReading, initSession)
	test.ExpectSuccess(t, curated.Is(err, database.NotAvailable))

	_, err = database.StartSession(path, database.ActivityModifying, initSession)
	test.ExpectSuccess(t, curated.Is(err, database.NotAvailable))
}

func TestSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(path, database.ActivityCreating, initSession)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 0)

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, db.List(w))
	test.ExpectSuccess(t, w.Compare("database is empty\n"))

	for _, n := range []string{"first", "second", "third"} {
		_, err := db.Add(&noteEntry{note: n})
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, db.EndSession(true))

	data, err := os.ReadFile(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "000,note,first\n001,note,second\n002,note,third\n")

	// read it back and delete the middle entry
	db, err = database.StartSession(path, database.ActivityModifying, initSession)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 3)

	var cleaned bool
	ent, err := db.Get(1)
	test.DemandSuccess(t, err)
	ent.(*noteEntry).cleaned = &cleaned
	test.DemandSuccess(t, db.Delete(1))
	test.ExpectSuccess(t, cleaned)

	err = db.Delete(1)
	test.ExpectSuccess(t, curated.Is(err, database.KeyNotAvailable))

	// the lowest free key is reused
	key, err := db.Add(&noteEntry{note: "fourth"})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, key, 1)
	test.DemandSuccess(t, db.EndSession(true))

	db, err = database.StartSession(path, database.ActivityReading, initSession)
	test.DemandSuccess(t, err)
	defer db.EndSession(false)

	w.Clear()
	test.ExpectSuccess(t, db.List(w))
	test.ExpectSuccess(t, w.Compare("000 first\n001 fourth\n002 third\nTotal: 3\n"), w.String())

	_, err = db.Add(&noteEntry{note: "fifth"})
	test.ExpectSuccess(t, curated.Is(err, database.ReadOnly))
	err = db.Delete(0)
	test.ExpectSuccess(t, curated.Is(err, database.ReadOnly))
}

func TestUncommitted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(path, database.ActivityCreating, initSession)
	test.DemandSuccess(t, err)
	_, err = db.Add(&noteEntry{note: "discarded"})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, db.EndSession(false))

	db, err = database.StartSession(path, database.ActivityReading, initSession)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 0)
	test.ExpectSuccess(t, db.EndSession(false))

	// ending a session twice is harmless
	test.ExpectSuccess(t, db.EndSession(false))
}

func TestSelect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")
	test.DemandSuccess(t, os.WriteFile(path, []byte("000,note,a\n001,note,b\n\n002,note,c\n"), 0600))

	db, err := database.StartSession(path, database.ActivityReading, initSession)
	test.DemandSuccess(t, err)
	defer db.EndSession(false)

	var s strings.Builder
	collect := func(key int, ent database.Entry) error {
		s.WriteString(ent.String())
		return nil
	}

	_, err = db.SelectAll(collect)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.String(), "abc")

	s.Reset()
	last, err := db.SelectKeys(collect, 2, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.String(), "ca")
	test.ExpectEquality(t, last.String(), "a")

	_, err = db.SelectKeys(collect, 5)
	test.ExpectSuccess(t, curated.Is(err, database.KeyNotAvailable))

	// stop selecting on error
	stop := errors.New("stop")
	s.Reset()
	last, err = db.SelectAll(func(key int, ent database.Entry) error {
		s.WriteString(ent.String())
		if key == 1 {
			return stop
		}
		return nil
	})
	test.ExpectSuccess(t, errors.Is(err, stop))
	test.ExpectEquality(t, s.String(), "ab")
	test.ExpectEquality(t, last.String(), "b")
}

func TestMalformed(t *testing.T) {
	for _, rec := range []string{
		"000\n",
		"xyz,note,a\n",
		"000,unknown,a\n",
		"000,note,a,b\n",
		"000,note,a\n000,note,b\n",
	} {
		path := filepath.Join(t.TempDir(), "db")
		test.DemandSuccess(t, os.WriteFile(path, []byte(rec), 0600))
		_, err := database.StartSession(path, database.ActivityReading, initSession)
		test.ExpectFailure(t, err, rec)
	}
}

func TestSeparatorInField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(path, database.ActivityCreating, initSession)
	test.DemandSuccess(t, err)
	defer db.EndSession(false)

	_, err = db.Add(&noteEntry{note: "with,comma"})
	test.ExpectFailure(t, err)
	_, err = db.Add(&noteEntry{note: "with\nnewline"})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, db.NumEntries(), 0)
}

func TestDuplicateEntryType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")
	_, err := database.StartSession(path, database.ActivityCreating, func(db *database.Session) error {
		if err := db.RegisterEntryType("note", deserialiseNote); err != nil {
			return err
		}
		return db.RegisterEntryType("note", deserialiseNote)
	})
	test.ExpectFailure(t, err)
}
