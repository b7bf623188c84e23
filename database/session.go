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

package database

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/retrocheck/aluoracle/curated"
)

// Activity is used to specify the type of activity that will be performed
// during the database session.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// Patterns for errors that callers might want to test for.
const (
	NotAvailable = "database: not available (%s)"
	ReadOnly     = "database: session is read only"
)

// Session keeps track of a database session.
type Session struct {
	dbfile   *os.File
	activity Activity

	entryTypes map[string]Deserialiser
	entries    map[int]Entry
}

// StartSession starts/initialises a new database session. The init function
// registers the entry types for the session. EndSession() should be called
// when the session is finished with.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		activity:   activity,
		entryTypes: make(map[string]Deserialiser),
		entries:    make(map[int]Entry),
	}

	var flags int
	switch activity {
	case ActivityReading:
		flags = os.O_RDONLY
	case ActivityModifying:
		flags = os.O_RDWR
	case ActivityCreating:
		flags = os.O_RDWR | os.O_CREATE
	default:
		return nil, curated.Errorf("database: unknown activity (%d)", activity)
	}

	var err error
	db.dbfile, err = os.OpenFile(path, flags, 0600)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NotAvailable, path)
		}
		return nil, curated.Errorf("database: %v", err)
	}

	// closing of db.dbfile requires a call to EndSession()

	if init != nil {
		if err := init(db); err != nil {
			db.dbfile.Close()
			return nil, curated.Errorf("database: %v", err)
		}
	}

	if err := db.readDBFile(); err != nil {
		db.dbfile.Close()
		return nil, err
	}

	return db, nil
}

// EndSession closes the database. Changes are written to the file if
// commitChanges is true and the session is not read only.
func (db *Session) EndSession(commitChanges bool) error {
	if db.dbfile == nil {
		return nil
	}

	if commitChanges && db.activity != ActivityReading {
		if err := db.writeDBFile(); err != nil {
			db.dbfile.Close()
			db.dbfile = nil
			return err
		}
	}

	err := db.dbfile.Close()
	db.dbfile = nil
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}

func (db *Session) writeDBFile() error {
	if err := db.dbfile.Truncate(0); err != nil {
		return curated.Errorf("database: %v", err)
	}
	if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
		return curated.Errorf("database: %v", err)
	}

	w := bufio.NewWriter(db.dbfile)
	for _, key := range db.SortedKeyList() {
		rec, err := record(key, db.entries[key])
		if err != nil {
			return err
		}
		if _, err := w.WriteString(rec); err != nil {
			return curated.Errorf("database: %v", err)
		}
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf("database: %v", err)
	}
	return nil
}

func (db *Session) readDBFile() error {
	if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
		return curated.Errorf("database: %v", err)
	}

	scanner := bufio.NewScanner(db.dbfile)
	line := 0
	for scanner.Scan() {
		line++

		rec := scanner.Text()
		if strings.TrimSpace(rec) == "" {
			continue // for loop
		}

		fields := strings.Split(rec, fieldSep)
		if len(fields) < numLeaderFields {
			return curated.Errorf("database: malformed record (line %d)", line)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return curated.Errorf("database: malformed key (line %d)", line)
		}
		if _, ok := db.entries[key]; ok {
			return curated.Errorf("database: duplicate key (%d)", key)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return curated.Errorf("database: unrecognised entry type (%s)", fields[leaderFieldID])
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return curated.Errorf("database: line %d: %v", line, err)
		}

		db.entries[key] = ent
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}

func record(key int, ent Entry) (string, error) {
	ser, err := ent.Serialise()
	if err != nil {
		return "", curated.Errorf("database: %v", err)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%03d%s%s", key, fieldSep, ent.ID()))
	for _, f := range ser {
		if strings.Contains(f, fieldSep) || strings.Contains(f, entrySep) {
			return "", curated.Errorf("database: field contains separator (%q)", f)
		}
		s.WriteString(fieldSep)
		s.WriteString(f)
	}
	s.WriteString(entrySep)

	return s.String(), nil
}
