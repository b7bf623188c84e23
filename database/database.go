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
	"fmt"
	"io"
	"slices"

	"github.com/retrocheck/aluoracle/curated"
)

// arbitrary maximum number of entries.
const maxEntries = 1000

const fieldSep = ","
const entrySep = "\n"

const (
	leaderFieldKey int = iota
	leaderFieldID
	numLeaderFields
)

// KeyNotAvailable is the pattern for errors returned when a key does not
// exist in the database.
const KeyNotAvailable = "database: key not available (%d)"

// NumEntries returns the number of entries in the database.
func (db *Session) NumEntries() int {
	return len(db.entries)
}

// SortedKeyList returns a sorted list of database keys.
func (db *Session) SortedKeyList() []int {
	keys := make([]int, 0, len(db.entries))
	for k := range db.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// List the entries in key order.
func (db *Session) List(output io.Writer) error {
	if db.NumEntries() == 0 {
		_, err := io.WriteString(output, "database is empty\n")
		return err
	}

	_, err := db.SelectAll(func(key int, ent Entry) error {
		_, err := fmt.Fprintf(output, "%03d %s\n", key, ent)
		return err
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(output, "Total: %d\n", db.NumEntries())
	return err
}

// Get the entry with the specified key.
func (db *Session) Get(key int) (Entry, error) {
	ent, ok := db.entries[key]
	if !ok {
		return nil, curated.Errorf(KeyNotAvailable, key)
	}
	return ent, nil
}

// Add an entry to the db. Returns the key of the new entry.
func (db *Session) Add(ent Entry) (int, error) {
	if db.activity == ActivityReading {
		return 0, curated.Errorf(ReadOnly)
	}

	if _, ok := db.entryTypes[ent.ID()]; !ok {
		return 0, curated.Errorf("database: unrecognised entry type (%s)", ent.ID())
	}

	// check that the entry can be written before accepting it
	if _, err := record(0, ent); err != nil {
		return 0, err
	}

	// find spare key
	var key int
	for key = 0; key < maxEntries; key++ {
		if _, ok := db.entries[key]; !ok {
			break
		}
	}

	if key == maxEntries {
		return 0, curated.Errorf("database: maximum entries exceeded (max %d)", maxEntries)
	}

	db.entries[key] = ent

	return key, nil
}

// Delete deletes the entry with the specified key.
func (db *Session) Delete(key int) error {
	if db.activity == ActivityReading {
		return curated.Errorf(ReadOnly)
	}

	ent, ok := db.entries[key]
	if !ok {
		return curated.Errorf(KeyNotAvailable, key)
	}

	if err := ent.CleanUp(); err != nil {
		return curated.Errorf("database: %v", err)
	}

	delete(db.entries, key)

	return nil
}
