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

import "github.com/retrocheck/aluoracle/curated"

// SelectAll entries in the database in key order. onSelect can be nil.
//
// Selection stops if onSelect() returns an error. Returns the last entry
// selected, which is the entry that caused the error if there was one.
func (db *Session) SelectAll(onSelect func(int, Entry) error) (Entry, error) {
	return db.SelectKeys(onSelect)
}

// SelectKeys selects the entries with the specified keys, in the order in
// which the keys are given. If the list of keys is empty then all entries are
// selected in key order. onSelect can be nil.
//
// Selection stops if onSelect() returns an error. Returns the last entry
// selected, which is the entry that caused the error if there was one.
func (db *Session) SelectKeys(onSelect func(int, Entry) error, keys ...int) (Entry, error) {
	if onSelect == nil {
		onSelect = func(_ int, _ Entry) error { return nil }
	}

	if len(keys) == 0 {
		keys = db.SortedKeyList()
	}

	var ent Entry
	for _, key := range keys {
		var ok bool
		ent, ok = db.entries[key]
		if !ok {
			return nil, curated.Errorf(KeyNotAvailable, key)
		}
		if err := onSelect(key, ent); err != nil {
			return ent, err
		}
	}

	if ent == nil {
		return nil, curated.Errorf("database: select empty")
	}

	return ent, nil
}
