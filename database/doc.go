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

// Package database is a very simple way of storing structured and arbitrary
// entry types in a flat file. Each line of the file is one entry:
//
//	key,entryID,field,field,...
//
// Use of a database requires starting a "session" with StartSession(),
// coupled with an EndSession() once we're done. For example (error handling
// removed for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityCreating, initSession)
//	defer db.EndSession(true)
//
// The activity describes what will happen during the session. A database file
// is only created with ActivityCreating. If the file already exists,
// ActivityCreating is treated the same as ActivityModifying. Entries cannot be
// added or deleted during an ActivityReading session.
//
// The initialisation function registers the entry types that the database
// might contain:
//
//	func initSession(db *database.Session) error {
//		return db.RegisterEntryType("sweep", deserialiseSweep)
//	}
//
// The deserialiser receives the fields that follow the key and entry ID and
// returns a new Entry. Entries are deserialised as part of StartSession() and
// any error from a deserialiser causes StartSession() to fail.
//
// Fields cannot contain the field or entry separators. Add() will fail if a
// serialised entry contains either.
package database
