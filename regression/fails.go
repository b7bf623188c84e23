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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/retrocheck/aluoracle/curated"
)

// the keys of failed entries are stored in a file alongside the database
func failsPath(dbPath string) string {
	return fmt.Sprintf("%s.fails", dbPath)
}

func saveFails(dbPath string, keys []string) error {
	slices.Sort(keys)
	keys = slices.Compact(keys)

	f, err := os.Create(failsPath(dbPath))
	if err != nil {
		return curated.Errorf("regression: save fails: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	for _, k := range keys {
		if _, err := fmt.Fprintln(f, k); err != nil {
			return curated.Errorf("regression: save fails: %v", err)
		}
	}

	return nil
}

func loadFails(dbPath string) ([]string, error) {
	f, err := os.Open(failsPath(dbPath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return []string{}, curated.Errorf("regression: load fails: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	b, err := io.ReadAll(f)
	if err != nil {
		return []string{}, curated.Errorf("regression: load fails: %v", err)
	}

	return strings.Fields(string(b)), nil
}
