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

package resources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retrocheck/aluoracle/test"
)

func TestJoinPath(t *testing.T) {
	base := filepath.Join(t.TempDir(), "base")

	p, err := joinPath(base, "regression", "db")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(base, "regression", "db"))

	// directories are created but not the file
	st, err := os.Stat(filepath.Join(base, "regression"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, st.IsDir())
	_, err = os.Stat(p)
	test.ExpectFailure(t, err)

	// base path is not prepended twice
	q, err := joinPath(base, p)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q, p)
}

func TestBasePath(t *testing.T) {
	b, err := basePath()
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, b, "")
}
