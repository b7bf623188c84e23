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

package statsview_test

import (
	"testing"

	"github.com/retrocheck/aluoracle/statsview"
	"github.com/retrocheck/aluoracle/test"
)

func TestAvailable(t *testing.T) {
	// tests are normally run without the statsview tag
	if statsview.Available() {
		t.Skip("statsview build")
	}

	w := &test.CompareWriter{}
	stop := statsview.Launch(w)
	stop()
	test.ExpectSuccess(t, w.Compare("stats server not available in this build\n"), w.String())
	test.ExpectEquality(t, statsview.Address, "")
}
