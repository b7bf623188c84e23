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

package digest

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"hash"
)

// Report is an io.Writer that keeps a running SHA-1 digest of everything
// written to it.
type Report struct {
	digest hash.Hash
	lines  int
}

// NewReport is the preferred method of initialisation for the Report type.
func NewReport() *Report {
	return &Report{
		digest: sha1.New(),
	}
}

// Write implements the io.Writer interface.
func (dig *Report) Write(p []byte) (int, error) {
	dig.lines += bytes.Count(p, []byte{'\n'})
	return dig.digest.Write(p)
}

// Hash returns the digest as a hex string.
func (dig *Report) Hash() string {
	return fmt.Sprintf("%x", dig.digest.Sum(nil))
}

// ResetDigest discards everything written so far.
func (dig *Report) ResetDigest() {
	dig.digest.Reset()
	dig.lines = 0
}

// Lines returns the number of complete lines written since the last reset.
func (dig *Report) Lines() int {
	return dig.lines
}
