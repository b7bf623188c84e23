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

// Package digest fingerprints the output of the oracle so that large reports
// can be compared with a short string.
//
// The Report type is an io.Writer. Everything written to it contributes to a
// SHA-1 digest, available as a hex string with the Hash() function. The
// digest of a report is identical to the digest of the same report written to
// a file and hashed with sha1sum.
package digest
