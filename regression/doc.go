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

// Package regression records the digests of sweeps in a database so that
// changes in the behaviour of the arithmetic unit can be detected. This is
// separate from the golden table in the sweep package: the golden table is
// fixed at build time whereas regression entries can be added as needed, with
// notes, and can record the behaviour of a modified build for later
// comparison.
//
// Entries are added with RegressAdd() and checked with RegressRun(). The keys
// of failed entries are remembered so that a subsequent run can be limited to
// the failures.
package regression
