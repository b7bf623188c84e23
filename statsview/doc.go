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

// Package statsview is an optional package. The functional version is built
// only when the statsview build tag is present. Without the tag, Available()
// returns false and Launch() does nothing but say so.
//
// When built, the package provides an HTTP server running locally offering
// runtime statistics. Underlying functionality provided by
// "github.com/go-echarts/statsview". Graphical statistics will be viewable at:
//
//	localhost:12600/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12600/debug/pprof/
//
// Useful for watching memory and goroutine behaviour during long sweeps and
// performance runs.
package statsview
