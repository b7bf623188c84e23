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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At it's simplest it can be used as a replacement for the flag package, with
// some differences. Notably, the need to handle the results of Parse() for
// help output.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	filter := md.AddString("filter", "", "starlark filter expression")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		// help message has already been printed
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
// Modes are added with AddSubModes(). The first sub-mode is the default and is
// selected if the first remaining argument is not a listed sub-mode:
//
//	md.AddSubModes("SWEEP", "CALC", "VERIFY")
//	p, _ := md.Parse()
//	switch md.Mode() {
//	case "CALC":
//		md.NewMode()
//		decimal := md.AddBool("decimal", false, "decimal mode")
//		...
//	}
//
// Sub-modes are compared case insensitively. The chain of modes selected
// during parsing is available with Path().
package modalflag
