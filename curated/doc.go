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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which has the same form as fmt.Errorf().
//
// The pattern string given to Errorf() identifies the error. The Is()
// function checks whether an error was created with a specific pattern and
// the Has() function checks whether the pattern appears anywhere in the
// chain of wrapped curated errors.
//
//	e := curated.Errorf(alu.InvalidCarry, 2)
//	f := curated.Errorf("calc: %v", e)
//
//	curated.Is(f, alu.InvalidCarry)  // false
//	curated.Has(f, alu.InvalidCarry) // true
//
// Patterns that callers are expected to test for should be exported as string
// constants from the package that creates the error. These act as the
// sentinal errors of the package.
//
// The Error() function normalises the chain by removing duplicate adjacent
// parts. Chains are thought of as parts separated by the sub-string ": ". So
// wrapping "regression: bad digest" with the pattern "regression: %v" results
// in the message "regression: bad digest" and not "regression: regression:
// bad digest".
//
// Curated errors also implement Unwrap() so that errors.Is() and errors.As()
// from the standard library can see through to any error value passed as
// one of the placeholder values.
package curated
