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

package sweep

import (
	"fmt"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/retrocheck/aluoracle/curated"
)

// Patterns for errors created by the Filter type.
const (
	FilterCompile = "filter: %v"
	FilterEval    = "filter: %s: %v"
)

// Filter selects vectors with a Starlark expression.
type Filter struct {
	expr  string
	match starlark.Callable
}

// the expression is wrapped in a function so that it is compiled only once.
// the function parameters are the names available to the expression
const filterTemplate = `def match(a, operand, result, n, v, z, c):
    return (%s)
`

// NewFilter compiles a Starlark expression into a Filter. The expression can
// refer to the following names:
//
//	a        the accumulator (int)
//	operand  the operand (int)
//	result   the result byte (int)
//	n        the negative flag (bool)
//	v        the overflow flag (bool)
//	z        the zero flag (bool)
//	c        the carry flag (bool)
//
// A vector is selected if the expression is true in the Starlark sense. For
// example, to select decimal additions where overflow is set but the carry
// is clear:
//
//	v and not c
func NewFilter(expr string) (*Filter, error) {
	if strings.ContainsAny(expr, "\n\r") {
		return nil, curated.Errorf(FilterCompile, "expression must be a single line")
	}
	if strings.TrimSpace(expr) == "" {
		return nil, curated.Errorf(FilterCompile, "empty expression")
	}

	thread := &starlark.Thread{Name: "filter compile"}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, thread, "filter", fmt.Sprintf(filterTemplate, expr), nil)
	if err != nil {
		return nil, curated.Errorf(FilterCompile, err)
	}

	// frozen globals can be shared between threads
	globals.Freeze()

	match, ok := globals["match"].(starlark.Callable)
	if !ok {
		return nil, curated.Errorf(FilterCompile, "no match function")
	}

	return &Filter{
		expr:  expr,
		match: match,
	}, nil
}

func (flt *Filter) String() string {
	return flt.expr
}

// matcher returns a function that evaluates the filter for one vector. each
// matcher has its own starlark thread and so one matcher must not be used by
// more than one goroutine.
func (flt *Filter) matcher() func(Vector) (bool, error) {
	thread := &starlark.Thread{Name: "filter"}

	return func(vec Vector) (bool, error) {
		args := starlark.Tuple{
			starlark.MakeInt(int(vec.A)),
			starlark.MakeInt(int(vec.Operand)),
			starlark.MakeInt(int(vec.Result)),
			starlark.Bool(vec.Flags.Negative),
			starlark.Bool(vec.Flags.Overflow),
			starlark.Bool(vec.Flags.Zero),
			starlark.Bool(vec.Flags.Carry),
		}

		r, err := starlark.Call(thread, flt.match, args, nil)
		if err != nil {
			return false, curated.Errorf(FilterEval, flt.expr, err)
		}
		return bool(r.Truth()), nil
	}
}

// Match returns true if the vector satisfies the filter. Safe for concurrent
// use.
func (flt *Filter) Match(vec Vector) (bool, error) {
	return flt.matcher()(vec)
}
