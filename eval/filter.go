// Package eval filters balance rows with expressions such as
//
//	!Balanced && abs(Delta) > 1
//
// Expressions see the fields of a row (Atom, Reactants, Products,
// Balanced) and Delta, the product count minus the reactant count.
package eval

import (
	"fmt"

	"github.com/signadot/stoik/balance"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type Filter struct {
	src     string
	program *vm.Program
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(rowEnv(balance.Row{})),
		expr.AsBool(),
		expr.Function("abs", func(params ...any) (any, error) {
			n := params[0].(int)
			if n < 0 {
				return -n, nil
			}
			return n, nil
		},
			new(func(int) int)),
	}
}

func rowEnv(row balance.Row) map[string]any {
	return map[string]any{
		"Atom":      row.Atom,
		"Reactants": int(row.Reactants),
		"Products":  int(row.Products),
		"Balanced":  row.Balanced,
		"Delta":     int(row.Products - row.Reactants),
	}
}

func CompileFilter(src string) (*Filter, error) {
	program, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error compiling filter %q: %w", src, err)
	}
	return &Filter{src: src, program: program}, nil
}

func (f *Filter) String() string { return f.src }

func (f *Filter) Match(row balance.Row) (bool, error) {
	res, err := vm.Run(f.program, rowEnv(row))
	if err != nil {
		return false, fmt.Errorf("error evaluating filter %q on %s: %w", f.src, row.Atom, err)
	}
	return res.(bool), nil
}

// Rows returns the rows matching f.
func (f *Filter) Rows(rows []balance.Row) ([]balance.Row, error) {
	var res []balance.Row
	for _, row := range rows {
		ok, err := f.Match(row)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, row)
		}
	}
	return res, nil
}
