// Package balance checks whether the two sides of a chemical equation
// contain the same atoms in the same numbers.
package balance

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/signadot/stoik/debug"
	"github.com/signadot/stoik/molecule"
)

// Term is one formula on one side of an equation.
type Term struct {
	Molecule *molecule.Molecule
	Text     string
}

type Row struct {
	Atom      string `yaml:"atom"`
	Reactants int64  `yaml:"reactants"`
	Products  int64  `yaml:"products"`
	Balanced  bool   `yaml:"balanced"`
}

type Report struct {
	Balanced  bool             `yaml:"balanced"`
	Reactants map[string]int64 `yaml:"reactants"`
	Products  map[string]int64 `yaml:"products"`
	Rows      []Row            `yaml:"rows"`
}

// Totals sums the atom counts of terms. A sum which does not fit an int64
// fails with molecule.ErrCountRange.
func Totals(terms []Term) (map[string]int64, error) {
	res := map[string]int64{}
	for i := range terms {
		for atom, n := range terms[i].Molecule.Map() {
			sum, ok := molecule.AddCount(res[atom], n)
			if !ok {
				return nil, fmt.Errorf("%w: total of %s reaching %q", molecule.ErrCountRange, atom, terms[i].Text)
			}
			res[atom] = sum
		}
	}
	return res, nil
}

// Evaluate compares the atom totals of reactants and products. Rows are
// sorted by atom and an atom missing from one side counts as 0 there.
func Evaluate(reactants, products []Term) (*Report, error) {
	rTotals, err := Totals(reactants)
	if err != nil {
		return nil, fmt.Errorf("reactants: %w", err)
	}
	pTotals, err := Totals(products)
	if err != nil {
		return nil, fmt.Errorf("products: %w", err)
	}
	r := &Report{
		Balanced:  true,
		Reactants: rTotals,
		Products:  pTotals,
	}
	atoms := slices.Sorted(maps.Keys(r.Reactants))
	for atom := range r.Products {
		if _, ok := r.Reactants[atom]; !ok {
			atoms = append(atoms, atom)
		}
	}
	slices.Sort(atoms)
	r.Rows = make([]Row, len(atoms))
	for i, atom := range atoms {
		row := Row{
			Atom:      atom,
			Reactants: r.Reactants[atom],
			Products:  r.Products[atom],
		}
		row.Balanced = row.Reactants == row.Products
		r.Balanced = r.Balanced && row.Balanced
		r.Rows[i] = row
	}
	if debug.Balance() {
		debug.Logf("balance balanced=%t rows:\n", r.Balanced)
		debug.LogAny(r.Rows)
	}
	return r, nil
}

// Unbalanced returns the rows whose sides differ.
func (r *Report) Unbalanced() []Row {
	var res []Row
	for _, row := range r.Rows {
		if !row.Balanced {
			res = append(res, row)
		}
	}
	return res
}

// Select returns every row if all is set and the unbalanced rows otherwise.
func (r *Report) Select(all bool) []Row {
	if all {
		return r.Rows
	}
	return r.Unbalanced()
}

// Rows is a selection of rows which renders as a table.
type Rows []Row

func (rs Rows) Table() ([]string, [][]string) {
	res := make([][]string, len(rs))
	for i, row := range rs {
		res[i] = []string{
			row.Atom,
			strconv.FormatInt(row.Reactants, 10),
			strconv.FormatInt(row.Products, 10),
			strconv.FormatBool(row.Balanced),
		}
	}
	return []string{"Element", "Reactants", "Products", "Balanced"}, res
}
