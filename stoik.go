// Package stoik reads chemical formulas and checks chemical equations.
//
//	m, err := stoik.Formula("Rh2(SO4)3")
//	// m.Count("O") == 12
//
//	r, err := stoik.Check("2H2 + O2 -> 2H2O")
//	// r.Balanced == true
//
// The stages are available separately in packages token, parse, molecule
// and balance.
package stoik

import (
	"github.com/signadot/stoik/balance"
	"github.com/signadot/stoik/equation"
	"github.com/signadot/stoik/molecule"
)

// Formula reduces a formula to its atom counts.
func Formula(formula string) (*molecule.Molecule, error) {
	return molecule.FromFormula(formula)
}

// Check reports whether both sides of equation contain the same atoms.
func Check(text string) (*balance.Report, error) {
	eq, err := equation.Parse(text)
	if err != nil {
		return nil, err
	}
	return eq.Balance()
}
