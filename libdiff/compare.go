// Package libdiff compares the compositions of molecules.
package libdiff

import (
	"maps"
	"slices"

	"github.com/signadot/stoik/molecule"
)

// Delta is the difference in the count of one atom between two molecules.
type Delta struct {
	Atom string `yaml:"atom"`
	From int64  `yaml:"from"`
	To   int64  `yaml:"to"`
}

// Compare returns the atoms whose counts differ between from and to, in
// sorted order. Mole counts are taken into account. The result is empty
// when from and to have the same composition.
func Compare(from, to *molecule.Molecule) []Delta {
	a, b := from.Map(), to.Map()
	atoms := slices.Collect(maps.Keys(a))
	for atom := range b {
		if _, ok := a[atom]; !ok {
			atoms = append(atoms, atom)
		}
	}
	slices.Sort(atoms)
	var res []Delta
	for _, atom := range atoms {
		if a[atom] == b[atom] {
			continue
		}
		res = append(res, Delta{Atom: atom, From: a[atom], To: b[atom]})
	}
	return res
}
