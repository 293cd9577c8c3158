// Package molecule reduces formula syntax trees to atom counts.
//
// A [Molecule] keeps its atom counts separately from its mole count: the
// counts are those of a single molecule and the mole count is applied when
// counts are read with [Molecule.Count] or [Molecule.Map].
package molecule
