package molecule

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/stoik/parse"
)

type Molecule struct {
	Moles int64
	atoms map[string]int64
}

func New() *Molecule {
	return &Molecule{Moles: 1, atoms: map[string]int64{}}
}

// FromFormula tokenizes, parses and reduces formula.
func FromFormula(formula string, opts ...parse.ParseOption) (*Molecule, error) {
	root, err := parse.Parse(formula, opts...)
	if err != nil {
		return nil, err
	}
	return FromTree(root)
}

// IncreaseAtom adds n to the count of atom in a single molecule, without
// regard to Moles. It fails with ErrCountRange, leaving m unchanged, when
// the new count or the new count times Moles does not fit an int64.
func (m *Molecule) IncreaseAtom(atom string, n int64) error {
	c, ok := AddCount(m.atoms[atom], n)
	if ok {
		_, ok = MulCount(c, m.Moles)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrCountRange, atom)
	}
	if m.atoms == nil {
		m.atoms = map[string]int64{}
	}
	m.atoms[atom] = c
	return nil
}

// Count returns the count of atom taking Moles into account. Counts are in
// range as long as Moles was set before the atoms were added.
func (m *Molecule) Count(atom string) int64 {
	return m.atoms[atom] * m.Moles
}

// Map returns the count of every atom taking Moles into account.
func (m *Molecule) Map() map[string]int64 {
	res := make(map[string]int64, len(m.atoms))
	for atom, n := range m.atoms {
		res[atom] = n * m.Moles
	}
	return res
}

// Atoms returns the atoms of m in sorted order.
func (m *Molecule) Atoms() []string {
	return slices.Sorted(maps.Keys(m.atoms))
}

func (m *Molecule) Clone() *Molecule {
	return &Molecule{Moles: m.Moles, atoms: maps.Clone(m.atoms)}
}

func (m *Molecule) Equal(o *Molecule) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.Moles == o.Moles && maps.Equal(m.atoms, o.atoms)
}

// String renders m with its atoms in sorted order, eg "2 H2O".
func (m *Molecule) String() string {
	b := &strings.Builder{}
	if m.Moles != 1 {
		b.WriteString(strconv.FormatInt(m.Moles, 10))
		b.WriteString(" ")
	}
	for _, atom := range m.Atoms() {
		b.WriteString(atom)
		if n := m.atoms[atom]; n != 1 {
			b.WriteString(strconv.FormatInt(n, 10))
		}
	}
	return b.String()
}
