package stoik

import (
	"errors"
	"testing"

	"github.com/signadot/stoik/equation"
	"github.com/signadot/stoik/molecule"
	"github.com/signadot/stoik/parse"
)

func TestFormula(t *testing.T) {
	m, err := Formula("Rh2(SO4)3")
	if err != nil {
		t.Fatal(err)
	}
	if m.Count("Rh") != 2 || m.Count("S") != 3 || m.Count("O") != 12 {
		t.Errorf("got %s", m)
	}
}

type checkTest struct {
	in       string
	balanced bool
	err      error
}

func TestCheck(t *testing.T) {
	cts := []checkTest{
		{in: "H2 + O2 -> H2O", balanced: false},
		{in: "2H2 + O2 -> 2H2O", balanced: true},
		{in: "2H2 + O2 => 2H2O", balanced: true},
		{in: "Fe2O3 + 3CO -> 2Fe + 3CO2", balanced: true},
		{in: "C6H12O6 + 6O2 -> 6CO2 + 6H2O", balanced: true},
		{in: "H2 + O2", err: equation.ErrNoArrow},
		{in: "H2 + Cr2(5SO4)3 -> H2O", err: parse.ErrNumberFirst},
		{in: "H -> (H4611686018427387904)4H", err: molecule.ErrCountRange},
	}
	for _, ct := range cts {
		r, err := Check(ct.in)
		if ct.err != nil {
			if !errors.Is(err, ct.err) {
				t.Errorf("%q: got %v want %v", ct.in, err, ct.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", ct.in, err)
			continue
		}
		if r.Balanced != ct.balanced {
			t.Errorf("%q: got balanced=%t: %v", ct.in, r.Balanced, r.Rows)
		}
	}
}
