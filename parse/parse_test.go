package parse

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/stoik/token"
)

type parseTest struct {
	in  string
	out *Node
}

func TestParseOK(t *testing.T) {
	so4 := func() *Node { return Subcompound(Atom("S"), Multiplier(Atom("O"), 4)) }
	pts := []parseTest{
		{in: "H", out: Atom("H")},
		{in: "O2", out: Multiplier(Atom("O"), 2)},
		{in: "H2O", out: Subcompound(Multiplier(Atom("H"), 2), Atom("O"))},
		{in: "2H2O", out: Mole(Subcompound(Multiplier(Atom("H"), 2), Atom("O")), 2)},
		{in: "2 H2O", out: Mole(Subcompound(Multiplier(Atom("H"), 2), Atom("O")), 2)},
		{in: "Rh2(SO4)3", out: Subcompound(
			Multiplier(Atom("Rh"), 2),
			Multiplier(so4(), 3),
		)},
		{in: "5(SO4)", out: Mole(so4(), 5)},
		{in: "5SO4", out: Mole(so4(), 5)},
		{in: "2(SO5)3", out: Mole(Multiplier(Subcompound(Atom("S"), Multiplier(Atom("O"), 5)), 3), 2)},
		{in: "[Cu(NH3)4]SO4", out: Subcompound(
			Subcompound(Atom("Cu"), Multiplier(Subcompound(Atom("N"), Multiplier(Atom("H"), 3)), 4)),
			Atom("S"),
			Multiplier(Atom("O"), 4),
		)},
		{in: "(H)", out: Atom("H")},
		{in: "((H2))3", out: Multiplier(Multiplier(Atom("H"), 2), 3)},
		{in: "()", out: Empty()},
		{in: "()2", out: Multiplier(Empty(), 2)},
		{in: "3", out: Mole(Empty(), 3)},
	}
	for _, pt := range pts {
		node, err := Parse(pt.in)
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		if diff := cmp.Diff(pt.out, node); diff != "" {
			t.Errorf("%q: got %s (-want +got):\n%s", pt.in, node, diff)
		}
	}
}

type parseErrTest struct {
	in   string
	opts []ParseOption
	err  error
	loc  *token.Loc
}

func TestParseErr(t *testing.T) {
	pts := []parseErrTest{
		{in: "", err: ErrInvalidInput},
		{in: "   ", err: ErrInvalidInput},
		{in: "Rh2(SO4", err: ErrUnpairedParen, loc: &token.Loc{Start: 3, Len: 1}},
		{in: "Cr2(5SO4)3", err: ErrNumberFirst, loc: &token.Loc{Start: 4, Len: 1}},
		{in: "(5SO4)", err: ErrNumberFirst, loc: &token.Loc{Start: 1, Len: 1}},
		{in: "H2)", err: ErrUnpairedParen, loc: &token.Loc{Start: 2, Len: 1}},
		{in: "H]", err: ErrUnpairedBracket, loc: &token.Loc{Start: 1, Len: 1}},
		{in: "[H", err: ErrUnpairedParen, loc: &token.Loc{Start: 0, Len: 1}},
		{in: "(H)(O", err: ErrUnpairedParen, loc: &token.Loc{Start: 3, Len: 1}},
		{in: "(x]", err: ErrUnpairedParen, loc: &token.Loc{Start: 0, Len: 1}},
		{in: "H2xy", err: ErrInvalidToken, loc: &token.Loc{Start: 2, Len: 2}},
		{in: "H(xy)", err: ErrInvalidToken, loc: &token.Loc{Start: 2, Len: 2}},
		{in: "2 2", err: ErrNumberFirst, loc: &token.Loc{Start: 2, Len: 1}},
		{in: "H99999999999999999999", err: token.ErrNumberRange, loc: &token.Loc{Start: 1, Len: 20}},
		{in: "99999999999999999999H", err: token.ErrNumberRange, loc: &token.Loc{Start: 0, Len: 20}},
		{in: "H2(((O)))", opts: []ParseOption{MaxDepth(2)}, err: ErrTooDeep, loc: &token.Loc{Start: 4, Len: 1}},
	}
	for _, pt := range pts {
		node, err := Parse(pt.in, pt.opts...)
		if err == nil {
			t.Errorf("%q: expected error, got %s", pt.in, node)
			continue
		}
		if !errors.Is(err, pt.err) {
			t.Errorf("%q: got %v want %v", pt.in, err, pt.err)
			continue
		}
		var le *token.LocErr
		hasLoc := errors.As(err, &le)
		if pt.loc == nil {
			if hasLoc {
				t.Errorf("%q: unexpected location %v", pt.in, le.Loc)
			}
			continue
		}
		if !hasLoc {
			t.Errorf("%q: expected location in %v", pt.in, err)
			continue
		}
		if le.Loc != *pt.loc {
			t.Errorf("%q: got location %v want %v", pt.in, le.Loc, *pt.loc)
		}
	}
}

func TestParseMaxDepthOK(t *testing.T) {
	if _, err := Parse("H2(((O)))", MaxDepth(3)); err != nil {
		t.Error(err)
	}
	if _, err := Parse("H2(((O)))", MaxDepth(0)); err != nil {
		t.Error(err)
	}
}

func TestAssembleMaterialized(t *testing.T) {
	toks := token.Tokenize("Rh2(SO4)3")
	a, err := Assemble(slices.Values(toks))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("Rh2(SO4)3")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("got %s want %s", a, b)
	}
}

func TestNodeString(t *testing.T) {
	n, err := Parse("2Rh2(SO4)3")
	if err != nil {
		t.Fatal(err)
	}
	want := "Mole{Subcompound[Multiplier{Atom(Rh), 2}, Multiplier{Subcompound[Atom(S), Multiplier{Atom(O), 4}], 3}], 2}"
	if got := n.String(); got != want {
		t.Errorf("got %s", got)
	}
}
