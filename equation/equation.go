// Package equation reads chemical equations written as
//
//	A + B -> C + D
//
// where `=>` may be used in place of `->`.
package equation

import (
	"strings"

	"github.com/signadot/stoik/balance"
	"github.com/signadot/stoik/molecule"
)

type Equation struct {
	Text      string
	Reactants []balance.Term
	Products  []balance.Term
}

type TermParser func(string) (*molecule.Molecule, error)

type eqOpts struct {
	termParser TermParser
}

type Option func(*eqOpts)

// WithTermParser sets the function used to reduce each term. The default
// is molecule.FromFormula.
func WithTermParser(f TermParser) Option {
	return func(o *eqOpts) { o.termParser = f }
}

func Parse(text string, opts ...Option) (*Equation, error) {
	o := &eqOpts{termParser: func(s string) (*molecule.Molecule, error) {
		return molecule.FromFormula(s)
	}}
	for _, opt := range opts {
		opt(o)
	}
	text = strings.TrimSpace(text)
	lhs, rhs, ok := strings.Cut(strings.ReplaceAll(text, "=>", "->"), "->")
	if !ok {
		return nil, ErrNoArrow
	}
	eq := &Equation{Text: text}
	var err error
	eq.Reactants, err = parseSide(lhs, Reactants, o)
	if err != nil {
		return nil, err
	}
	eq.Products, err = parseSide(rhs, Products, o)
	if err != nil {
		return nil, err
	}
	return eq, nil
}

func parseSide(s string, side Side, o *eqOpts) ([]balance.Term, error) {
	parts := strings.Split(strings.TrimSpace(s), "+")
	res := make([]balance.Term, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		m, err := o.termParser(part)
		if err != nil {
			return nil, &TermErr{Side: side, Index: i, Text: part, Err: err}
		}
		res[i] = balance.Term{Molecule: m, Text: part}
	}
	return res, nil
}

func (e *Equation) Balance() (*balance.Report, error) {
	return balance.Evaluate(e.Reactants, e.Products)
}
