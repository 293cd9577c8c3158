package equation

import (
	"errors"
	"fmt"
)

var ErrNoArrow = errors.New("products are not given, please use `=>` or `->` to separate the two sides")

type Side int

const (
	Reactants Side = iota
	Products
)

func (s Side) String() string {
	if s == Products {
		return "products"
	}
	return "reactants"
}

// TermErr is the error of the first term of an equation which failed to
// parse. Text is the trimmed term, against which locations in Err are
// relative.
type TermErr struct {
	Side  Side
	Index int
	Text  string
	Err   error
}

func (e *TermErr) Unwrap() error {
	return e.Err
}

func (e *TermErr) Error() string {
	return fmt.Sprintf("error in %s term %d %q: %s", e.Side, e.Index, e.Text, e.Err.Error())
}
