package token

import (
	"errors"
	"fmt"
)

var (
	ErrNumber      = errors.New("number")
	ErrNumberRange = fmt.Errorf("%w: out of range", ErrNumber)
)

// LocErr is an error attached to the location of the token which caused it.
type LocErr struct {
	Err error
	Loc Loc
}

func NewLocErr(e error, l Loc) *LocErr {
	return &LocErr{Err: e, Loc: l}
}

func (e *LocErr) Unwrap() error {
	return e.Err
}

func (e *LocErr) Error() string {
	return fmt.Sprintf("%s %s", e.Err.Error(), e.Loc.String())
}
