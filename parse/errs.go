package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse           = errors.New("parse error")
	ErrInvalidInput    = fmt.Errorf("%w: invalid input", ErrParse)
	ErrInvalidToken    = fmt.Errorf("%w: invalid token", ErrParse)
	ErrNumberFirst     = fmt.Errorf("%w: number first in compound group", ErrParse)
	ErrUnpairedParen   = fmt.Errorf("%w: unpaired parenthesis", ErrParse)
	ErrUnpairedBracket = fmt.Errorf("%w: unpaired bracket", ErrParse)
	ErrTooDeep         = fmt.Errorf("%w: nesting too deep", ErrParse)
)
