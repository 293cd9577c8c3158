package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TOpenParen TokenType = iota
	TCloseParen
	TOpenBracket
	TCloseBracket
	TNumber
	TAtom
	TOther
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TOpenParen:    "TOpenParen",
		TCloseParen:   "TCloseParen",
		TOpenBracket:  "TOpenBracket",
		TCloseBracket: "TCloseBracket",
		TNumber:       "TNumber",
		TAtom:         "TAtom",
		TOther:        "TOther",
	}[t]
}

// Token is one lexical unit of a formula. Text holds the characters of the
// token verbatim.
type Token struct {
	Type TokenType
	Loc  Loc
	Text string
}

func Number(n int64) Token { return Token{Type: TNumber, Text: strconv.FormatInt(n, 10)} }
func Atom(name string) Token { return Token{Type: TAtom, Text: name} }
func Other(text string) Token { return Token{Type: TOther, Text: text} }
func OpenParen() Token        { return Token{Type: TOpenParen, Text: "("} }
func CloseParen() Token       { return Token{Type: TCloseParen, Text: ")"} }
func OpenBracket() Token      { return Token{Type: TOpenBracket, Text: "["} }
func CloseBracket() Token     { return Token{Type: TCloseBracket, Text: "]"} }

// Int returns the value of a TNumber token.
func (t Token) Int() (int64, error) {
	if t.Type != TNumber {
		return 0, fmt.Errorf("%w: %s is not a number", ErrNumber, t.Type)
	}
	n, err := strconv.ParseInt(t.Text, 10, 64)
	if err != nil {
		return 0, NewLocErr(ErrNumberRange, t.Loc)
	}
	return n, nil
}

// Equal reports whether t and o have the same type and payload. Locations
// are not compared.
func (t Token) Equal(o Token) bool {
	if t.Type != o.Type {
		return false
	}
	switch t.Type {
	case TNumber:
		a, aErr := t.Int()
		b, bErr := o.Int()
		if aErr != nil || bErr != nil {
			return t.Text == o.Text
		}
		return a == b
	case TAtom, TOther:
		return t.Text == o.Text
	default:
		return true
	}
}

func (t Token) Info() string {
	return fmt.Sprintf("%s %q %s", t.Type, t.Text, t.Loc)
}

func (t Token) String() string {
	switch t.Type {
	case TOpenParen:
		return "("
	case TCloseParen:
		return ")"
	case TOpenBracket:
		return "["
	case TCloseBracket:
		return "]"
	case TNumber:
		if n, err := t.Int(); err == nil {
			return "#" + strconv.FormatInt(n, 10)
		}
		return "#" + t.Text
	case TAtom:
		return "a" + t.Text
	default:
		return "o" + t.Text
	}
}
