package token

import (
	"iter"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/stoik/debug"
)

// Tokenizer produces the tokens of a formula one at a time. It only moves
// forward: tokens that have been returned cannot be produced again.
type Tokenizer struct {
	src string
	// i is the byte offset of the cursor, off the same position in
	// characters.
	i   int
	off int
}

func NewTokenizer(formula string) *Tokenizer {
	return &Tokenizer{src: formula}
}

// Next returns the next token. It returns false when only whitespace
// remains.
func (t *Tokenizer) Next() (Token, bool) {
	t.skipSpace()
	if t.i >= len(t.src) {
		return Token{}, false
	}
	r, sz := utf8.DecodeRuneInString(t.src[t.i:])
	var tok Token
	switch {
	case r == '(':
		tok = t.take(TOpenParen, sz, 1)
	case r == ')':
		tok = t.take(TCloseParen, sz, 1)
	case r == '[':
		tok = t.take(TOpenBracket, sz, 1)
	case r == ']':
		tok = t.take(TCloseBracket, sz, 1)
	case isDigit(r):
		tok = t.run(TNumber, sz, isDigit)
	case unicode.IsUpper(r):
		tok = t.run(TAtom, sz, unicode.IsLower)
	default:
		tok = t.run(TOther, sz, isOther)
	}
	if debug.Tokens() {
		debug.Logf("token %s\n", tok.Info())
	}
	return tok, true
}

// All returns the remaining tokens as a sequence. Ranging over the
// sequence consumes the tokenizer.
func (t *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := t.Next()
			if !ok {
				return
			}
			if !yield(tok) {
				return
			}
		}
	}
}

func (t *Tokenizer) skipSpace() {
	for t.i < len(t.src) {
		r, sz := utf8.DecodeRuneInString(t.src[t.i:])
		if !unicode.IsSpace(r) {
			return
		}
		t.i += sz
		t.off++
	}
}

// take consumes n bytes spanning w characters.
func (t *Tokenizer) take(tt TokenType, n, w int) Token {
	tok := Token{
		Type: tt,
		Loc:  Loc{Start: t.off, Len: w},
		Text: t.src[t.i : t.i+n],
	}
	t.i += n
	t.off += w
	return tok
}

// run consumes the first character, sz bytes long, and then every
// following character for which more holds.
func (t *Tokenizer) run(tt TokenType, sz int, more func(rune) bool) Token {
	n, w := sz, 1
	for t.i+n < len(t.src) {
		r, rsz := utf8.DecodeRuneInString(t.src[t.i+n:])
		if !more(r) {
			break
		}
		n += rsz
		w++
	}
	return t.take(tt, n, w)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isOther(r rune) bool {
	switch r {
	case '(', ')', '[', ']':
		return false
	}
	return !isDigit(r) && !unicode.IsUpper(r) && !unicode.IsSpace(r)
}
