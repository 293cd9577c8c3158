package parse

import (
	"fmt"
	"iter"

	"github.com/signadot/stoik/debug"
	"github.com/signadot/stoik/token"
)

// Parse tokenizes and assembles formula.
func Parse(formula string, opts ...ParseOption) (*Node, error) {
	return Assemble(token.NewTokenizer(formula).All(), opts...)
}

// Assemble builds the syntax tree of a formula from its tokens. Errors
// caused by a specific token are returned as *token.LocErr wrapping one of
// the sentinel errors of this package.
func Assemble(toks iter.Seq[token.Token], opts ...ParseOption) (*Node, error) {
	o := &parseOpts{}
	for _, opt := range opts {
		opt(o)
	}
	next, stop := iter.Pull(toks)
	defer stop()

	first, ok := next()
	if !ok {
		return nil, fmt.Errorf("%w: empty token sequence cannot build a tree", ErrInvalidInput)
	}
	var res *Node
	if first.Type == token.TNumber {
		mul, err := first.Int()
		if err != nil {
			return nil, err
		}
		inner, err := assemble(next, nil, 0, o)
		if err != nil {
			return nil, err
		}
		res = Mole(inner, mul)
		res.Loc = first.Loc
	} else {
		var err error
		res, err = assemble(next, &first, 0, o)
		if err != nil {
			return nil, err
		}
	}
	if debug.Tree() {
		debug.Logf("tree %s\n", res)
	}
	return res, nil
}

// assemble builds the nodes of one group. start, if not nil, is the first
// token of the group and has already been pulled from next.
func assemble(next func() (token.Token, bool), start *token.Token, depth int, o *parseOpts) (*Node, error) {
	var (
		tok token.Token
		ok  bool
	)
	if start != nil {
		tok, ok = *start, true
	} else {
		tok, ok = next()
	}

	var (
		parens, brackets int
		nestedStart      token.Loc
		nested           []token.Token
		nodes            []*Node
	)
	for ; ok; tok, ok = next() {
		if parens == 0 && brackets == 0 {
			switch tok.Type {
			case token.TOpenParen:
				parens++
				nestedStart = tok.Loc
			case token.TOpenBracket:
				brackets++
				nestedStart = tok.Loc
			case token.TCloseParen:
				return nil, token.NewLocErr(ErrUnpairedParen, tok.Loc)
			case token.TCloseBracket:
				return nil, token.NewLocErr(ErrUnpairedBracket, tok.Loc)
			case token.TNumber:
				if len(nodes) == 0 {
					return nil, token.NewLocErr(ErrNumberFirst, tok.Loc)
				}
				mul, err := tok.Int()
				if err != nil {
					return nil, err
				}
				last := len(nodes) - 1
				nodes[last] = Multiplier(nodes[last], mul)
				nodes[last].Loc = tok.Loc
			case token.TAtom:
				a := Atom(tok.Text)
				a.Loc = tok.Loc
				nodes = append(nodes, a)
			default:
				return nil, token.NewLocErr(ErrInvalidToken, tok.Loc)
			}
			continue
		}

		switch tok.Type {
		case token.TOpenParen:
			parens++
		case token.TCloseParen:
			parens--
		case token.TOpenBracket:
			brackets++
		case token.TCloseBracket:
			brackets--
		}
		if parens != 0 || brackets != 0 {
			nested = append(nested, tok)
			continue
		}
		if o.maxDepth > 0 && depth+1 > o.maxDepth {
			return nil, token.NewLocErr(ErrTooDeep, nestedStart)
		}
		sub, err := assemble(sliceNext(nested), nil, depth+1, o)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, sub)
		nested = nil
	}
	if parens != 0 || brackets != 0 {
		return nil, token.NewLocErr(ErrUnpairedParen, nestedStart)
	}

	switch len(nodes) {
	case 0:
		return Empty(), nil
	case 1:
		return nodes[0], nil
	default:
		return Subcompound(nodes...), nil
	}
}

func sliceNext(toks []token.Token) func() (token.Token, bool) {
	i := 0
	return func() (token.Token, bool) {
		if i == len(toks) {
			return token.Token{}, false
		}
		tok := toks[i]
		i++
		return tok, true
	}
}
