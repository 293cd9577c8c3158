// Package token provides tokenization support for chemical formulas.
//
// [Tokenizer] is a single-use, forward-only cursor over the tokens of one
// formula. [Tokenize] materializes all tokens of a formula at once.
//
// Every [Token] carries a [Loc] so that later stages can point at the
// offending characters of a malformed formula with [Loc.Format].
package token
