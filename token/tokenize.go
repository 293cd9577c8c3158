package token

// Tokenize returns all the tokens of formula.
func Tokenize(formula string) []Token {
	var res []Token
	for tok := range NewTokenizer(formula).All() {
		res = append(res, tok)
	}
	return res
}
