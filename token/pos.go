package token

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Loc is the location of a token in a formula. Start is the offset in
// characters of the first character of the token and Len is the number of
// characters it spans.
type Loc struct {
	Start int
	Len   int
}

func (l Loc) String() string {
	return fmt.Sprintf("at offset %d (len=%d)", l.Start, l.Len)
}

// Format renders msg followed by the formula, a line of carets under the
// span covered by l and then each line of diag aligned with the carets.
//
//	Malformed formula: Cr2(5SO4)3
//	                       ^
//	                       Compound groups cannot start
//	                       with numbers
func (l Loc) Format(formula, msg, diag string) string {
	indent := strings.Repeat(" ", utf8.RuneCountInString(msg)+2+l.Start)
	b := &strings.Builder{}
	b.WriteString(msg)
	b.WriteString(": ")
	b.WriteString(formula)
	b.WriteString("\n")
	b.WriteString(indent)
	b.WriteString(strings.Repeat("^", l.Len))
	if diag == "" {
		return b.String()
	}
	for _, ln := range strings.Split(diag, "\n") {
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(ln)
	}
	return b.String()
}
