// Package diag renders formula errors for people, pointing at the
// offending characters of the formula where possible.
package diag

import (
	"errors"
	"strings"

	"github.com/signadot/stoik/equation"
	"github.com/signadot/stoik/molecule"
	"github.com/signadot/stoik/parse"
	"github.com/signadot/stoik/token"

	"github.com/fatih/color"
)

const header = "Malformed formula"

type diagOpts struct {
	color bool
}

type Option func(*diagOpts)

// WithColor colors the carets and explanation of located errors.
func WithColor(v bool) Option {
	return func(o *diagOpts) { o.color = v }
}

var explanations = []struct {
	err  error
	text string
}{
	{parse.ErrInvalidToken, "Illegal token"},
	{parse.ErrNumberFirst, "Compound groups cannot start\nwith numbers"},
	{parse.ErrUnpairedParen, "Unpaired parenthesis"},
	{parse.ErrUnpairedBracket, "Unpaired bracket"},
	{parse.ErrTooDeep, "Groups are nested too deeply"},
	{token.ErrNumberRange, "Number is too large"},
	{molecule.ErrCountRange, "Atom count is too large"},
}

// Explain renders err, which occurred while reading formula. Errors with a
// location are shown under the formula with carets marking the location.
// An equation.TermErr is explained against its own term.
func Explain(err error, formula string, opts ...Option) string {
	o := &diagOpts{}
	for _, opt := range opts {
		opt(o)
	}
	var te *equation.TermErr
	if errors.As(err, &te) {
		formula = te.Text
		err = te.Err
	}
	var le *token.LocErr
	if !errors.As(err, &le) {
		return err.Error()
	}
	text := le.Err.Error()
	for _, x := range explanations {
		if errors.Is(le, x.err) {
			text = x.text
			break
		}
	}
	msg := le.Loc.Format(formula, header, text)
	if !o.color {
		return msg
	}
	return colorize(msg)
}

// colorize colors every line of a message rendered by token.Loc.Format
// after the first.
func colorize(msg string) string {
	lines := strings.Split(msg, "\n")
	caret := color.New(color.FgRed, color.Bold)
	caret.EnableColor()
	note := color.New(color.FgYellow)
	note.EnableColor()
	for i := 1; i < len(lines); i++ {
		ln := lines[i]
		body := strings.TrimLeft(ln, " ")
		pad := ln[:len(ln)-len(body)]
		if i == 1 {
			lines[i] = pad + caret.Sprint(body)
			continue
		}
		lines[i] = pad + note.Sprint(body)
	}
	return strings.Join(lines, "\n")
}
