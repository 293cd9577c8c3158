package encode

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	HeaderColor ColorAttr = iota
	TrueColor
	FalseColor
	NumberColor
	TextColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			HeaderColor: forced(color.New(color.Bold)).SprintfFunc(),
			TrueColor:   forced(color.New(color.FgGreen)).SprintfFunc(),
			FalseColor:  forced(color.New(color.FgRed, color.Bold)).SprintfFunc(),
			NumberColor: forced(color.RGB(128, 216, 236)).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func forced(c *color.Color) *color.Color {
	c.EnableColor()
	return c
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}

// Cell colors a table cell according to its content.
func (c *Colors) Cell(s string) string {
	switch s {
	case "true":
		return c.Color(TrueColor, s)
	case "false":
		return c.Color(FalseColor, s)
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return c.Color(NumberColor, s)
	}
	return c.Color(TextColor, s)
}
