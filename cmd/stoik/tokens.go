package main

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/signadot/stoik/encode"
	"github.com/signadot/stoik/token"

	"github.com/scott-cotton/cli"
)

type tokenDoc struct {
	Formula string `yaml:"formula"`
	Type    string `yaml:"type"`
	Text    string `yaml:"text"`
	Start   int    `yaml:"start"`
	Len     int    `yaml:"len"`
}

type tokenDocs []tokenDoc

func (ts tokenDocs) Table() ([]string, [][]string) {
	rows := make([][]string, len(ts))
	for i, t := range ts {
		rows[i] = []string{t.Formula, t.Type, t.Text, strconv.Itoa(t.Start), strconv.Itoa(t.Len)}
	}
	return []string{"Formula", "Type", "Text", "Start", "Len"}, rows
}

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no formula given", cli.ErrUsage)
	}
	return encode.Encode(tokenize(args), cc.Out, cfg.encOpts(cc.Out)...)
}

func tokenize(formulas []string) tokenDocs {
	var res tokenDocs
	for _, f := range formulas {
		for tok := range token.NewTokenizer(f).All() {
			res = append(res, tokenDoc{
				Formula: f,
				Type:    tok.Type.String(),
				Text:    tok.Text,
				Start:   tok.Loc.Start,
				Len:     tok.Loc.Len,
			})
		}
	}
	return res
}

func sortedAtoms(m map[string]int64) []string {
	return slices.Sorted(maps.Keys(m))
}
