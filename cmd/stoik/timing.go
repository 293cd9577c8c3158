package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/signadot/stoik/molecule"
	"github.com/signadot/stoik/parse"
	"github.com/signadot/stoik/token"
)

type timing struct {
	Formula  string `yaml:"formula"`
	Tokenize string `yaml:"tokenize"`
	Tree     string `yaml:"tree"`
	Reduce   string `yaml:"reduce"`
	Total    string `yaml:"total"`
}

// timings records how long each stage takes for every formula it reduces.
type timings []timing

// parse reduces formula one stage at a time. The tokens are materialized
// so that tokenizing is timed apart from assembling.
func (ts *timings) parse(formula string) (*molecule.Molecule, error) {
	start := time.Now()
	toks := token.Tokenize(formula)
	tokDone := time.Now()
	root, err := parse.Assemble(slices.Values(toks))
	if err != nil {
		return nil, err
	}
	treeDone := time.Now()
	m, err := molecule.FromTree(root)
	if err != nil {
		return nil, err
	}
	done := time.Now()
	*ts = append(*ts, timing{
		Formula:  formula,
		Tokenize: fmtDuration(tokDone.Sub(start)),
		Tree:     fmtDuration(treeDone.Sub(tokDone)),
		Reduce:   fmtDuration(done.Sub(treeDone)),
		Total:    fmtDuration(done.Sub(start)),
	})
	return m, nil
}

func fmtDuration(d time.Duration) string {
	return fmt.Sprintf("%.3fµs", float64(d)/float64(time.Microsecond))
}

func (ts timings) Table() ([]string, [][]string) {
	rows := make([][]string, len(ts))
	for i, t := range ts {
		rows[i] = []string{t.Formula, t.Tokenize, t.Tree, t.Reduce, t.Total}
	}
	return []string{"Formula", "Tokenize", "Tree building", "Parsing", "Total"}, rows
}
