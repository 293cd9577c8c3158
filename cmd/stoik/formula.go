package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/stoik/diag"
	"github.com/signadot/stoik/encode"
	"github.com/signadot/stoik/molecule"
	"github.com/signadot/stoik/parse"

	"github.com/scott-cotton/cli"
)

type formulaDoc struct {
	Formula  string           `yaml:"formula"`
	Molecule string           `yaml:"molecule"`
	Moles    int64            `yaml:"moles"`
	Atoms    map[string]int64 `yaml:"atoms"`
	Tree     string           `yaml:"tree,omitempty"`
}

type formulaDocs []*formulaDoc

func (fs formulaDocs) Table() ([]string, [][]string) {
	header := []string{"Formula", "Molecule", "Atoms"}
	withTree := len(fs) != 0 && fs[0].Tree != ""
	if withTree {
		header = append(header, "Tree")
	}
	rows := make([][]string, len(fs))
	for i, f := range fs {
		counts := make([]string, 0, len(f.Atoms))
		for _, atom := range sortedAtoms(f.Atoms) {
			counts = append(counts, atom+"="+strconv.FormatInt(f.Atoms[atom], 10))
		}
		rows[i] = []string{f.Formula, f.Molecule, strings.Join(counts, " ")}
		if withTree {
			rows[i] = append(rows[i], f.Tree)
		}
	}
	return header, rows
}

func parseFormulas(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no formula given", cli.ErrUsage)
	}
	docs, failed := reduceFormulas(cfg, cc.Out, args)
	if len(docs) != 0 {
		if err := encode.Encode(docs, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	if failed {
		return exitMalformed
	}
	return nil
}

// reduceFormulas reduces each formula. Formulas which fail are explained
// on w and skipped.
func reduceFormulas(cfg *ParseConfig, w io.Writer, formulas []string) (formulaDocs, bool) {
	var (
		docs   formulaDocs
		failed bool
	)
	for _, f := range formulas {
		root, err := parse.Parse(f, parse.MaxDepth(cfg.MaxDepth))
		var m *molecule.Molecule
		if err == nil {
			m, err = molecule.FromTree(root)
		}
		if err != nil {
			failed = true
			fmt.Fprintln(w, diag.Explain(err, f, diag.WithColor(cfg.colors(w))))
			continue
		}
		doc := &formulaDoc{
			Formula:  f,
			Molecule: m.String(),
			Moles:    m.Moles,
			Atoms:    m.Map(),
		}
		if cfg.Tree {
			doc.Tree = root.String()
		}
		docs = append(docs, doc)
	}
	return docs, failed
}
