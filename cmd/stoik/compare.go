package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/stoik/diag"
	"github.com/signadot/stoik/encode"
	"github.com/signadot/stoik/libdiff"
	"github.com/signadot/stoik/molecule"

	"github.com/scott-cotton/cli"
)

type compareDoc struct {
	From   string          `yaml:"from"`
	To     string          `yaml:"to"`
	Same   bool            `yaml:"same"`
	Deltas []libdiff.Delta `yaml:"deltas,omitempty"`
}

type deltas []libdiff.Delta

func (ds deltas) Table() ([]string, [][]string) {
	rows := make([][]string, len(ds))
	for i, d := range ds {
		rows[i] = []string{d.Atom, strconv.FormatInt(d.From, 10), strconv.FormatInt(d.To, 10)}
	}
	return []string{"Element", "From", "To"}, rows
}

func compare(cfg *CompareConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compare.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: compare requires 2 formulas, got %d", cli.ErrUsage, len(args))
	}
	return compareFormulas(cfg.MainConfig, cc.Out, args[0], args[1])
}

func compareFormulas(cfg *MainConfig, w io.Writer, a, b string) error {
	ms := make([]*molecule.Molecule, 2)
	for i, f := range []string{a, b} {
		m, err := molecule.FromFormula(f)
		if err != nil {
			fmt.Fprintln(w, diag.Explain(err, f, diag.WithColor(cfg.colors(w))))
			return exitMalformed
		}
		ms[i] = m
	}
	ds := libdiff.Compare(ms[0], ms[1])
	doc := &compareDoc{
		From:   ms[0].String(),
		To:     ms[1].String(),
		Same:   len(ds) == 0,
		Deltas: ds,
	}
	if !cfg.format().IsTable() {
		if err := encode.Encode(doc, w, cfg.encOpts(w)...); err != nil {
			return err
		}
	} else if err := writeComparison(cfg, w, a, b, doc); err != nil {
		return err
	}
	if !doc.Same {
		return exitUnbalanced
	}
	return nil
}

func writeComparison(cfg *MainConfig, w io.Writer, a, b string, doc *compareDoc) error {
	_, err := fmt.Fprintf(w, "%s -> %s\n%s -> %s\n", a, doc.From, b, doc.To)
	if err != nil {
		return err
	}
	if doc.Same {
		_, err = fmt.Fprintln(w, "same composition")
		return err
	}
	diffs := libdiff.DiffString(doc.From, doc.To)
	if _, err := fmt.Fprintf(w, "diff: %s\n", libdiff.Render(diffs, cfg.colors(w))); err != nil {
		return err
	}
	return encode.Encode(deltas(doc.Deltas), w, cfg.encOpts(w)...)
}
