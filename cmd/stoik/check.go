package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/signadot/stoik/balance"
	"github.com/signadot/stoik/diag"
	"github.com/signadot/stoik/encode"
	"github.com/signadot/stoik/equation"
	"github.com/signadot/stoik/eval"

	"github.com/scott-cotton/cli"
)

type checkDoc struct {
	Equation  string           `yaml:"equation"`
	Error     string           `yaml:"error,omitempty"`
	Balanced  bool             `yaml:"balanced"`
	Reactants map[string]int64 `yaml:"reactants,omitempty"`
	Products  map[string]int64 `yaml:"products,omitempty"`
	Rows      []balance.Row    `yaml:"rows,omitempty"`
	Timings   timings          `yaml:"timings,omitempty"`
}

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	var filter *eval.Filter
	if cfg.Filter != "" {
		filter, err = eval.CompileFilter(cfg.Filter)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	if cfg.File != "" {
		if cfg.Time {
			return fmt.Errorf("%w: -t cannot be used with -f", cli.ErrUsage)
		}
		if len(args) != 0 {
			return fmt.Errorf("%w: -f does not take an equation argument", cli.ErrUsage)
		}
		return checkFile(cfg, cc, filter)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no equation given", cli.ErrUsage)
	}
	return checkOne(cfg, cc.Out, strings.Join(args, " "), filter)
}

func checkOne(cfg *CheckConfig, w io.Writer, text string, filter *eval.Filter) error {
	var (
		ts   timings
		opts []equation.Option
	)
	if cfg.Time {
		opts = append(opts, equation.WithTermParser(ts.parse))
	}
	eq, err := equation.Parse(text, opts...)
	if err != nil {
		if err := writeCheckErr(cfg, w, text, err); err != nil {
			return err
		}
		return exitMalformed
	}
	r, err := eq.Balance()
	if err != nil {
		if err := writeCheckErr(cfg, w, text, err); err != nil {
			return err
		}
		return exitMalformed
	}
	if err := writeReport(cfg, w, eq.Text, r, filter, ts); err != nil {
		return err
	}
	if !r.Balanced {
		return exitUnbalanced
	}
	return nil
}

func checkFile(cfg *CheckConfig, cc *cli.Context, filter *eval.Filter) error {
	var in io.Reader = cc.In
	if cfg.File != "-" {
		f, err := os.Open(cfg.File)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", cfg.File, err)
		}
		defer f.Close()
		in = f
	}
	texts, err := readEquations(in)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", cfg.File, err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	results, err := equation.CheckAll(ctx, texts)
	if err != nil {
		return err
	}
	return writeResults(cfg, cc.Out, results, filter)
}

// readEquations returns the equations of r, one per line. Blank lines and
// lines starting with # are skipped.
func readEquations(r io.Reader) ([]string, error) {
	var res []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ln := strings.TrimSpace(sc.Text())
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		res = append(res, ln)
	}
	return res, sc.Err()
}

func writeResults(cfg *CheckConfig, w io.Writer, results []equation.Result, filter *eval.Filter) error {
	var exit error
	if !cfg.format().IsTable() {
		docs := make([]*checkDoc, len(results))
		for i := range results {
			res := &results[i]
			if res.Err != nil {
				docs[i] = &checkDoc{Equation: res.Text, Error: res.Err.Error()}
				exit = exitMalformed
				continue
			}
			doc, err := makeCheckDoc(cfg, res.Equation.Text, res.Report, filter, nil)
			if err != nil {
				return err
			}
			docs[i] = doc
			if !res.Report.Balanced && exit == nil {
				exit = exitUnbalanced
			}
		}
		if err := encode.Encode(docs, w, cfg.encOpts(w)...); err != nil {
			return err
		}
		return exit
	}
	for i := range results {
		res := &results[i]
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if res.Err != nil {
			if err := writeCheckErr(cfg, w, res.Text, res.Err); err != nil {
				return err
			}
			exit = exitMalformed
			continue
		}
		if err := writeReport(cfg, w, res.Equation.Text, res.Report, filter, nil); err != nil {
			return err
		}
		if !res.Report.Balanced && exit == nil {
			exit = exitUnbalanced
		}
	}
	return exit
}

func writeCheckErr(cfg *CheckConfig, w io.Writer, text string, err error) error {
	if !cfg.format().IsTable() {
		doc := &checkDoc{Equation: text, Error: err.Error()}
		return encode.Encode(doc, w, cfg.encOpts(w)...)
	}
	_, werr := fmt.Fprintln(w, diag.Explain(err, text, diag.WithColor(cfg.colors(w))))
	return werr
}

func makeCheckDoc(cfg *CheckConfig, text string, r *balance.Report, filter *eval.Filter, ts timings) (*checkDoc, error) {
	rows, err := selectRows(cfg, r, filter)
	if err != nil {
		return nil, err
	}
	return &checkDoc{
		Equation:  text,
		Balanced:  r.Balanced,
		Reactants: r.Reactants,
		Products:  r.Products,
		Rows:      rows,
		Timings:   ts,
	}, nil
}

func selectRows(cfg *CheckConfig, r *balance.Report, filter *eval.Filter) ([]balance.Row, error) {
	rows := r.Select(cfg.All)
	if filter == nil {
		return rows, nil
	}
	return filter.Rows(rows)
}

func writeReport(cfg *CheckConfig, w io.Writer, text string, r *balance.Report, filter *eval.Filter, ts timings) error {
	if !cfg.format().IsTable() {
		doc, err := makeCheckDoc(cfg, text, r, filter, ts)
		if err != nil {
			return err
		}
		return encode.Encode(doc, w, cfg.encOpts(w)...)
	}
	verdict := "is balanced"
	if !r.Balanced {
		verdict = "is not balanced"
	}
	if _, err := fmt.Fprintf(w, "`%s` %s\n", text, verdict); err != nil {
		return err
	}
	rows, err := selectRows(cfg, r, filter)
	if err != nil {
		return err
	}
	if len(rows) != 0 {
		if err := encode.Encode(balance.Rows(rows), w, cfg.encOpts(w)...); err != nil {
			return err
		}
	}
	if len(ts) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, "\nTime summary\n"); err != nil {
		return err
	}
	return encode.Encode(ts, w, cfg.encOpts(w)...)
}
