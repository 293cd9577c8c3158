package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/stoik/equation"
	"github.com/signadot/stoik/eval"
	"github.com/signadot/stoik/format"

	"github.com/google/go-cmp/cmp"
)

func checkCfg(f format.Format) *CheckConfig {
	return &CheckConfig{MainConfig: &MainConfig{OutFormat: &f}}
}

func TestCheckOneBalanced(t *testing.T) {
	buf := &bytes.Buffer{}
	err := checkOne(checkCfg(format.TableFormat), buf, "2H2 + O2 -> 2H2O", nil)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "`2H2 + O2 -> 2H2O` is balanced\n") {
		t.Errorf("unexpected output %q", out)
	}
	if strings.Contains(out, "Element") {
		t.Errorf("balanced equation should not show rows: %q", out)
	}
}

func TestCheckOneUnbalanced(t *testing.T) {
	buf := &bytes.Buffer{}
	err := checkOne(checkCfg(format.TableFormat), buf, "H2 + O2 => H2O", nil)
	if !errors.Is(err, exitUnbalanced) {
		t.Fatalf("expected unbalanced exit, got %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "is not balanced") {
		t.Errorf("missing verdict: %q", out)
	}
	if !strings.Contains(out, "Element") || !strings.Contains(out, "O") {
		t.Errorf("missing rows: %q", out)
	}
}

func TestCheckOneMalformed(t *testing.T) {
	buf := &bytes.Buffer{}
	err := checkOne(checkCfg(format.TableFormat), buf, "H2 + O2 -> (H2O", nil)
	if !errors.Is(err, exitMalformed) {
		t.Fatalf("expected malformed exit, got %v", err)
	}
	if !strings.Contains(buf.String(), "Unpaired parenthesis") {
		t.Errorf("missing explanation: %q", buf.String())
	}
}

func TestCheckOneTimed(t *testing.T) {
	cfg := checkCfg(format.TableFormat)
	cfg.Time = true
	buf := &bytes.Buffer{}
	if err := checkOne(cfg, buf, "2H2 + O2 -> 2H2O", nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Time summary") || !strings.Contains(out, "Tree building") {
		t.Errorf("missing time summary: %q", out)
	}
}

func TestCheckOneFilter(t *testing.T) {
	filter, err := eval.CompileFilter(`Atom == "H"`)
	if err != nil {
		t.Fatal(err)
	}
	cfg := checkCfg(format.YAMLFormat)
	cfg.All = true
	buf := &bytes.Buffer{}
	if err := checkOne(cfg, buf, "2H2 + O2 -> 2H2O", filter); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "atom: H") {
		t.Errorf("missing H row: %q", out)
	}
	if strings.Contains(out, "atom: O") {
		t.Errorf("O row should be filtered: %q", out)
	}
}

func TestReadEquations(t *testing.T) {
	in := strings.NewReader("# water\n2H2 + O2 -> 2H2O\n\n  CH4 + 2O2 -> CO2 + 2H2O  \n")
	got, err := readEquations(in)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"2H2 + O2 -> 2H2O", "CH4 + 2O2 -> CO2 + 2H2O"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("readEquations (-want +got):\n%s", diff)
	}
}

func TestWriteResults(t *testing.T) {
	results, err := equation.CheckAll(context.Background(), []string{
		"2H2 + O2 -> 2H2O",
		"H2 -> H",
		"H2 -> (H",
	})
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	err = writeResults(checkCfg(format.YAMLFormat), buf, results, nil)
	if !errors.Is(err, exitMalformed) {
		t.Fatalf("expected malformed exit, got %v", err)
	}
	out := buf.String()
	for _, want := range []string{"balanced: true", "balanced: false", "error:"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestWriteResultsUnbalanced(t *testing.T) {
	results, err := equation.CheckAll(context.Background(), []string{
		"2H2 + O2 -> 2H2O",
		"H2 -> H",
	})
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	err = writeResults(checkCfg(format.TableFormat), buf, results, nil)
	if !errors.Is(err, exitUnbalanced) {
		t.Fatalf("expected unbalanced exit, got %v", err)
	}
	if strings.Count(buf.String(), "balanced\n") != 2 {
		t.Errorf("expected 2 verdicts in %q", buf.String())
	}
}

func TestReduceFormulas(t *testing.T) {
	cfg := &ParseConfig{MainConfig: &MainConfig{}, Tree: true}
	buf := &bytes.Buffer{}
	docs, failed := reduceFormulas(cfg, buf, []string{"2H2O", "(("})
	if !failed {
		t.Error("expected a failure")
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 doc, got %d", len(docs))
	}
	want := map[string]int64{"H": 4, "O": 2}
	if diff := cmp.Diff(want, docs[0].Atoms); diff != "" {
		t.Errorf("atoms (-want +got):\n%s", diff)
	}
	if docs[0].Tree == "" {
		t.Error("expected a tree")
	}
	if !strings.Contains(buf.String(), "Malformed formula") {
		t.Errorf("missing explanation: %q", buf.String())
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize([]string{"H2"})
	want := tokenDocs{
		{Formula: "H2", Type: "TAtom", Text: "H", Start: 0, Len: 1},
		{Formula: "H2", Type: "TNumber", Text: "2", Start: 1, Len: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokenize (-want +got):\n%s", diff)
	}
}

func TestCompareFormulas(t *testing.T) {
	f := format.TableFormat
	cfg := &MainConfig{OutFormat: &f}
	buf := &bytes.Buffer{}
	if err := compareFormulas(cfg, buf, "H2O", "OH2"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "same composition") {
		t.Errorf("unexpected output %q", buf.String())
	}
	buf.Reset()
	err := compareFormulas(cfg, buf, "H2O", "H2O2")
	if !errors.Is(err, exitUnbalanced) {
		t.Fatalf("expected differing exit, got %v", err)
	}
	if !strings.Contains(buf.String(), "From") {
		t.Errorf("missing deltas: %q", buf.String())
	}
}

func TestCheckOneCountOutOfRange(t *testing.T) {
	for _, text := range []string{
		"H -> (H4611686018427387904)4H",
		"H9223372036854775807 + H -> H",
	} {
		buf := &bytes.Buffer{}
		err := checkOne(checkCfg(format.TableFormat), buf, text, nil)
		if !errors.Is(err, exitMalformed) {
			t.Errorf("%q: expected malformed exit, got %v", text, err)
		}
		if strings.Contains(buf.String(), "is balanced") {
			t.Errorf("%q: got verdict %q", text, buf.String())
		}
	}
}
