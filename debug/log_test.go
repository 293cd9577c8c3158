package debug

import (
	"bytes"
	"strings"
	"testing"
)

type row struct {
	Atom  string `yaml:"atom"`
	Count int64  `yaml:"count"`
}

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	saved := out
	out = buf
	t.Cleanup(func() { out = saved })
	return buf
}

func TestLogAny(t *testing.T) {
	buf := capture(t)
	LogAny([]row{{Atom: "H", Count: 2}})
	got := buf.String()
	if !strings.Contains(got, `"atom"`) || !strings.Contains(got, `"H"`) {
		t.Errorf("got %q", got)
	}
	if !strings.HasSuffix(got, "}]\n") {
		t.Errorf("expected one line of JSON, got %q", got)
	}
}

func TestLogfMap(t *testing.T) {
	buf := capture(t)
	Logf("totals %v\n", map[string]int64{"O": 1})
	got := buf.String()
	if !strings.HasPrefix(got, "totals {") || strings.Contains(got, "map[") {
		t.Errorf("got %q", got)
	}
}
