package libdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString computes a character level diff from one formula to another.
func DiffString(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	return diffCfg.DiffCleanupSemantic(diffs)
}

// Render shows diffs on one line. Without colors deletions are shown as
// [-text-] and insertions as {+text+}.
func Render(diffs []diffpatch.Diff, colors bool) string {
	del := color.New(color.FgRed, color.CrossedOut)
	ins := color.New(color.FgGreen)
	if colors {
		del.EnableColor()
		ins.EnableColor()
	}
	b := &strings.Builder{}
	for _, diff := range diffs {
		switch diff.Type {
		case diffpatch.DiffDelete:
			if colors {
				b.WriteString(del.Sprint(diff.Text))
				continue
			}
			b.WriteString("[-" + diff.Text + "-]")
		case diffpatch.DiffInsert:
			if colors {
				b.WriteString(ins.Sprint(diff.Text))
				continue
			}
			b.WriteString("{+" + diff.Text + "+}")
		case diffpatch.DiffEqual:
			b.WriteString(diff.Text)
		}
	}
	return b.String()
}
