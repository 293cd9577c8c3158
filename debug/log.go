package debug

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

var out io.Writer = os.Stderr

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case map[string]int64, map[string]bool, []any:
			d, err := yaml.MarshalWithOptions(x, yaml.JSON())
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(d)
		case fmt.Stringer:
			args[i] = x.String()
		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}

// LogAny writes v as a line of JSON.
func LogAny(v any) {
	d, err := yaml.MarshalWithOptions(v, yaml.JSON())
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(bytes.TrimRight(d, "\n"))
	io.WriteString(out, "\n")
}
