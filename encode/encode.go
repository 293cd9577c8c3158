package encode

import (
	"fmt"
	"io"

	"github.com/signadot/stoik/format"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-yaml"
)

// Tabler is implemented by values which can be shown as a table.
type Tabler interface {
	Table() (header []string, rows [][]string)
}

type EncState struct {
	format format.Format
	colors *Colors
}

func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.TableFormat:
		if t, ok := v.(Tabler); ok {
			return writeString(w, renderTable(t, es.colors)+"\n")
		}
		return encodeYAML(v, w)
	case format.YAMLFormat:
		return encodeYAML(v, w)
	case format.JSONFormat:
		return encodeYAML(v, w, yaml.JSON())
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

func encodeYAML(v any, w io.Writer, opts ...yaml.EncodeOption) error {
	d, err := yaml.MarshalWithOptions(v, opts...)
	if err != nil {
		return err
	}
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

func renderTable(t Tabler, colors *Colors) string {
	header, rows := t.Table()
	if colors != nil {
		header = append([]string(nil), header...)
		for i := range header {
			header[i] = colors.Color(HeaderColor, header[i])
		}
		colored := make([][]string, len(rows))
		for i, row := range rows {
			colored[i] = make([]string, len(row))
			for j := range row {
				colored[i][j] = colors.Cell(row[j])
			}
		}
		rows = colored
	}
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.DoubleBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style { return cell }).
		Headers(header...).
		Rows(rows...).
		String()
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
