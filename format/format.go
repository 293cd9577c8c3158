package format

import (
	"errors"
	"fmt"
	"path/filepath"
)

type Format int

const (
	TableFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":     TableFormat,
		"table": TableFormat,
		"y":     YAMLFormat,
		"yaml":  YAMLFormat,
		"j":     JSONFormat,
		"json":  JSONFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TableFormat:
		return []byte("table"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool  { return f == JSONFormat }
func (f Format) IsTable() bool { return f == TableFormat }

// Suffix returns the file extension for this format (including the dot).
// Tables are plain text.
func (f Format) Suffix() string {
	switch f {
	case TableFormat:
		return ".txt"
	case YAMLFormat:
		return ".yaml"
	case JSONFormat:
		return ".json"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{TableFormat, YAMLFormat, JSONFormat}
}

// FromPath returns the format whose suffix ends path. ".yml" is taken as
// YAML.
func FromPath(path string) (Format, bool) {
	ext := filepath.Ext(path)
	if ext == ".yml" {
		return YAMLFormat, true
	}
	for _, f := range AllFormats() {
		if f.Suffix() == ext {
			return f, true
		}
	}
	return 0, false
}
