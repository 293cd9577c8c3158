package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/stoik/encode"
	"github.com/signadot/stoik/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='output with color'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) format() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.TableFormat
}

// colors reports whether to color output written to w. Unless -color was
// given explicitly, output is colored when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return false
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format()),
	}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type CheckConfig struct {
	*MainConfig
	All    bool   `cli:"name=a aliases=all-moles desc='show every element, not only unbalanced ones'"`
	Time   bool   `cli:"name=t aliases=time desc='show how long each stage took'"`
	Filter string `cli:"name=filter desc='expression selecting the elements to show'"`
	File   string `cli:"name=f desc='check each line of a file, - for stdin'"`

	Check *cli.Command
}

type ParseConfig struct {
	*MainConfig
	Tree     bool `cli:"name=tree desc='show the syntax tree'"`
	MaxDepth int  `cli:"name=depth desc='maximum nesting of groups, 0 for no limit'"`

	Parse *cli.Command
}

type TokensConfig struct {
	*MainConfig

	Tokens *cli.Command
}

type CompareConfig struct {
	*MainConfig

	Compare *cli.Command
}
