package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/domref/encode"
	"github.com/signadot/domref/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color      bool   `cli:"name=color desc='encode with color'"`
	NoComments bool   `cli:"name=nc desc='drop comments while parsing'"`
	Frag       string `cli:"name=frag desc='parse inputs as fragments in this context element'"`

	OutFormat *encode.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **encode.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := encode.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{
		parse.ParseComments(!cfg.NoComments),
	}
	if cfg.Frag != "" {
		res = append(res, parse.ParseFragment(cfg.Frag))
	}
	return res
}

func (cfg *MainConfig) format() encode.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return encode.OutlineFormat
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return false
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
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type SelectConfig struct {
	*MainConfig

	Select *cli.Command
}

type TextConfig struct {
	*MainConfig

	Expr string `cli:"name=e desc='print the text of elements matching this expression'"`

	Text *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Expr  string `cli:"name=e desc='patch elements matching this expression'"`
	Merge bool   `cli:"name=merge desc='patch is a json merge patch'"`
	File  bool   `cli:"name=f desc='consider patch a file path'"`

	Patch *cli.Command
}
