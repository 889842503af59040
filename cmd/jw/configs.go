package main

import (
	"io"
	"os"

	"github.com/embedkit/jsonwire/jsoncodec"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render with color'"`
	Wire  bool `cli:"name=wire desc='output in compact wire form'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// renderOpts selects render options for w, turning colors on when asked
// for explicitly or when w is a terminal and -color was left unset.
func (cfg *MainConfig) renderOpts(w io.Writer) []jsoncodec.RenderOption {
	res := []jsoncodec.RenderOption{}
	if cfg.Color {
		return append(res, jsoncodec.RenderColors(jsoncodec.NewColors()))
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
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, jsoncodec.RenderColors(jsoncodec.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q aliases=quiet desc='report via exit status only'"`

	Check *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
