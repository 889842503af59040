package main

import (
	"bytes"
	"fmt"

	"github.com/embedkit/jsonwire/jsoncodec"
	"github.com/embedkit/jsonwire/textdiff"
	"github.com/embedkit/jsonwire/value"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two files", cli.ErrUsage)
	}
	from, err := rendered(args[0])
	if err != nil {
		return err
	}
	to, err := rendered(args[1])
	if err != nil {
		return err
	}
	text, changed := textdiff.Diff(from, to, cfg.useColor(cc.Out))
	if !changed {
		return nil
	}
	_, err = cc.Out.Write([]byte(text))
	return err
}

// rendered decodes a message and re-renders it in indented form, so the
// diff ignores whitespace and formatting differences in the inputs.
func rendered(file string) (string, error) {
	d, err := readInput(file)
	if err != nil {
		return "", err
	}
	v, err := jsoncodec.New().DecodeMessage(d)
	if err != nil {
		return "", fmt.Errorf("error decoding %s: %w", file, err)
	}
	return renderString(v)
}

func renderString(v *value.Value) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := jsoncodec.Render(v, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
