package main

import (
	"fmt"

	"github.com/embedkit/jsonwire/debug"
	"github.com/embedkit/jsonwire/jsoncodec"
	"github.com/embedkit/jsonwire/yamlconv"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	jc := jsoncodec.New()
	for _, file := range inputs(args) {
		d, err := readInput(file)
		if err != nil {
			return err
		}
		v, err := yamlconv.FromYAML(d)
		if err != nil {
			return fmt.Errorf("error converting %s: %w", file, err)
		}
		if debug.Convert() {
			debug.Logf("converted %s: %s\n", file, v)
		}
		if !cfg.Wire {
			if err := jsoncodec.Render(v, cc.Out, cfg.renderOpts(cc.Out)...); err != nil {
				return err
			}
			continue
		}
		text, err := jc.EncodeMessage(v)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		text = append(text, '\n')
		if _, err := cc.Out.Write(text); err != nil {
			return err
		}
	}
	return nil
}
