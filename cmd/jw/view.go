package main

import (
	"fmt"

	"github.com/embedkit/jsonwire/jsoncodec"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	jc := jsoncodec.New()
	for _, file := range inputs(args) {
		d, err := readInput(file)
		if err != nil {
			return err
		}
		v, err := jc.DecodeMessage(d)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if cfg.Wire {
			text, err := jc.EncodeMessage(v)
			if err != nil {
				return err
			}
			text = append(text, '\n')
			if _, err := cc.Out.Write(text); err != nil {
				return err
			}
			continue
		}
		if err := jsoncodec.Render(v, cc.Out, cfg.renderOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
