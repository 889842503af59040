package main

import (
	"fmt"

	"github.com/embedkit/jsonwire/debug"
	"github.com/embedkit/jsonwire/jsoncodec"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	jc := jsoncodec.New()
	var firstErr error
	for _, file := range inputs(args) {
		d, err := readInput(file)
		if err != nil {
			return err
		}
		v, err := jc.DecodeMessage(d)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
			}
			continue
		}
		if debug.Decode() {
			debug.Logf("decoded %s: %s\n", file, v)
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok\n", file)
		}
	}
	return firstErr
}
