package main

import (
	"fmt"

	"github.com/signadot/domref/dom"
	"github.com/signadot/domref/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	i := 0
	return eachDoc(cc, args, cfg.parseOpts(), func(file string, doc *dom.Node) error {
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		i++
		if err := encode.Encode(doc, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		return nil
	})
}
