package main

import (
	"fmt"

	"github.com/signadot/domref/dom"
	"github.com/signadot/domref/encode"
	"github.com/signadot/domref/match"

	"github.com/scott-cotton/cli"
)

func selectElements(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: select requires an expression", cli.ErrUsage)
	}
	m, err := match.Compile(args[0])
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	n := 0
	err = eachDoc(cc, args[1:], cfg.parseOpts(), func(file string, doc *dom.Node) error {
		refs, err := m.Select(doc)
		if err != nil {
			return fmt.Errorf("error selecting in %s: %w", file, err)
		}
		for _, ref := range refs {
			if err := encode.Encode(ref.AsNode(), cc.Out, opts...); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
		}
		n += len(refs)
		return nil
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
