package main

import (
	"fmt"
	"os"

	"github.com/signadot/domref/attrpatch"
	"github.com/signadot/domref/dom"
	"github.com/signadot/domref/encode"
	"github.com/signadot/domref/match"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: patch requires -e <expr>", cli.ErrUsage)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	m, err := match.Compile(cfg.Expr)
	if err != nil {
		return err
	}
	p, err := getPatch(cfg, args[0])
	if err != nil {
		return err
	}
	apply := attrpatch.Apply
	if cfg.Merge {
		apply = attrpatch.Merge
	}
	opts := cfg.encOpts(cc.Out)
	return eachDoc(cc, args[1:], cfg.parseOpts(), func(file string, doc *dom.Node) error {
		refs, err := m.Select(doc)
		if err != nil {
			return fmt.Errorf("error selecting in %s: %w", file, err)
		}
		for _, ref := range refs {
			if err := apply(ref, p); err != nil {
				return fmt.Errorf("error patching %s in %s: %w", ref.AsNode(), file, err)
			}
		}
		if err := encode.Encode(doc, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
}

func getPatch(cfg *PatchConfig, arg string) ([]byte, error) {
	if !cfg.File {
		return []byte(arg), nil
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error reading patch %q: %w", arg, err)
	}
	return d, nil
}
