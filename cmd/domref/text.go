package main

import (
	"fmt"
	"io"

	"github.com/signadot/domref/dom"
	"github.com/signadot/domref/match"

	"github.com/scott-cotton/cli"
)

func text(cfg *TextConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Text.Parse(cc, args)
	if err != nil {
		return err
	}
	var m *match.Matcher
	if cfg.Expr != "" {
		m, err = match.Compile(cfg.Expr)
		if err != nil {
			return err
		}
	}
	return eachDoc(cc, args, cfg.parseOpts(), func(file string, doc *dom.Node) error {
		if m == nil {
			for t := range dom.TextNodes(doc.Descendants()) {
				if err := writeLine(cc.Out, t.Value().Get()); err != nil {
					return err
				}
			}
			return nil
		}
		refs, err := m.Select(doc)
		if err != nil {
			return fmt.Errorf("error selecting in %s: %w", file, err)
		}
		for _, ref := range refs {
			if err := writeLine(cc.Out, ref.AsNode().TextContents()); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeLine(w io.Writer, s string) error {
	_, err := io.WriteString(w, s+"\n")
	return err
}
