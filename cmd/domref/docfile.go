package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/domref/dom"
	"github.com/signadot/domref/parse"

	"github.com/scott-cotton/cli"
)

func getDocFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*dom.Node, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, opts...)
}

// eachDoc parses each file (stdin when files is empty) and calls f with
// the result.
func eachDoc(cc *cli.Context, files []string, opts []parse.ParseOption, f func(string, *dom.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := getDocFile(cc, file, opts...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if err := f(file, doc); err != nil {
			return err
		}
	}
	return nil
}
