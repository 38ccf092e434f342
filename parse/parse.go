// Package parse builds dom trees from HTML.
package parse

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/domref/debug"
	"github.com/signadot/domref/dom"
	"github.com/signadot/domref/internal/htmlconv"

	"golang.org/x/net/html"
)

func Parse(d []byte, opts ...ParseOption) (*dom.Node, error) {
	return ParseReader(bytes.NewReader(d), opts...)
}

// ParseReader parses an HTML document from r. The result is a document
// node. With ParseFragment, the result is a document node holding the
// fragment's top level nodes.
func ParseReader(r io.Reader, opts ...ParseOption) (*dom.Node, error) {
	o := &parseOpts{comments: true}
	for _, opt := range opts {
		opt(o)
	}
	if o.context != "" {
		return parseFragment(r, o)
	}
	h, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	doc := htmlconv.ToDOM(h, o.comments)
	if debug.Parse() {
		debug.Logf("parsed document:\n%s", doc)
	}
	return doc, nil
}

func parseFragment(r io.Reader, o *parseOpts) (*dom.Node, error) {
	if strings.ContainsAny(o.context, " <>/\t\n") {
		return nil, fmt.Errorf("%w: %q", ErrBadContext, o.context)
	}
	hs, err := html.ParseFragment(r, htmlconv.ContextElement(o.context))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	frag := dom.NewDocument()
	for _, h := range hs {
		if n := htmlconv.ToDOM(h, o.comments); n != nil {
			frag.Append(n)
		}
	}
	if debug.Parse() {
		debug.Logf("parsed fragment in <%s>:\n%s", o.context, frag)
	}
	return frag, nil
}
