// Package match selects elements with expressions.
//
// An expression is evaluated once per element and must produce a bool.
// The environment has:
//
//	name   string            local name of the element
//	ns     string            namespace URI
//	attrs  map[string]string non-namespaced attributes
//	text   string            text contents of the element
//	depth  int               number of ancestors
//
// and the function hasClass(attrs, class), true when the whitespace
// separated class attribute contains class.
//
//	m, err := match.Compile(`name == "a" && "href" in attrs`)
package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/domref/debug"
	"github.com/signadot/domref/dom"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrMatch = errors.New("match error")

type Env struct {
	Name  string            `expr:"name"`
	NS    string            `expr:"ns"`
	Attrs map[string]string `expr:"attrs"`
	Text  string            `expr:"text"`
	Depth int               `expr:"depth"`
}

func NewEnv(ref *dom.ElementRef) Env {
	e := ref.Value()
	depth := 0
	for range ref.AsNode().Ancestors() {
		depth++
	}
	return Env{
		Name:  e.Name.Local,
		NS:    e.Name.NS,
		Attrs: e.Attributes.Map(),
		Text:  ref.AsNode().TextContents(),
		Depth: depth,
	}
}

type Matcher struct {
	src string
	prg *vm.Program
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Function("hasClass", func(params ...any) (any, error) {
			attrs := params[0].(map[string]string)
			return hasClass(attrs["class"], params[1].(string)), nil
		},
			new(func(map[string]string, string) bool)),
	}
}

func hasClass(v, class string) bool {
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

func Compile(src string) (*Matcher, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMatch, err)
	}
	return &Matcher{src: src, prg: prg}, nil
}

func (m *Matcher) String() string {
	return m.src
}

func (m *Matcher) Match(ref *dom.ElementRef) (bool, error) {
	res, err := expr.Run(m.prg, NewEnv(ref))
	if err != nil {
		return false, fmt.Errorf("%w: %q on %s: %w", ErrMatch, m.src, ref.AsNode(), err)
	}
	ok, _ := res.(bool)
	if debug.Match() {
		debug.Logf("match %q on %s: %t", m.src, ref.AsNode(), ok)
	}
	return ok, nil
}

// Select returns the elements among root and its descendants for which
// m matches, in document order.
func (m *Matcher) Select(root *dom.Node) ([]*dom.ElementRef, error) {
	var res []*dom.ElementRef
	for e := range dom.Elements(root.InclusiveDescendants()) {
		ok, err := m.Match(e)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, e)
		}
	}
	return res, nil
}
