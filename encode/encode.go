package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/domref/debug"
	"github.com/signadot/domref/dom"
	"github.com/signadot/domref/internal/htmlconv"

	"golang.org/x/net/html"
)

type EncState struct {
	indent int
	format Format

	Color func(dom.Type, ColorAttr, string) string
}

func (es *EncState) color(t dom.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

// Encode writes node to w in the configured format, followed by a
// newline. The default format is OutlineFormat.
func Encode(node *dom.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Encode() {
		// node is passed as a label; rendering it would re-enter Encode.
		debug.Logf("encoding %s as %s (indent %d, color %t)", node.String(), es.format, es.indent, es.Color != nil)
	}
	switch es.format {
	case OutlineFormat:
		return encodeOutline(node, w, es, 0)
	case HTMLFormat:
		if err := html.Render(w, htmlconv.FromDOM(node)); err != nil {
			return fmt.Errorf("error rendering html: %w", err)
		}
		return writeString(w, "\n")
	case YAMLFormat:
		return encodeYAML(node, w, es)
	case JSONFormat:
		return encodeJSON(node, w, es)
	}
	return fmt.Errorf("%w: %d", ErrBadFormat, es.format)
}

func encodeOutline(node *dom.Node, w io.Writer, es *EncState, depth int) error {
	line := strings.Repeat(" ", depth*es.indent) + outlineLabel(node, es) + "\n"
	if err := writeString(w, line); err != nil {
		return err
	}
	if e, ok := node.AsElement(); ok && e.TemplateContents != nil {
		pad := strings.Repeat(" ", (depth+1)*es.indent)
		if err := writeString(w, pad+es.color(dom.DocumentType, NameColor, "#template")+"\n"); err != nil {
			return err
		}
		for c := range e.TemplateContents.Children() {
			if err := encodeOutline(c, w, es, depth+2); err != nil {
				return err
			}
		}
	}
	for c := range node.Children() {
		if err := encodeOutline(c, w, es, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func outlineLabel(node *dom.Node, es *EncState) string {
	t := node.Type()
	switch t {
	case dom.DocumentType:
		return es.color(t, NameColor, "#document")
	case dom.DoctypeType:
		d, _ := node.AsDoctype()
		return es.color(t, NameColor, d.String())
	case dom.TextType:
		c, _ := node.AsText()
		return es.color(t, NameColor, "#text") + " " + es.color(t, ValueColor, strconv.Quote(c.Get()))
	case dom.CommentType:
		c, _ := node.AsComment()
		return es.color(t, NameColor, "#comment") + " " + es.color(t, ValueColor, strconv.Quote(c.Get()))
	case dom.ElementType:
		e, _ := node.AsElement()
		var b strings.Builder
		b.WriteString(es.color(t, SepColor, "<"))
		b.WriteString(es.color(t, NameColor, elementLabel(e)))
		for _, a := range e.Attributes.List {
			b.WriteString(" ")
			b.WriteString(es.color(t, AttrKeyColor, attrKey(a)))
			b.WriteString(es.color(t, SepColor, "="))
			b.WriteString(es.color(t, AttrValueColor, strconv.Quote(a.Value)))
		}
		b.WriteString(es.color(t, SepColor, ">"))
		return b.String()
	}
	return node.String()
}

func elementLabel(e *dom.ElementData) string {
	switch e.Name.NS {
	case dom.NamespaceHTML:
		return e.Name.String()
	case dom.NamespaceSVG:
		return "svg " + e.Name.String()
	case dom.NamespaceMathML:
		return "math " + e.Name.String()
	}
	return "{" + e.Name.NS + "}" + e.Name.String()
}

func attrKey(a dom.Attribute) string {
	if a.Prefix != "" {
		return a.Prefix + ":" + a.Name.Local
	}
	return a.Name.Local
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
