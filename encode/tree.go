package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/domref/dom"

	"github.com/goccy/go-yaml"
)

// outline is the structural form of a node used for YAML and JSON
// output.
type outline struct {
	Type     string            `json:"type" yaml:"type"`
	Name     string            `json:"name,omitempty" yaml:"name,omitempty"`
	NS       string            `json:"ns,omitempty" yaml:"ns,omitempty"`
	Attrs    attrList          `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Data     string            `json:"data,omitempty" yaml:"data,omitempty"`
	PublicID string            `json:"publicId,omitempty" yaml:"publicId,omitempty"`
	SystemID string            `json:"systemId,omitempty" yaml:"systemId,omitempty"`
	Template []*outline        `json:"template,omitempty" yaml:"template,omitempty"`
	Children []*outline        `json:"children,omitempty" yaml:"children,omitempty"`
}

// attrList is a mapping from attribute key to value which keeps
// document order when encoded.
type attrList yaml.MapSlice

func (l attrList) MarshalYAML() (any, error) {
	return yaml.MapSlice(l), nil
}

func (l attrList) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBufferString("{")
	for i, item := range l {
		if i != 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(item.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(item.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func toOutline(n *dom.Node) *outline {
	o := &outline{Type: n.Type().String()}
	switch n.Type() {
	case dom.ElementType:
		e, _ := n.AsElement()
		o.Name = e.Name.String()
		if e.Name.NS != dom.NamespaceHTML {
			o.NS = e.Name.NS
		}
		if e.Attributes.Len() != 0 {
			o.Attrs = make(attrList, 0, e.Attributes.Len())
			for _, a := range e.Attributes.List {
				o.Attrs = append(o.Attrs, yaml.MapItem{Key: attrKey(a), Value: a.Value})
			}
		}
		if e.TemplateContents != nil {
			for c := range e.TemplateContents.Children() {
				o.Template = append(o.Template, toOutline(c))
			}
		}
	case dom.TextType:
		c, _ := n.AsText()
		o.Data = c.Get()
	case dom.CommentType:
		c, _ := n.AsComment()
		o.Data = c.Get()
	case dom.DoctypeType:
		d, _ := n.AsDoctype()
		o.Name = d.Name
		o.PublicID = d.PublicID
		o.SystemID = d.SystemID
	}
	for c := range n.Children() {
		o.Children = append(o.Children, toOutline(c))
	}
	return o
}

func encodeYAML(n *dom.Node, w io.Writer, es *EncState) error {
	d, err := yaml.MarshalWithOptions(toOutline(n), yaml.Indent(es.indent))
	if err != nil {
		return fmt.Errorf("error encoding yaml: %w", err)
	}
	_, err = w.Write(d)
	return err
}

func encodeJSON(n *dom.Node, w io.Writer, es *EncState) error {
	d, err := json.MarshalIndent(toOutline(n), "", strings.Repeat(" ", es.indent))
	if err != nil {
		return fmt.Errorf("error encoding json: %w", err)
	}
	if _, err := w.Write(d); err != nil {
		return err
	}
	return writeString(w, "\n")
}
