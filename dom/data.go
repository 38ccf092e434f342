package dom

import "strings"

const (
	NamespaceHTML   = "http://www.w3.org/1999/xhtml"
	NamespaceSVG    = "http://www.w3.org/2000/svg"
	NamespaceMathML = "http://www.w3.org/1998/Math/MathML"
	NamespaceXLink  = "http://www.w3.org/1999/xlink"
	NamespaceXML    = "http://www.w3.org/XML/1998/namespace"
	NamespaceXMLNS  = "http://www.w3.org/2000/xmlns/"
)

// QualName is a possibly prefixed, namespaced element name.
type QualName struct {
	Prefix string
	NS     string
	Local  string
}

func HTMLName(local string) QualName {
	return QualName{NS: NamespaceHTML, Local: local}
}

func (q QualName) Expanded() ExpandedName {
	return ExpandedName{NS: q.NS, Local: q.Local}
}

func (q QualName) String() string {
	if q.Prefix == "" {
		return q.Local
	}
	return q.Prefix + ":" + q.Local
}

// ExpandedName is a namespace and local name pair, used as an attribute key.
type ExpandedName struct {
	NS    string
	Local string
}

// ElementData is the payload of an element node.
type ElementData struct {
	Name       QualName
	Attributes Attributes

	// TemplateContents is the fragment holding the children of an html
	// template element. It is nil for every other element.
	TemplateContents *Node
}

// IsHTML reports whether the element is in the HTML namespace
// with the given local name.
func (e *ElementData) IsHTML(local string) bool {
	return e.Name.NS == NamespaceHTML && e.Name.Local == local
}

// Contents holds the character data of text and comment nodes. It may
// be changed in place; the Contents value itself never moves.
type Contents struct {
	data string
}

func (c *Contents) Get() string {
	return c.data
}

func (c *Contents) Set(v string) {
	c.data = v
}

func (c *Contents) Append(v string) {
	c.data += v
}

func (c *Contents) String() string {
	return c.data
}

// Doctype is the payload of a doctype node.
type Doctype struct {
	Name     string
	PublicID string
	SystemID string
}

func (d *Doctype) String() string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE ")
	b.WriteString(d.Name)
	switch {
	case d.PublicID != "":
		b.WriteString(` PUBLIC "` + d.PublicID + `"`)
		if d.SystemID != "" {
			b.WriteString(` "` + d.SystemID + `"`)
		}
	case d.SystemID != "":
		b.WriteString(` SYSTEM "` + d.SystemID + `"`)
	}
	b.WriteString(">")
	return b.String()
}

type QuirksMode int

const (
	NoQuirks QuirksMode = iota
	LimitedQuirks
	Quirks
)

func (q QuirksMode) String() string {
	switch q {
	case NoQuirks:
		return "no-quirks"
	case LimitedQuirks:
		return "limited-quirks"
	case Quirks:
		return "quirks"
	}
	return "<unknown quirks mode>"
}

// DocumentData is the payload of a document (or document fragment) node.
type DocumentData struct {
	QuirksMode QuirksMode
}
