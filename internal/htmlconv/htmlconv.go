// Package htmlconv converts between golang.org/x/net/html trees and dom
// trees.
package htmlconv

import (
	"github.com/signadot/domref/dom"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	elemNS = map[string]string{
		"":     dom.NamespaceHTML,
		"svg":  dom.NamespaceSVG,
		"math": dom.NamespaceMathML,
	}
	attrNS = map[string]string{
		"xlink": dom.NamespaceXLink,
		"xml":   dom.NamespaceXML,
		"xmlns": dom.NamespaceXMLNS,
	}
)

func reverse(m map[string]string) map[string]string {
	res := make(map[string]string, len(m))
	for k, v := range m {
		res[v] = k
	}
	return res
}

var (
	elemNSRev = reverse(elemNS)
	attrNSRev = reverse(attrNS)
)

// ToDOM converts h and its descendants. Comment nodes are dropped unless
// comments is true. ToDOM returns nil for nodes with no dom counterpart.
func ToDOM(h *html.Node, comments bool) *dom.Node {
	var n *dom.Node
	switch h.Type {
	case html.DocumentNode:
		n = dom.NewDocument()
	case html.DoctypeNode:
		var public, system string
		for _, a := range h.Attr {
			switch a.Key {
			case "public":
				public = a.Val
			case "system":
				system = a.Val
			}
		}
		return dom.NewDoctype(h.Data, public, system)
	case html.TextNode:
		return dom.NewText(h.Data)
	case html.CommentNode:
		if !comments {
			return nil
		}
		return dom.NewComment(h.Data)
	case html.ElementNode:
		n = dom.NewElement(elementName(h), attributes(h.Attr)...)
	default:
		return nil
	}
	dst := n
	if e, ok := n.AsElement(); ok && e.TemplateContents != nil {
		dst = e.TemplateContents
	}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if dc := ToDOM(c, comments); dc != nil {
			dst.Append(dc)
		}
	}
	return n
}

func elementName(h *html.Node) dom.QualName {
	ns, ok := elemNS[h.Namespace]
	if !ok {
		ns = h.Namespace
	}
	return dom.QualName{NS: ns, Local: h.Data}
}

func attributes(attrs []html.Attribute) []dom.Attribute {
	res := make([]dom.Attribute, 0, len(attrs))
	for _, a := range attrs {
		if a.Namespace == "" {
			res = append(res, dom.Attr(a.Key, a.Val))
			continue
		}
		ns, ok := attrNS[a.Namespace]
		if !ok {
			ns = a.Namespace
		}
		res = append(res, dom.Attribute{
			Name:   dom.ExpandedName{NS: ns, Local: a.Key},
			Prefix: a.Namespace,
			Value:  a.Val,
		})
	}
	return res
}

// FromDOM converts n and its descendants. Template contents become the
// children of the template element.
func FromDOM(n *dom.Node) *html.Node {
	h := &html.Node{}
	switch n.Type() {
	case dom.DocumentType:
		h.Type = html.DocumentNode
	case dom.DoctypeType:
		d, _ := n.AsDoctype()
		h.Type = html.DoctypeNode
		h.Data = d.Name
		if d.PublicID != "" {
			h.Attr = append(h.Attr, html.Attribute{Key: "public", Val: d.PublicID})
		}
		if d.SystemID != "" {
			h.Attr = append(h.Attr, html.Attribute{Key: "system", Val: d.SystemID})
		}
		return h
	case dom.TextType:
		c, _ := n.AsText()
		h.Type = html.TextNode
		h.Data = c.Get()
		return h
	case dom.CommentType:
		c, _ := n.AsComment()
		h.Type = html.CommentNode
		h.Data = c.Get()
		return h
	case dom.ElementType:
		e, _ := n.AsElement()
		h.Type = html.ElementNode
		h.Data = e.Name.Local
		ns, ok := elemNSRev[e.Name.NS]
		if !ok {
			ns = e.Name.NS
		}
		h.Namespace = ns
		if ns == "" {
			h.DataAtom = atom.Lookup([]byte(h.Data))
		}
		for _, a := range e.Attributes.List {
			ha := html.Attribute{Key: a.Name.Local, Val: a.Value}
			if a.Name.NS != "" {
				ha.Namespace = a.Prefix
				if p, ok := attrNSRev[a.Name.NS]; ok {
					ha.Namespace = p
				}
			}
			h.Attr = append(h.Attr, ha)
		}
		if e.TemplateContents != nil {
			for c := range e.TemplateContents.Children() {
				h.AppendChild(FromDOM(c))
			}
		}
	}
	for c := range n.Children() {
		h.AppendChild(FromDOM(c))
	}
	return h
}

// ContextElement returns an element usable as the context of
// html.ParseFragment.
func ContextElement(local string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     local,
		DataAtom: atom.Lookup([]byte(local)),
	}
}
