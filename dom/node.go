package dom

import (
	"fmt"
	"strconv"
)

// Node is a node in a document tree. A *Node is a shared handle: copies
// of the pointer refer to the same node, and the node lives as long as
// any pointer to it (or to its data) is reachable.
//
// The data payload of a node is fixed at construction. Tree mutation only
// rewires links, so pointers obtained from the classification accessors
// stay valid and keep describing this node.
type Node struct {
	parent      *Node
	firstChild  *Node
	lastChild   *Node
	prevSibling *Node
	nextSibling *Node

	data nodeData
}

type nodeData struct {
	typ      Type
	element  *ElementData
	text     *Contents
	comment  *Contents
	doctype  *Doctype
	document *DocumentData
}

func NewElement(name QualName, attrs ...Attribute) *Node {
	e := &ElementData{Name: name}
	for _, a := range attrs {
		e.Attributes.SetNS(a)
	}
	if name.NS == NamespaceHTML && name.Local == "template" {
		e.TemplateContents = NewDocument()
	}
	return &Node{data: nodeData{typ: ElementType, element: e}}
}

// NewHTMLElement creates an element in the HTML namespace.
func NewHTMLElement(local string, attrs ...Attribute) *Node {
	return NewElement(HTMLName(local), attrs...)
}

func NewText(v string) *Node {
	return &Node{data: nodeData{typ: TextType, text: &Contents{data: v}}}
}

func NewComment(v string) *Node {
	return &Node{data: nodeData{typ: CommentType, comment: &Contents{data: v}}}
}

func NewDoctype(name, publicID, systemID string) *Node {
	return &Node{data: nodeData{typ: DoctypeType, doctype: &Doctype{
		Name:     name,
		PublicID: publicID,
		SystemID: systemID,
	}}}
}

func NewDocument() *Node {
	return &Node{data: nodeData{typ: DocumentType, document: &DocumentData{}}}
}

func (n *Node) Type() Type {
	return n.data.typ
}

// AsElement returns the element data of n if n is an element.
func (n *Node) AsElement() (*ElementData, bool) {
	return n.data.element, n.data.element != nil
}

// AsText returns the contents of n if n is a text node.
func (n *Node) AsText() (*Contents, bool) {
	return n.data.text, n.data.text != nil
}

// AsComment returns the contents of n if n is a comment.
func (n *Node) AsComment() (*Contents, bool) {
	return n.data.comment, n.data.comment != nil
}

// AsDoctype returns the doctype data of n if n is a doctype.
func (n *Node) AsDoctype() (*Doctype, bool) {
	return n.data.doctype, n.data.doctype != nil
}

// AsDocument returns the document data of n if n is a document.
func (n *Node) AsDocument() (*DocumentData, bool) {
	return n.data.document, n.data.document != nil
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.data.typ {
	case ElementType:
		return "<" + n.data.element.Name.String() + ">"
	case TextType:
		return "#text " + strconv.Quote(n.data.text.data)
	case CommentType:
		return "#comment " + strconv.Quote(n.data.comment.data)
	case DoctypeType:
		return n.data.doctype.String()
	case DocumentType:
		return "#document"
	}
	return fmt.Sprintf("<node type %d>", int(n.data.typ))
}
