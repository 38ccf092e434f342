// Package dom provides a document tree and typed references into the data
// of its nodes.
//
// # Nodes
//
// A *Node is a shared handle to a node of one of five types:
//
//   - DocumentType: the root of a document, or a document fragment
//   - DoctypeType: a <!DOCTYPE> declaration
//   - ElementType: an element with a name and attributes
//   - TextType: character data
//   - CommentType: a comment
//
// The type of a node and the location of its payload are fixed when the
// node is created. The As* accessors narrow a node to its payload:
//
//	if e, ok := n.AsElement(); ok {
//	    id, _ := e.Attributes.Get("id")
//	}
//
// Nodes are linked into trees with Append, Prepend, InsertAfter,
// InsertBefore and Detach, and walked with the iterator methods
// (Children, Descendants, Ancestors, Traverse, ...).
//
// # Data references
//
// A DataRef[T] pairs a node with a pointer to a part of its data. Holding
// the DataRef is enough to keep the node alive, and the node can always
// be recovered with AsNode:
//
//	ref, ok := n.IntoElementRef()
//	if !ok {
//	    return
//	}
//	fmt.Println(ref.Value().Name.Local, ref.AsNode().Parent())
//
// The Into*Ref methods cover the five node payloads. NewDataRef and
// NewDataRefOpt build references to other parts; the extract function
// given to them must return a pointer into the node it is called with.
//
// Elements, TextNodes and Comments adapt a node iterator into an iterator
// of data references:
//
//	for e := range dom.Elements(doc.Descendants()) {
//	    fmt.Println(e.Value().Name)
//	}
//
// Nodes are not safe for concurrent mutation.
package dom
