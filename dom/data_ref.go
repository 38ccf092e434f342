package dom

import "fmt"

// DataRef holds a node alive while giving direct access to a part of
// its data, such as the element data of an element node.
//
// A DataRef can only be built by applying an extract function to the
// node it keeps, so the referenced part can never outlive, or be paired
// with anything other than, the node it came from.
type DataRef[T any] struct {
	keepAlive *Node
	ref       *T
}

type (
	ElementRef  = DataRef[ElementData]
	TextRef     = DataRef[Contents]
	CommentRef  = DataRef[Contents]
	DoctypeRef  = DataRef[Doctype]
	DocumentRef = DataRef[DocumentData]
)

// NewDataRef creates a DataRef for the part of n returned by f.
//
// f must return a pointer into the data owned by n (for example one of
// the pointers returned by the As* accessors). Returning anything else
// produces a DataRef whose AsNode does not describe its Value.
func NewDataRef[T any](n *Node, f func(*Node) *T) *DataRef[T] {
	return &DataRef[T]{keepAlive: n, ref: f(n)}
}

// NewDataRefOpt creates a DataRef for a part of n which may be absent.
// When f reports no part, n is not retained and NewDataRefOpt returns
// nil, false. The same contract on f as for NewDataRef applies.
func NewDataRefOpt[T any](n *Node, f func(*Node) (*T, bool)) (*DataRef[T], bool) {
	ref, ok := f(n)
	if !ok {
		return nil, false
	}
	return &DataRef[T]{keepAlive: n, ref: ref}, true
}

// AsNode returns the node this reference keeps alive.
func (r *DataRef[T]) AsNode() *Node {
	return r.keepAlive
}

// Value returns the referenced part. It is valid for as long as r or
// any other handle to the node is held.
func (r *DataRef[T]) Value() *T {
	return r.ref
}

// Format formats the referenced part as if it were formatted directly,
// so a DataRef is invisible in diagnostics.
func (r *DataRef[T]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), r.formatTarget())
}

func (r *DataRef[T]) formatTarget() any {
	switch any(r.ref).(type) {
	case fmt.Formatter, fmt.Stringer, fmt.GoStringer, error:
		return r.ref
	}
	return *r.ref
}

// IntoElementRef returns a reference to the element data of n if n is
// an element.
func (n *Node) IntoElementRef() (*ElementRef, bool) {
	return NewDataRefOpt(n, (*Node).AsElement)
}

// IntoTextRef returns a reference to the contents of n if n is a text
// node.
func (n *Node) IntoTextRef() (*TextRef, bool) {
	return NewDataRefOpt(n, (*Node).AsText)
}

// IntoCommentRef returns a reference to the contents of n if n is a
// comment.
func (n *Node) IntoCommentRef() (*CommentRef, bool) {
	return NewDataRefOpt(n, (*Node).AsComment)
}

// IntoDoctypeRef returns a reference to the doctype data of n if n is a
// doctype.
func (n *Node) IntoDoctypeRef() (*DoctypeRef, bool) {
	return NewDataRefOpt(n, (*Node).AsDoctype)
}

// IntoDocumentRef returns a reference to the document data of n if n is
// a document.
func (n *Node) IntoDocumentRef() (*DocumentRef, bool) {
	return NewDataRefOpt(n, (*Node).AsDocument)
}
