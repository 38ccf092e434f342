package dom

import (
	"fmt"
	"runtime"
	"testing"
	"weak"

	"github.com/google/go-cmp/cmp"
)

func TestIntoRefs(t *testing.T) {
	nodes := []*Node{
		NewDocument(),
		NewDoctype("html", "", ""),
		NewHTMLElement("div", Attr("id", "x")),
		NewText("hello"),
		NewComment("note"),
	}
	for _, n := range nodes {
		t.Run(n.Type().String(), func(t *testing.T) {
			e, isElem := n.AsElement()
			eRef, ok := n.IntoElementRef()
			checkRef(t, "element", n, eRef, ok, e, isElem)

			tx, isText := n.AsText()
			tRef, ok := n.IntoTextRef()
			checkRef(t, "text", n, tRef, ok, tx, isText)

			c, isComment := n.AsComment()
			cRef, ok := n.IntoCommentRef()
			checkRef(t, "comment", n, cRef, ok, c, isComment)

			d, isDoctype := n.AsDoctype()
			dRef, ok := n.IntoDoctypeRef()
			checkRef(t, "doctype", n, dRef, ok, d, isDoctype)

			doc, isDoc := n.AsDocument()
			docRef, ok := n.IntoDocumentRef()
			checkRef(t, "document", n, docRef, ok, doc, isDoc)

			present := 0
			for _, b := range []bool{isElem, isText, isComment, isDoctype, isDoc} {
				if b {
					present++
				}
			}
			if present != 1 {
				t.Errorf("%s classified as %d variants, want 1", n, present)
			}
		})
	}
}

func checkRef[T any](t *testing.T, what string, n *Node, ref *DataRef[T], ok bool, want *T, wantOK bool) {
	t.Helper()
	if ok != wantOK {
		t.Fatalf("%s: got ok=%t want %t", what, ok, wantOK)
	}
	if !ok {
		if ref != nil {
			t.Errorf("%s: absent projection returned non-nil ref", what)
		}
		return
	}
	if ref.Value() != want {
		t.Errorf("%s: Value() %p is not the classified part %p", what, ref.Value(), want)
	}
	if ref.AsNode() != n {
		t.Errorf("%s: AsNode() is not the source node", what)
	}
}

func TestElementRef(t *testing.T) {
	n := NewHTMLElement("p", Attr("id", "x"))
	ref, ok := n.IntoElementRef()
	if !ok {
		t.Fatal("element not classified as element")
	}
	if diff := cmp.Diff(map[string]string{"id": "x"}, ref.Value().Attributes.Map()); diff != "" {
		t.Errorf("attributes (-want +got):\n%s", diff)
	}
	if ref, ok := n.IntoTextRef(); ok || ref != nil {
		t.Errorf("element classified as text: %v", ref)
	}
}

func TestTextRef(t *testing.T) {
	n := NewText("hello")
	ref, ok := n.IntoTextRef()
	if !ok {
		t.Fatal("text not classified as text")
	}
	if got := ref.Value().Get(); got != "hello" {
		t.Errorf("got %q want %q", got, "hello")
	}
	back, ok := ref.AsNode().AsText()
	if !ok {
		t.Fatal("recovered node is not text")
	}
	if got := back.Get(); got != "hello" {
		t.Errorf("recovered node contents %q want %q", got, "hello")
	}

	// the reference sees later changes to the node's contents
	back.Set("bye")
	if got := ref.Value().Get(); got != "bye" {
		t.Errorf("after Set got %q want %q", got, "bye")
	}
}

func TestNewDataRef(t *testing.T) {
	n := NewHTMLElement("a", Attr("href", "/"))
	attrs := NewDataRef(n, func(n *Node) *Attributes {
		e, _ := n.AsElement()
		return &e.Attributes
	})
	if attrs.AsNode() != n {
		t.Fatal("AsNode() is not the source node")
	}
	e, _ := n.AsElement()
	e.Attributes.Set("rel", "home")
	if diff := cmp.Diff(map[string]string{"href": "/", "rel": "home"}, attrs.Value().Map()); diff != "" {
		t.Errorf("attributes (-want +got):\n%s", diff)
	}
}

func TestNewDataRefOptAbsentDoesNotCall(t *testing.T) {
	n := NewComment("c")
	called := 0
	ref, ok := NewDataRefOpt(n, func(n *Node) (*ElementData, bool) {
		called++
		return n.AsElement()
	})
	if ok || ref != nil {
		t.Errorf("got %v, %t", ref, ok)
	}
	if called != 1 {
		t.Errorf("extract called %d times", called)
	}
}

func TestDataRefSurvivesTreeMutation(t *testing.T) {
	doc := NewDocument()
	body := NewHTMLElement("body")
	txt := NewText("hi")
	doc.Append(body)
	body.Append(txt)

	ref, _ := txt.IntoTextRef()
	txt.Detach()
	body.Prepend(NewComment("c"))
	body.Append(txt)

	if got := ref.Value().Get(); got != "hi" {
		t.Errorf("got %q", got)
	}
	if ref.AsNode().Parent() != body {
		t.Errorf("recovered node not reattached to body")
	}
}

func TestDataRefFormat(t *testing.T) {
	text, _ := NewText("hello").IntoTextRef()
	elem, _ := NewHTMLElement("div", Attr("id", "x")).IntoElementRef()
	doctype, _ := NewDoctype("html", "-//W3C//DTD HTML 4.01//EN", "").IntoDoctypeRef()
	doc, _ := NewDocument().IntoDocumentRef()

	tests := []struct {
		name   string
		format string
		ref    any
		direct any
	}{
		{"text v", "%v", text, text.Value()},
		{"text q", "%q", text, text.Value()},
		{"text s width", "%10s|", text, text.Value()},
		{"element +v", "%+v", elem, *elem.Value()},
		{"element #v", "%#v", elem, *elem.Value()},
		{"doctype s", "%s", doctype, doctype.Value()},
		{"document v", "%v", doc, *doc.Value()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fmt.Sprintf(tt.format, tt.ref)
			want := fmt.Sprintf(tt.format, tt.direct)
			if got != want {
				t.Errorf("got %q want %q", got, want)
			}
		})
	}
}

func textRefOnly(v string) (*TextRef, weak.Pointer[Node]) {
	n := NewText(v)
	wp := weak.Make(n)
	ref, _ := n.IntoTextRef()
	return ref, wp
}

func TestDataRefKeepsNodeAlive(t *testing.T) {
	ref, wp := textRefOnly("hello")
	runtime.GC()
	runtime.GC()
	n := wp.Value()
	if n == nil {
		t.Fatal("node collected while a DataRef holds it")
	}
	if n != ref.AsNode() {
		t.Errorf("weak pointer and AsNode() disagree")
	}
	if got := ref.Value().Get(); got != "hello" {
		t.Errorf("got %q want %q", got, "hello")
	}
	runtime.KeepAlive(ref)
}

func TestDataRefReleasesNode(t *testing.T) {
	ref, wp := textRefOnly("bye")
	if got := ref.Value().Get(); got != "bye" {
		t.Fatalf("got %q", got)
	}
	ref = nil
	runtime.GC()
	runtime.GC()
	if wp.Value() != nil {
		t.Error("node still reachable after its last DataRef was dropped")
	}
}

func TestDataRefDropWithOtherHandles(t *testing.T) {
	ref, wp := textRefOnly("shared")
	other := ref.AsNode()
	ref = nil
	runtime.GC()
	runtime.GC()
	if wp.Value() == nil {
		t.Fatal("node collected while another handle holds it")
	}
	c, ok := other.AsText()
	if !ok || c.Get() != "shared" {
		t.Errorf("node data changed: %v %t", c, ok)
	}
	runtime.KeepAlive(other)
}
