package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// html
//
//	<!DOCTYPE html><html><head></head><body><p id="a">x</p><!--c--><p>y</p></body></html>
func sampleDoc() (doc, body, p1, p2 *Node) {
	doc = NewDocument()
	doc.Append(NewDoctype("html", "", ""))
	html := NewHTMLElement("html")
	doc.Append(html)
	html.Append(NewHTMLElement("head"))
	body = NewHTMLElement("body")
	html.Append(body)
	p1 = NewHTMLElement("p", Attr("id", "a"))
	p1.Append(NewText("x"))
	body.Append(p1)
	body.Append(NewComment("c"))
	p2 = NewHTMLElement("p")
	p2.Append(NewText("y"))
	body.Append(p2)
	return
}

func TestDescendants(t *testing.T) {
	doc, _, _, _ := sampleDoc()
	want := []string{
		"<!DOCTYPE html>", "<html>", "<head>", "<body>",
		"<p>", `#text "x"`, `#comment "c"`, "<p>", `#text "y"`,
	}
	if diff := cmp.Diff(want, labels(doc.Descendants())); diff != "" {
		t.Errorf("descendants (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(append([]string{"#document"}, want...), labels(doc.InclusiveDescendants())); diff != "" {
		t.Errorf("inclusive descendants (-want +got):\n%s", diff)
	}
}

func TestTraverseEdges(t *testing.T) {
	_, _, p1, _ := sampleDoc()
	var got []string
	for e := range p1.Traverse() {
		s := "end "
		if e.Start {
			s = "start "
		}
		got = append(got, s+e.Node.String())
	}
	want := []string{`start <p>`, `start #text "x"`, `end #text "x"`, `end <p>`}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("edges (-want +got):\n%s", diff)
	}
}

func TestSiblingsAndAncestors(t *testing.T) {
	_, body, p1, p2 := sampleDoc()
	if diff := cmp.Diff([]string{`#comment "c"`, "<p>"}, labels(p1.FollowingSiblings())); diff != "" {
		t.Errorf("following (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{`#comment "c"`, "<p>"}, labels(p2.PrecedingSiblings())); diff != "" {
		t.Errorf("preceding (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"<html>", "#document"}, labels(body.Ancestors())); diff != "" {
		t.Errorf("ancestors (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"<body>", "<html>", "#document"}, labels(body.InclusiveAncestors())); diff != "" {
		t.Errorf("inclusive ancestors (-want +got):\n%s", diff)
	}
}

func TestProjectedIterators(t *testing.T) {
	doc, _, p1, _ := sampleDoc()
	var names []string
	for e := range Elements(doc.Descendants()) {
		names = append(names, e.Value().Name.Local)
	}
	if diff := cmp.Diff([]string{"html", "head", "body", "p", "p"}, names); diff != "" {
		t.Errorf("elements (-want +got):\n%s", diff)
	}

	var texts []string
	for tx := range TextNodes(doc.Descendants()) {
		texts = append(texts, tx.Value().Get())
	}
	if diff := cmp.Diff([]string{"x", "y"}, texts); diff != "" {
		t.Errorf("texts (-want +got):\n%s", diff)
	}

	n := 0
	for c := range Comments(doc.Descendants()) {
		n++
		if c.AsNode().Parent() == nil {
			t.Errorf("comment ref lost its node")
		}
	}
	if n != 1 {
		t.Errorf("got %d comments", n)
	}

	for e := range Elements(p1.InclusiveAncestors()) {
		if e.Value().Name.Local == "body" {
			break
		}
	}
}
