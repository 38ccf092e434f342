package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAttributes(t *testing.T) {
	var a Attributes
	a.Set("id", "x")
	a.Set("class", "c1")
	a.SetNS(Attribute{Name: ExpandedName{NS: NamespaceXLink, Local: "href"}, Prefix: "xlink", Value: "#a"})
	a.Set("id", "y")

	if v, ok := a.Get("id"); !ok || v != "y" {
		t.Errorf("id = %q %t", v, ok)
	}
	if _, ok := a.Get("href"); ok {
		t.Errorf("namespaced attribute found by local name")
	}
	if v, ok := a.GetNS(ExpandedName{NS: NamespaceXLink, Local: "href"}); !ok || v != "#a" {
		t.Errorf("xlink:href = %q %t", v, ok)
	}

	var order []string
	for k := range a.All() {
		order = append(order, k)
	}
	if diff := cmp.Diff([]string{"id", "class"}, order); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
	if a.Len() != 3 {
		t.Errorf("len %d", a.Len())
	}

	if !a.Remove("id") || a.Remove("id") || a.Contains("id") {
		t.Errorf("remove id failed")
	}
	if diff := cmp.Diff(map[string]string{"class": "c1"}, a.Map()); diff != "" {
		t.Errorf("map (-want +got):\n%s", diff)
	}
}
