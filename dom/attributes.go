package dom

import "iter"

type Attribute struct {
	Name   ExpandedName
	Prefix string
	Value  string
}

// Attr returns a non-namespaced attribute.
func Attr(local, value string) Attribute {
	return Attribute{Name: ExpandedName{Local: local}, Value: value}
}

// Attributes is an insertion ordered attribute set keyed by ExpandedName.
type Attributes struct {
	List []Attribute
}

func (a *Attributes) index(name ExpandedName) int {
	for i := range a.List {
		if a.List[i].Name == name {
			return i
		}
	}
	return -1
}

// Get returns the value of the non-namespaced attribute local.
func (a *Attributes) Get(local string) (string, bool) {
	return a.GetNS(ExpandedName{Local: local})
}

func (a *Attributes) GetNS(name ExpandedName) (string, bool) {
	i := a.index(name)
	if i < 0 {
		return "", false
	}
	return a.List[i].Value, true
}

func (a *Attributes) Contains(local string) bool {
	return a.index(ExpandedName{Local: local}) >= 0
}

// Set sets a non-namespaced attribute, keeping its position if it
// already exists.
func (a *Attributes) Set(local, value string) {
	a.SetNS(Attr(local, value))
}

func (a *Attributes) SetNS(attr Attribute) {
	i := a.index(attr.Name)
	if i < 0 {
		a.List = append(a.List, attr)
		return
	}
	a.List[i] = attr
}

// Remove deletes a non-namespaced attribute and reports whether it
// was present.
func (a *Attributes) Remove(local string) bool {
	return a.RemoveNS(ExpandedName{Local: local})
}

func (a *Attributes) RemoveNS(name ExpandedName) bool {
	i := a.index(name)
	if i < 0 {
		return false
	}
	a.List = append(a.List[:i], a.List[i+1:]...)
	return true
}

func (a *Attributes) Len() int {
	return len(a.List)
}

// All yields local names and values of non-namespaced attributes in order.
func (a *Attributes) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, attr := range a.List {
			if attr.Name.NS != "" {
				continue
			}
			if !yield(attr.Name.Local, attr.Value) {
				return
			}
		}
	}
}

// Map returns the non-namespaced attributes as a map.
func (a *Attributes) Map() map[string]string {
	res := make(map[string]string, len(a.List))
	for k, v := range a.All() {
		res[k] = v
	}
	return res
}
