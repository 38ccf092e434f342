package dom

import "fmt"

type Type int

const (
	DocumentType Type = iota
	DoctypeType
	ElementType
	TextType
	CommentType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		DocumentType: "Document",
		DoctypeType:  "Doctype",
		ElementType:  "Element",
		TextType:     "Text",
		CommentType:  "Comment",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Document": DocumentType,
		"Doctype":  DoctypeType,
		"Element":  ElementType,
		"Text":     TextType,
		"Comment":  CommentType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		DocumentType,
		DoctypeType,
		ElementType,
		TextType,
		CommentType,
	}
}

// IsLeaf reports whether nodes of type t never have children.
func (t Type) IsLeaf() bool {
	switch t {
	case DocumentType, ElementType:
		return false
	default:
		return true
	}
}
