// Package attrpatch applies JSON patches to element attributes.
//
// The non-namespaced attributes of an element are viewed as a JSON
// object of strings, patched, and written back. Attributes that survive
// keep their position; new attributes are appended in name order.
// Namespaced attributes are left alone.
package attrpatch

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/signadot/domref/debug"
	"github.com/signadot/domref/dom"

	jsonpatch "github.com/evanphx/json-patch"
)

var (
	ErrPatch     = errors.New("attribute patch error")
	ErrAttrValue = fmt.Errorf("%w: attribute value is not a string", ErrPatch)
)

// Apply applies an RFC 6902 JSON patch to the attributes of ref.
func Apply(ref *dom.ElementRef, patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return update(ref, ops.Apply)
}

// Merge applies an RFC 7396 JSON merge patch to the attributes of ref.
// A null member removes the attribute.
func Merge(ref *dom.ElementRef, patch []byte) error {
	return update(ref, func(doc []byte) ([]byte, error) {
		return jsonpatch.MergePatch(doc, patch)
	})
}

func update(ref *dom.ElementRef, f func([]byte) ([]byte, error)) error {
	e := ref.Value()
	doc, err := json.Marshal(e.Attributes.Map())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := f(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPatch, err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		return fmt.Errorf("%w: %w", ErrPatch, err)
	}
	vals := make(map[string]string, len(m))
	for k, v := range m {
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: %s=%v", ErrAttrValue, k, v)
		}
		vals[k] = s
	}
	if debug.Patch() {
		debug.Logf("patching attributes of %s: %s -> %s", ref.AsNode(), doc, out)
	}

	list := make([]dom.Attribute, 0, len(vals))
	for _, a := range e.Attributes.List {
		if a.Name.NS != "" {
			list = append(list, a)
			continue
		}
		v, ok := vals[a.Name.Local]
		if !ok {
			continue
		}
		a.Value = v
		list = append(list, a)
		delete(vals, a.Name.Local)
	}
	for _, k := range slices.Sorted(maps.Keys(vals)) {
		list = append(list, dom.Attr(k, vals[k]))
	}
	e.Attributes.List = list
	return nil
}
