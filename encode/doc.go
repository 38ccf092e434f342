// Package encode writes dom trees.
//
// Four formats are supported:
//
//   - OutlineFormat: one indented line per node, optionally colored
//   - HTMLFormat: HTML5 serialization
//   - YAMLFormat, JSONFormat: a structural dump of the tree
//
// Usage:
//
//	err := encode.Encode(doc, os.Stdout,
//	    encode.EncodeFormat(encode.HTMLFormat))
//
// # Related Packages
//
//   - github.com/signadot/domref/parse - Parse HTML into dom trees
//   - github.com/signadot/domref/dom - The tree itself
package encode
