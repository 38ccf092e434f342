package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/domref/debug"
	"github.com/signadot/domref/dom"
)

func init() {
	debug.SetNodeString(MustString)
}

func MustString(node *dom.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
