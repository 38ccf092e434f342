package libdiff

import (
	"bytes"
	"testing"

	"github.com/signadot/domref/dom"
	"github.com/signadot/domref/parse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffContents(t *testing.T) {
	from, _ := dom.NewText("hello world").IntoTextRef()
	to, _ := dom.NewText("hello there world").IntoTextRef()

	edits := DiffContents(from, to)
	require.True(t, Changed(edits))

	var rebuilt string
	for _, e := range edits {
		if e.Op != Delete {
			rebuilt += e.Text
		}
	}
	assert.Equal(t, "hello there world", rebuilt)

	same := DiffContents(from, from)
	assert.False(t, Changed(same))
}

func TestDiffLines(t *testing.T) {
	edits := DiffLines("a\nb\nc\n", "a\nc\nd\n")
	buf := bytes.NewBuffer(nil)
	require.NoError(t, WriteEdits(buf, edits, false))
	assert.Equal(t, "  a\n- b\n  c\n+ d\n", buf.String())
}

func TestDiffTrees(t *testing.T) {
	from, err := parse.Parse([]byte(`<p id="a">x</p>`), parse.ParseFragment("body"))
	require.NoError(t, err)
	to, err := parse.Parse([]byte(`<p id="b">x</p>`), parse.ParseFragment("body"))
	require.NoError(t, err)

	edits, err := DiffTrees(from, to)
	require.NoError(t, err)
	buf := bytes.NewBuffer(nil)
	require.NoError(t, WriteEdits(buf, edits, false))
	assert.Equal(t, `  #document
-   <p id="a">
+   <p id="b">
      #text "x"
`, buf.String())

	edits, err = DiffTrees(from, from)
	require.NoError(t, err)
	assert.False(t, Changed(edits))
}
