// Package libdiff computes differences between node contents and
// between whole trees.
package libdiff

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/domref/dom"
	"github.com/signadot/domref/encode"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	}
	return " "
}

type Edit struct {
	Op   Op
	Text string
}

func fromDiffs(diffs []diffpatch.Diff) []Edit {
	res := make([]Edit, 0, len(diffs))
	for _, d := range diffs {
		e := Edit{Text: d.Text}
		switch d.Type {
		case diffpatch.DiffInsert:
			e.Op = Insert
		case diffpatch.DiffDelete:
			e.Op = Delete
		}
		res = append(res, e)
	}
	return res
}

// DiffStrings returns a character level diff of from and to, cleaned up
// for readability.
func DiffStrings(from, to string) []Edit {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	return fromDiffs(diffs)
}

// DiffContents diffs the contents of two text or comment nodes.
func DiffContents(from, to *dom.TextRef) []Edit {
	return DiffStrings(from.Value().Get(), to.Value().Get())
}

// DiffLines returns a line level diff of from and to. Every edit text is
// one or more complete lines.
func DiffLines(from, to string) []Edit {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	return fromDiffs(diffs)
}

// DiffTrees returns a line diff of the outlines of from and to.
func DiffTrees(from, to *dom.Node) ([]Edit, error) {
	fBuf, tBuf := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
	if err := encode.Encode(from, fBuf); err != nil {
		return nil, fmt.Errorf("error encoding from: %w", err)
	}
	if err := encode.Encode(to, tBuf); err != nil {
		return nil, fmt.Errorf("error encoding to: %w", err)
	}
	return DiffLines(fBuf.String(), tBuf.String()), nil
}

// Changed reports whether edits contain any insertion or deletion.
func Changed(edits []Edit) bool {
	for _, e := range edits {
		if e.Op != Equal {
			return true
		}
	}
	return false
}

// WriteEdits writes line edits, one line per output line prefixed by
// "+", "-" or " ".
func WriteEdits(w io.Writer, edits []Edit, colors bool) error {
	for _, e := range edits {
		text := strings.TrimSuffix(e.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			out := e.Op.String() + " " + ln
			if colors {
				switch e.Op {
				case Insert:
					out = color.GreenString("%s", out)
				case Delete:
					out = color.RedString("%s", out)
				}
			}
			if _, err := io.WriteString(w, out+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
