package dom

import "strings"

func (n *Node) Parent() *Node      { return n.parent }
func (n *Node) FirstChild() *Node  { return n.firstChild }
func (n *Node) LastChild() *Node   { return n.lastChild }
func (n *Node) PrevSibling() *Node { return n.prevSibling }
func (n *Node) NextSibling() *Node { return n.nextSibling }

// Root returns the topmost ancestor of n, or n itself.
func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Detach removes n from its parent and siblings. The children of n are
// left in place.
func (n *Node) Detach() {
	parent, prev, next := n.parent, n.prevSibling, n.nextSibling
	n.parent, n.prevSibling, n.nextSibling = nil, nil, nil
	if prev != nil {
		prev.nextSibling = next
	} else if parent != nil {
		parent.firstChild = next
	}
	if next != nil {
		next.prevSibling = prev
	} else if parent != nil {
		parent.lastChild = prev
	}
}

// checkInsert panics if c is n or one of its ancestors, since linking
// it under n would make the tree cyclic.
func (n *Node) checkInsert(c *Node) {
	for a := n; a != nil; a = a.parent {
		if a == c {
			panic("dom: inserting a node into its own subtree")
		}
	}
}

// Append adds c as the last child of n, detaching it first. It panics
// if c is n or an ancestor of n.
func (n *Node) Append(c *Node) {
	n.checkInsert(c)
	c.Detach()
	c.parent = n
	if last := n.lastChild; last != nil {
		last.nextSibling = c
		c.prevSibling = last
	} else {
		n.firstChild = c
	}
	n.lastChild = c
}

// Prepend adds c as the first child of n, detaching it first. It panics
// if c is n or an ancestor of n.
func (n *Node) Prepend(c *Node) {
	n.checkInsert(c)
	c.Detach()
	c.parent = n
	if first := n.firstChild; first != nil {
		first.prevSibling = c
		c.nextSibling = first
	} else {
		n.lastChild = c
	}
	n.firstChild = c
}

// InsertAfter adds s as the next sibling of n, detaching it first.
// Inserting n after itself does nothing. It panics if s is an ancestor
// of n.
func (n *Node) InsertAfter(s *Node) {
	if s == n {
		return
	}
	if n.parent != nil {
		n.parent.checkInsert(s)
	}
	s.Detach()
	s.parent = n.parent
	s.prevSibling = n
	if next := n.nextSibling; next != nil {
		next.prevSibling = s
		s.nextSibling = next
	} else if n.parent != nil {
		n.parent.lastChild = s
	}
	n.nextSibling = s
}

// InsertBefore adds s as the previous sibling of n, detaching it first.
// Inserting n before itself does nothing. It panics if s is an ancestor
// of n.
func (n *Node) InsertBefore(s *Node) {
	if s == n {
		return
	}
	if n.parent != nil {
		n.parent.checkInsert(s)
	}
	s.Detach()
	s.parent = n.parent
	s.nextSibling = n
	if prev := n.prevSibling; prev != nil {
		prev.nextSibling = s
		s.prevSibling = prev
	} else if n.parent != nil {
		n.parent.firstChild = s
	}
	n.prevSibling = s
}

// TextContents concatenates the contents of all text nodes under n,
// in document order.
func (n *Node) TextContents() string {
	var b strings.Builder
	for t := range TextNodes(n.InclusiveDescendants()) {
		b.WriteString(t.Value().Get())
	}
	return b.String()
}
