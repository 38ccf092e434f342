package dom

import "iter"

func (n *Node) Children() iter.Seq[*Node] {
	return siblings(n.firstChild, (*Node).NextSibling)
}

// FollowingSiblings yields the siblings after n, nearest first.
func (n *Node) FollowingSiblings() iter.Seq[*Node] {
	return siblings(n.nextSibling, (*Node).NextSibling)
}

// PrecedingSiblings yields the siblings before n, nearest first.
func (n *Node) PrecedingSiblings() iter.Seq[*Node] {
	return siblings(n.prevSibling, (*Node).PrevSibling)
}

func (n *Node) Ancestors() iter.Seq[*Node] {
	return siblings(n.parent, (*Node).Parent)
}

func (n *Node) InclusiveAncestors() iter.Seq[*Node] {
	return siblings(n, (*Node).Parent)
}

func siblings(start *Node, next func(*Node) *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for c := start; c != nil; c = next(c) {
			if !yield(c) {
				return
			}
		}
	}
}

// Edge is a step of a tree traversal: Start is true when entering Node
// and false when leaving it.
type Edge struct {
	Node  *Node
	Start bool
}

// Traverse yields the start and end edges of n and all its descendants
// in document order.
func (n *Node) Traverse() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		cur := Edge{Node: n, Start: true}
		for {
			if !yield(cur) {
				return
			}
			if cur.Start {
				if c := cur.Node.firstChild; c != nil {
					cur = Edge{Node: c, Start: true}
				} else {
					cur.Start = false
				}
				continue
			}
			if cur.Node == n {
				return
			}
			if s := cur.Node.nextSibling; s != nil {
				cur = Edge{Node: s, Start: true}
				continue
			}
			cur = Edge{Node: cur.Node.parent}
		}
	}
}

// InclusiveDescendants yields n and all its descendants in document order.
func (n *Node) InclusiveDescendants() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for e := range n.Traverse() {
			if e.Start && !yield(e.Node) {
				return
			}
		}
	}
}

func (n *Node) Descendants() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for d := range n.InclusiveDescendants() {
			if d == n {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}

// Project yields a DataRef for every node in seq for which f reports a
// sub-part.
func Project[T any](seq iter.Seq[*Node], f func(*Node) (*T, bool)) iter.Seq[*DataRef[T]] {
	return func(yield func(*DataRef[T]) bool) {
		for n := range seq {
			ref, ok := NewDataRefOpt(n, f)
			if !ok {
				continue
			}
			if !yield(ref) {
				return
			}
		}
	}
}

func Elements(seq iter.Seq[*Node]) iter.Seq[*ElementRef] {
	return Project(seq, (*Node).AsElement)
}

func TextNodes(seq iter.Seq[*Node]) iter.Seq[*TextRef] {
	return Project(seq, (*Node).AsText)
}

func Comments(seq iter.Seq[*Node]) iter.Seq[*CommentRef] {
	return Project(seq, (*Node).AsComment)
}
