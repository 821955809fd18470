package xml

import "slices"

// disownSiblings removes this node from its current sibling list, linking
// its former neighbors to each other so the list stays coherent. It is the
// opposite of adoptSiblings.
func (n *Node) disownSiblings() {
	oldPrev := n.prevSibling
	oldNext := n.nextSibling

	if oldPrev != nil {
		oldPrev.nextSibling = oldNext
	}
	if oldNext != nil {
		oldNext.prevSibling = oldPrev
	}

	n.prevSibling = nil
	n.nextSibling = nil
}

// adoptSiblings links this node between newPrev and newNext, updating both
// neighbors' opposite-side links so the list stays coherent. It is the
// opposite of disownSiblings.
func (n *Node) adoptSiblings(newPrev, newNext *Node) {
	if newPrev != nil {
		newPrev.nextSibling = n
	}
	if newNext != nil {
		newNext.prevSibling = n
	}

	n.prevSibling = newPrev
	n.nextSibling = newNext
}

// orphanChild removes child from this node's child list, if present. The
// child's own links are left untouched.
func (n *Node) orphanChild(child *Node) {
	if position, ok := n.ChildPosition(child); ok {
		n.children = slices.Delete(n.children, position, position+1)
	}
}

// isInclusiveAncestor reports whether node is this node or one of its
// ancestors.
func (n *Node) isInclusiveAncestor(node *Node) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == node {
			return true
		}
	}
	return false
}

// InsertChild inserts child into this node's child list at the given
// position (0-indexed; position may equal ChildrenLen to append). The
// child is detached from any previous parent first, and the sibling links
// around the insertion point are rewired.
//
// An insertion that would make a node its own descendant leaves the tree
// unchanged, matching the legacy runtime. Use InsertChildWithError to have
// that case reported instead.
func (n *Node) InsertChild(position int, child *Node) {
	_ = n.InsertChildWithError(position, child)
}

// InsertChildWithError is InsertChild, except that a cycle-forming
// insertion returns a HierarchyError instead of being silently ignored.
func (n *Node) InsertChildWithError(position int, child *Node) error {
	if n.isInclusiveAncestor(child) {
		return ErrHierarchy("The new child contains (or is) the insertion target.")
	}

	if oldParent := child.parent; oldParent != nil && oldParent != n {
		oldParent.orphanChild(child)
		// Close the gap in the old sibling chain; adoptSiblings below
		// installs the new links.
		child.disownSiblings()
	}

	child.parent = n
	n.children = slices.Insert(n.children, position, child)

	var newPrev, newNext *Node
	if position > 0 {
		newPrev = n.children[position-1]
	}
	if position+1 < len(n.children) {
		newNext = n.children[position+1]
	}
	child.adoptSiblings(newPrev, newNext)
	return nil
}

// AppendChild inserts child at the end of this node's child list. The
// cycle policy is that of InsertChild.
func (n *Node) AppendChild(child *Node) {
	n.InsertChild(len(n.children), child)
}

// AppendChildWithError is AppendChild with the cycle policy of
// InsertChildWithError.
func (n *Node) AppendChildWithError(child *Node) error {
	return n.InsertChildWithError(len(n.children), child)
}

// RemoveNode detaches this node from its parent, closing the sibling gap
// it leaves behind. It is a no-op on a node with no parent.
func (n *Node) RemoveNode() {
	parent := n.parent
	if parent == nil {
		return
	}

	// Guaranteed to be present: n is a child of parent.
	position, _ := parent.ChildPosition(n)
	parent.children = slices.Delete(parent.children, position, position+1)

	n.disownSiblings()
	n.parent = nil
}

// Duplicate returns a parentless, sibling-less copy of this node with the
// same kind, value, and a copy of its attribute table. If deep is set, the
// entire subtree is cloned; the copy shares no node with the original.
// Wrapper bindings are not carried over.
func (n *Node) Duplicate(deep bool) *Node {
	clone := &Node{
		kind:       n.kind,
		value:      n.value,
		attributes: make(map[string]string, len(n.attributes)),
	}
	for key, value := range n.attributes {
		clone.attributes[key] = value
	}

	if deep {
		for position, child := range n.children {
			clone.InsertChild(position, child.Duplicate(deep))
		}
	}

	return clone
}

// Swap exchanges the entire stored contents of this node and other: kind,
// value, attributes, children, parent and sibling links, and wrapper
// bindings. Handles held elsewhere keep pointing at the same identities,
// which now carry the exchanged contents; it is a logic error to swap
// nodes that have outstanding external referents. No-op when both handles
// are the same node.
func (n *Node) Swap(other *Node) {
	if n != other {
		*n, *other = *other, *n
	}
}
