package xml

import "strings"

// Node is a node in the XML tree. A *Node is a shared handle: the parent,
// siblings, wrapper objects, and external id maps may all hold references
// to the same node at once, and the node stays alive for as long as any of
// them can reach it.
type Node struct {
	kind NodeKind

	// value holds the tag name for element nodes and the character content
	// for text nodes. It is nil only for the document root.
	value *string

	attributes map[string]string
	children   []*Node

	parent      *Node
	prevSibling *Node
	nextSibling *Node

	// The script object bound to this node, if any. Bound at most once.
	scriptObject ScriptObject

	// The script object bound to this node's attribute table, if any.
	attributesObject ScriptObject
}

// NewText constructs a new text node with the given contents.
func NewText(contents string) *Node {
	return &Node{
		kind:       TextNode,
		value:      &contents,
		attributes: make(map[string]string),
	}
}

// NewElement constructs a new element node with the given tag name.
func NewElement(name string) *Node {
	return &Node{
		kind:       ElementNode,
		value:      &name,
		attributes: make(map[string]string),
	}
}

// NewDocumentRoot constructs a new document root node: an element with no
// tag name whose children are the document's top-level content.
func NewDocumentRoot() *Node {
	return &Node{
		kind:       ElementNode,
		attributes: make(map[string]string),
	}
}

// Kind returns the kind of this node.
func (n *Node) Kind() NodeKind {
	return n.kind
}

// Parent returns the parent of this node, or nil if it has none.
func (n *Node) Parent() *Node {
	return n.parent
}

// PrevSibling returns the previous sibling of this node, or nil if this is
// the first child of its parent (or has no parent).
func (n *Node) PrevSibling() *Node {
	return n.prevSibling
}

// NextSibling returns the next sibling of this node, or nil if this is the
// last child of its parent (or has no parent).
func (n *Node) NextSibling() *Node {
	return n.nextSibling
}

// FirstChild returns the first child of this node, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// LastChild returns the last child of this node, or nil.
func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// NodeName returns the tag name of this node. The second return value is
// false for text nodes and for the document root, which have no name.
func (n *Node) NodeName() (string, bool) {
	if n.kind == ElementNode && n.value != nil {
		return *n.value, true
	}
	return "", false
}

// LocalName returns the part of the node name after the first ':', or the
// whole name if it contains none. A name ending in ':' is returned whole.
func (n *Node) LocalName() (string, bool) {
	name, ok := n.NodeName()
	if !ok {
		return "", false
	}
	if i := strings.IndexByte(name, ':'); i >= 0 && i+1 < len(name) {
		return name[i+1:], true
	}
	return name, true
}

// Prefix returns the part of the node name before the first ':', or the
// empty string if the name is unprefixed.
func (n *Node) Prefix() (string, bool) {
	name, ok := n.NodeName()
	if !ok {
		return "", false
	}
	if i := strings.IndexByte(name, ':'); i >= 0 && i+1 < len(name) {
		return name[:i], true
	}
	return "", true
}

// NodeValue returns the character content of this node. The second return
// value is false for element nodes, which have no value.
func (n *Node) NodeValue() (string, bool) {
	if n.kind == ElementNode || n.value == nil {
		return "", false
	}
	return *n.value, true
}

// SetNodeValue replaces the character content of this node.
func (n *Node) SetNodeValue(value string) {
	n.value = &value
}

// ChildrenLen returns the number of children of this node.
func (n *Node) ChildrenLen() int {
	return len(n.children)
}

// ChildPosition returns the position of child in this node's child list.
// The second return value is false if child is not a child of this node.
func (n *Node) ChildPosition(child *Node) (int, bool) {
	for i, c := range n.children {
		if c == child {
			return i, true
		}
	}
	return 0, false
}

// HasChild reports whether child is a direct child of this node.
func (n *Node) HasChild(child *Node) bool {
	return child != nil && child.parent == n
}

// ChildByIndex returns the child at the given index, or nil if the index
// is out of range.
func (n *Node) ChildByIndex(index int) *Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	return n.children[index]
}

// Children returns a snapshot of this node's children in order. Mutating
// the tree does not affect a previously returned slice.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Ancestors returns this node followed by its ancestors, closest first.
func (n *Node) Ancestors() []*Node {
	var out []*Node
	for cur := n; cur != nil; cur = cur.parent {
		out = append(out, cur)
	}
	return out
}
