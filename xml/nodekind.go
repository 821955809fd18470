// Package xml implements the in-memory XML document tree backing the
// legacy XMLNode object model exposed to scripts. Nodes form a cyclic
// graph (parent, child, and sibling back-references); reclamation of
// unreachable subtrees is left to the Go garbage collector.
package xml

// NodeKind identifies the kind of a Node, using the standard DOM numbering.
// Only elements and text are modeled.
type NodeKind uint8

const (
	// ElementNode represents an element with a tag name, attributes, and
	// children. The document root is an element with no tag name.
	ElementNode NodeKind = 1
	// TextNode represents a run of character content.
	TextNode NodeKind = 3
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case ElementNode:
		return "ELEMENT_NODE"
	case TextNode:
		return "TEXT_NODE"
	default:
		return "UNKNOWN_NODE"
	}
}
