package xml

import "sort"

// AttributeValue retrieves the value of a single attribute on this node.
// The second return value is false if the attribute is not set.
func (n *Node) AttributeValue(name string) (string, bool) {
	value, ok := n.attributes[name]
	return value, ok
}

// AttributeKeys returns all attribute names defined on this node, in
// ascending key order.
func (n *Node) AttributeKeys() []string {
	keys := make([]string, 0, len(n.attributes))
	for key := range n.attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// SetAttributeValue sets the value of a single attribute on this node,
// overwriting any previous value.
func (n *Node) SetAttributeValue(name, value string) {
	n.attributes[name] = value
}

// DeleteAttribute removes a single attribute from this node. It is a
// no-op if the attribute is not set.
func (n *Node) DeleteAttribute(name string) {
	delete(n.attributes, name)
}
