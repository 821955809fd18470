package xml

import "strings"

// String renders this node and its subtree as XML text. Elements emit
// their tag, attributes in ascending key order, and either a self-closing
// ` />` when childless or their rendered children and a closing tag. The
// document root emits only its children. Text nodes emit their escaped
// content.
func (n *Node) String() string {
	var sb strings.Builder
	n.writeTo(&sb)
	return sb.String()
}

func (n *Node) writeTo(sb *strings.Builder) {
	if n.kind != ElementNode {
		if value, ok := n.NodeValue(); ok {
			sb.WriteString(escapeXML(value))
		}
		return
	}

	tagName, named := n.NodeName()
	if !named {
		// Document root: children only, no enclosing tag.
		for _, child := range n.children {
			child.writeTo(sb)
		}
		return
	}

	sb.WriteByte('<')
	sb.WriteString(tagName)

	for _, key := range n.AttributeKeys() {
		sb.WriteByte(' ')
		sb.WriteString(key)
		sb.WriteString(`="`)
		sb.WriteString(escapeXML(n.attributes[key]))
		sb.WriteByte('"')
	}

	if len(n.children) == 0 {
		sb.WriteString(" />")
		return
	}

	sb.WriteByte('>')
	for _, child := range n.children {
		child.writeTo(sb)
	}
	sb.WriteString("</")
	sb.WriteString(tagName)
	sb.WriteByte('>')
}

// escapeXML replaces the characters that cannot appear literally in text
// content or double-quoted attribute values with entity references.
func escapeXML(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '"':
			sb.WriteString("&quot;")
		case '\'':
			sb.WriteString("&apos;")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
