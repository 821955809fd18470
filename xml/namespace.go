package xml

import "strings"

const xmlnsPrefix = "xmlns:"

// LookupURIForNamespace finds the URI declared for the given namespace
// prefix, walking this node and then its ancestors outward. A node whose
// xmlns:<prefix> attribute is set supplies the URI; for the empty prefix a
// bare xmlns attribute does as well. The closest declaration wins. The
// second return value is false if no declaration is found.
func (n *Node) LookupURIForNamespace(namespace string) (string, bool) {
	attributeName := xmlnsPrefix + namespace

	for _, node := range n.Ancestors() {
		if namespace == "" {
			if uri, ok := node.AttributeValue("xmlns"); ok {
				return uri, true
			}
		}

		if uri, ok := node.AttributeValue(attributeName); ok {
			return uri, true
		}
	}

	return "", false
}

// LookupNamespaceForURI finds the namespace prefix declared for the given
// URI, walking this node and then its ancestors outward and scanning each
// node's attributes in ascending key order. An xmlns attribute whose value
// matches yields the empty prefix; an xmlns:<p> attribute whose value
// matches yields p. The first match wins. The second return value is
// false if no declaration is found.
func (n *Node) LookupNamespaceForURI(uri string) (string, bool) {
	for _, node := range n.Ancestors() {
		for _, key := range node.AttributeKeys() {
			if node.attributes[key] != uri {
				continue
			}
			if key == "xmlns" {
				return "", true
			}
			if strings.HasPrefix(key, xmlnsPrefix) {
				return key[len(xmlnsPrefix):], true
			}
		}
	}

	return "", false
}
