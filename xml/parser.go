package xml

import (
	stdxml "encoding/xml"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

// ParseOptions controls document parsing.
type ParseOptions struct {
	// IgnoreWhite drops text nodes consisting entirely of whitespace,
	// matching the legacy runtime's ignoreWhite flag.
	IgnoreWhite bool
}

// NewElementFromStart constructs an element node from a single parsed
// start-tag event. Each attribute pair is inserted into the node's
// attribute table, and if an attribute key equals "id", the pair
// (value, node's wrapper object) is recorded into idMap. The tag name and
// every attribute key and value must be valid UTF-8; anything else fails
// with a DecodeError and the partial node is discarded.
func NewElementFromStart(start stdxml.StartElement, idMap IDMap, factory NodeObjectFactory) (*Node, error) {
	tagName := rawName(start.Name)
	if !utf8.ValidString(tagName) {
		return nil, ErrDecode("tag name is not valid UTF-8")
	}

	node := NewElement(tagName)
	for _, attribute := range start.Attr {
		key := rawName(attribute.Name)
		if !utf8.ValidString(key) {
			return nil, ErrDecode("attribute key is not valid UTF-8")
		}
		if !utf8.ValidString(attribute.Value) {
			return nil, ErrDecode("attribute value is not valid UTF-8")
		}
		node.SetAttributeValue(key, attribute.Value)

		if key == "id" && idMap != nil && factory != nil {
			idMap.Define(attribute.Value, node.ScriptObjectFor(factory))
		}
	}
	return node, nil
}

// rawName reconstructs the name as written in the source. Tokens read with
// RawToken carry the undecoded prefix in Space.
func rawName(name stdxml.Name) string {
	if name.Space != "" {
		return name.Space + ":" + name.Local
	}
	return name.Local
}

// Parse reads an XML document and builds its tree under a fresh document
// root. Elements and text (including CDATA) become nodes; comments,
// directives, and processing instructions are skipped, since the legacy
// object model represents neither. Input in a declared non-UTF-8 charset
// is transcoded. Mismatched or unclosed tags fail with a DecodeError.
func Parse(r io.Reader, opts ParseOptions, idMap IDMap, factory NodeObjectFactory) (*Node, error) {
	decoder := stdxml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	root := NewDocumentRoot()
	open := []*Node{root}

	for {
		token, err := decoder.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ErrDecode(err.Error())
		}

		current := open[len(open)-1]
		switch t := token.(type) {
		case stdxml.StartElement:
			node, err := NewElementFromStart(t, idMap, factory)
			if err != nil {
				return nil, err
			}
			current.AppendChild(node)
			open = append(open, node)

		case stdxml.EndElement:
			name, _ := current.NodeName()
			if current == root || name != rawName(t.Name) {
				return nil, ErrDecode("mismatched end tag </" + rawName(t.Name) + ">")
			}
			open = open[:len(open)-1]

		case stdxml.CharData:
			text := string(t)
			if opts.IgnoreWhite && strings.TrimSpace(text) == "" {
				continue
			}
			current.AppendChild(NewText(text))
		}
	}

	if len(open) != 1 {
		name, _ := open[len(open)-1].NodeName()
		return nil, ErrDecode("unclosed tag <" + name + ">")
	}
	return root, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(src string, opts ParseOptions, idMap IDMap, factory NodeObjectFactory) (*Node, error) {
	return Parse(strings.NewReader(src), opts, idMap, factory)
}

// IsDecodeError reports whether err is a DecodeError.
func IsDecodeError(err error) bool {
	var treeErr *TreeError
	return errors.As(err, &treeErr) && treeErr.Name == "DecodeError"
}
