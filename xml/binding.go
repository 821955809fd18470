package xml

// ScriptObject is the script-visible object bound to a node. The concrete
// type is owned by the binding layer; this package only stores and hands
// back the opaque value.
type ScriptObject any

// NodeObjectFactory constructs script objects for nodes that do not have
// one yet. It is implemented by the binding layer.
type NodeObjectFactory interface {
	// ObjectForNode builds the script object representing node. The
	// returned object must not be bound by the factory itself; the caller
	// binds it.
	ObjectForNode(node *Node) ScriptObject

	// ObjectForAttributes builds the script object representing node's
	// attribute table.
	ObjectForAttributes(node *Node) ScriptObject
}

// IDMap receives (id attribute value, wrapper object) pairs for elements
// constructed from parse events that carry an id attribute.
type IDMap interface {
	Define(id string, object ScriptObject)
}

// BoundScriptObject returns the script object already bound to this node,
// or nil if none has been bound yet.
func (n *Node) BoundScriptObject() ScriptObject {
	return n.scriptObject
}

// BindScriptObject introduces this node to its script object. The link is
// single-assignment: a second call panics, since changing an established
// node/object link is a caller bug, not a recoverable condition.
func (n *Node) BindScriptObject(object ScriptObject) {
	if n.scriptObject != nil {
		panic("xml: an attempt was made to change the already-established link between script object and XML node")
	}
	n.scriptObject = object
}

// ScriptObjectFor returns the script object for this node, constructing
// and binding one through factory if none exists yet. Idempotent from the
// caller's perspective.
func (n *Node) ScriptObjectFor(factory NodeObjectFactory) ScriptObject {
	if n.scriptObject == nil {
		n.BindScriptObject(factory.ObjectForNode(n))
	}
	return n.scriptObject
}

// AttributesObjectFor returns the script object for this node's attribute
// table, constructing one through factory on first access.
func (n *Node) AttributesObjectFor(factory NodeObjectFactory) ScriptObject {
	if n.attributesObject == nil {
		n.attributesObject = factory.ObjectForAttributes(n)
	}
	return n.attributesObject
}
