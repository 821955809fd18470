// Package js exposes the XML tree to scripts running on the goja engine.
// It implements the wrapper-binding bridge: every tree node is lazily
// bound to exactly one script object, and the same object is returned for
// the node on every subsequent access.
package js

import (
	"github.com/dop251/goja"

	"github.com/AYColumbia/scriptxml/xml"
)

// Binder creates and caches script objects for XML tree nodes. It
// implements xml.NodeObjectFactory (the wrapper factory collaborator) and
// xml.IDMap (the id-map collaborator).
type Binder struct {
	vm *goja.Runtime

	// Prototype object for wrapped nodes, used for instanceof checks.
	nodeProto *goja.Object

	// Map of id attribute values to wrapped elements, populated during
	// parsing.
	idMap *goja.Object
}

// NewBinder creates a binder over the given runtime.
func NewBinder(vm *goja.Runtime) *Binder {
	b := &Binder{
		vm:    vm,
		idMap: vm.NewObject(),
	}
	b.setupPrototype()
	return b
}

// setupPrototype creates the XMLNode prototype and constructor so that
// instanceof checks work from script code.
func (b *Binder) setupPrototype() {
	vm := b.vm

	b.nodeProto = vm.NewObject()
	constructor := vm.ToValue(func(call goja.ConstructorCall) *goja.Object {
		// Nodes are created through the document API, not the constructor.
		panic(vm.NewTypeError("Illegal constructor"))
	})
	constructorObj := constructor.ToObject(vm)
	constructorObj.Set("prototype", b.nodeProto)
	b.nodeProto.Set("constructor", constructorObj)
	vm.Set("XMLNode", constructorObj)

	// Node kind constants on the constructor, matching DOM numbering.
	constructorObj.Set("ELEMENT_NODE", int(xml.ElementNode))
	constructorObj.Set("TEXT_NODE", int(xml.TextNode))
}

// IDMap returns the script object mapping id attribute values to the
// wrapped elements that declared them.
func (b *Binder) IDMap() *goja.Object {
	return b.idMap
}

// Define records an (id, wrapper) pair in the id map. It implements
// xml.IDMap.
func (b *Binder) Define(id string, object xml.ScriptObject) {
	b.idMap.Set(id, object.(*goja.Object))
}

// WrapNode returns the script object for a node, creating and binding one
// on first access.
func (b *Binder) WrapNode(n *xml.Node) *goja.Object {
	if n == nil {
		return nil
	}
	return n.ScriptObjectFor(b).(*goja.Object)
}

// wrapOrNull wraps a node, mapping a nil node to JavaScript null.
func (b *Binder) wrapOrNull(n *xml.Node) goja.Value {
	if n == nil {
		return goja.Null()
	}
	return b.WrapNode(n)
}

// nodeOf extracts the tree node backing a wrapped script object, or nil if
// the value is not a wrapped node.
func (b *Binder) nodeOf(value goja.Value) *xml.Node {
	if value == nil || goja.IsUndefined(value) || goja.IsNull(value) {
		return nil
	}
	obj := value.ToObject(b.vm)
	backing := obj.Get("_node")
	if backing == nil {
		return nil
	}
	n, _ := backing.Export().(*xml.Node)
	return n
}

// Install defines a document-level API object under the given global name:
// createElement, createTextNode, parseXML, and the idMap.
func (b *Binder) Install(globalName string) {
	vm := b.vm
	api := vm.NewObject()

	api.Set("createElement", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			panic(vm.NewTypeError("createElement requires a tag name"))
		}
		return b.WrapNode(xml.NewElement(call.Arguments[0].String()))
	})

	api.Set("createTextNode", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			panic(vm.NewTypeError("createTextNode requires text content"))
		}
		return b.WrapNode(xml.NewText(call.Arguments[0].String()))
	})

	api.Set("parseXML", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			panic(vm.NewTypeError("parseXML requires a source string"))
		}
		opts := xml.ParseOptions{}
		if len(call.Arguments) > 1 {
			opts.IgnoreWhite = call.Arguments[1].ToBoolean()
		}
		root, err := xml.ParseString(call.Arguments[0].String(), opts, b, b)
		if err != nil {
			panic(vm.NewGoError(err))
		}
		return b.WrapNode(root)
	})

	api.Set("idMap", b.idMap)

	vm.Set(globalName, api)
}
