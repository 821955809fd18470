package js

import (
	"github.com/dop251/goja"

	"github.com/AYColumbia/scriptxml/xml"
)

// ObjectForNode builds the script object representing a tree node. It
// implements xml.NodeObjectFactory; callers go through xml.Node's
// ScriptObjectFor (or Binder.WrapNode), which binds the object to the node
// so this runs at most once per node.
func (b *Binder) ObjectForNode(n *xml.Node) xml.ScriptObject {
	vm := b.vm
	obj := vm.NewObject()
	obj.SetPrototype(b.nodeProto)

	// Reference back to the Go node.
	obj.Set("_node", n)

	obj.Set("nodeType", int(n.Kind()))

	obj.DefineAccessorProperty("nodeName", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if name, ok := n.NodeName(); ok {
			return vm.ToValue(name)
		}
		return goja.Null()
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("nodeValue", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if value, ok := n.NodeValue(); ok {
			return vm.ToValue(value)
		}
		return goja.Null()
	}), vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			n.SetNodeValue(call.Arguments[0].String())
		}
		return goja.Undefined()
	}), goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("localName", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if local, ok := n.LocalName(); ok {
			return vm.ToValue(local)
		}
		return goja.Null()
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("prefix", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if prefix, ok := n.Prefix(); ok {
			return vm.ToValue(prefix)
		}
		return goja.Null()
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("parentNode", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return b.wrapOrNull(n.Parent())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("firstChild", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return b.wrapOrNull(n.FirstChild())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("lastChild", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return b.wrapOrNull(n.LastChild())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("previousSibling", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return b.wrapOrNull(n.PrevSibling())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("nextSibling", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return b.wrapOrNull(n.NextSibling())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("childNodes", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		children := n.Children()
		wrapped := make([]interface{}, len(children))
		for i, child := range children {
			wrapped[i] = b.WrapNode(child)
		}
		return vm.ToValue(wrapped)
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("attributes", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return n.AttributesObjectFor(b).(*goja.Object)
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.Set("appendChild", func(call goja.FunctionCall) goja.Value {
		if child := b.nodeOf(call.Argument(0)); child != nil {
			n.AppendChild(child)
		}
		return goja.Undefined()
	})

	obj.Set("insertBefore", func(call goja.FunctionCall) goja.Value {
		child := b.nodeOf(call.Argument(0))
		if child == nil {
			return goja.Undefined()
		}
		before := b.nodeOf(call.Argument(1))
		if before == nil {
			n.AppendChild(child)
			return goja.Undefined()
		}
		if position, ok := n.ChildPosition(before); ok {
			n.InsertChild(position, child)
		}
		return goja.Undefined()
	})

	obj.Set("removeNode", func(call goja.FunctionCall) goja.Value {
		n.RemoveNode()
		return goja.Undefined()
	})

	obj.Set("cloneNode", func(call goja.FunctionCall) goja.Value {
		deep := call.Argument(0).ToBoolean()
		return b.WrapNode(n.Duplicate(deep))
	})

	obj.Set("hasChildNodes", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(n.ChildrenLen() > 0)
	})

	obj.Set("getNamespaceForPrefix", func(call goja.FunctionCall) goja.Value {
		if uri, ok := n.LookupURIForNamespace(call.Argument(0).String()); ok {
			return vm.ToValue(uri)
		}
		return goja.Null()
	})

	obj.Set("getPrefixForNamespace", func(call goja.FunctionCall) goja.Value {
		if prefix, ok := n.LookupNamespaceForURI(call.Argument(0).String()); ok {
			return vm.ToValue(prefix)
		}
		return goja.Null()
	})

	obj.Set("toString", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(n.String())
	})

	return obj
}
