package js

import (
	"github.com/dop251/goja"

	"github.com/AYColumbia/scriptxml/xml"
)

// attributesProxy is a live script view over a node's attribute table.
// Property reads, writes, and deletes go straight through to the table,
// and enumeration yields keys in ascending order.
type attributesProxy struct {
	vm   *goja.Runtime
	node *xml.Node
}

var _ goja.DynamicObject = (*attributesProxy)(nil)

func (p *attributesProxy) Get(key string) goja.Value {
	if value, ok := p.node.AttributeValue(key); ok {
		return p.vm.ToValue(value)
	}
	return goja.Undefined()
}

func (p *attributesProxy) Set(key string, value goja.Value) bool {
	p.node.SetAttributeValue(key, value.String())
	return true
}

func (p *attributesProxy) Has(key string) bool {
	_, ok := p.node.AttributeValue(key)
	return ok
}

func (p *attributesProxy) Delete(key string) bool {
	p.node.DeleteAttribute(key)
	return true
}

func (p *attributesProxy) Keys() []string {
	return p.node.AttributeKeys()
}

// ObjectForAttributes builds the script object representing a node's
// attribute table. It implements xml.NodeObjectFactory; the node caches
// the object, so this runs at most once per node.
func (b *Binder) ObjectForAttributes(n *xml.Node) xml.ScriptObject {
	return b.vm.NewDynamicObject(&attributesProxy{vm: b.vm, node: n})
}
