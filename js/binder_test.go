package js

import (
	"testing"

	"github.com/dop251/goja"

	"github.com/AYColumbia/scriptxml/xml"
)

func newTestBinder(t *testing.T) (*goja.Runtime, *Binder) {
	t.Helper()
	vm := goja.New()
	b := NewBinder(vm)
	b.Install("document")
	return vm, b
}

func runScript(t *testing.T, vm *goja.Runtime, src string) goja.Value {
	t.Helper()
	value, err := vm.RunString(src)
	if err != nil {
		t.Fatalf("Script failed: %v", err)
	}
	return value
}

func TestScriptBuildsAndSerializesTree(t *testing.T) {
	vm, _ := newTestBinder(t)

	got := runScript(t, vm, `
		var a = document.createElement("a");
		a.attributes.x = "1";
		a.appendChild(document.createTextNode("hi"));
		a.toString();
	`)
	if got.String() != `<a x="1">hi</a>` {
		t.Errorf(`Expected <a x="1">hi</a>, got %s`, got.String())
	}
}

func TestWrapperIdentityIsStable(t *testing.T) {
	vm, _ := newTestBinder(t)

	got := runScript(t, vm, `
		var a = document.createElement("a");
		var b = document.createElement("b");
		a.appendChild(b);
		a.firstChild === b && a.firstChild === a.firstChild;
	`)
	if !got.ToBoolean() {
		t.Error("The same node must wrap to the same script object every time")
	}
}

func TestWrapperIdentitySharedWithGoSide(t *testing.T) {
	vm, b := newTestBinder(t)

	n := xml.NewElement("a")
	wrapped := b.WrapNode(n)
	vm.Set("fromGo", wrapped)

	got := runScript(t, vm, `fromGo instanceof XMLNode && fromGo.nodeName === "a";`)
	if !got.ToBoolean() {
		t.Error("Wrapped nodes should be XMLNode instances visible to scripts")
	}
	if b.WrapNode(n) != wrapped {
		t.Error("WrapNode must return the bound object on repeated calls")
	}
}

func TestNodeKindConstants(t *testing.T) {
	vm, _ := newTestBinder(t)

	got := runScript(t, vm, `
		var el = document.createElement("a");
		var text = document.createTextNode("t");
		XMLNode.ELEMENT_NODE === 1 && XMLNode.TEXT_NODE === 3 &&
			el.nodeType === 1 && text.nodeType === 3;
	`)
	if !got.ToBoolean() {
		t.Error("Node kind constants should match DOM numbering")
	}
}

func TestScriptNavigation(t *testing.T) {
	vm, _ := newTestBinder(t)

	got := runScript(t, vm, `
		var p = document.createElement("p");
		var a = document.createElement("a");
		var b = document.createElement("b");
		var c = document.createElement("c");
		p.appendChild(a);
		p.appendChild(b);
		p.appendChild(c);
		b.previousSibling === a && b.nextSibling === c &&
			b.parentNode === p && p.lastChild === c &&
			p.childNodes.length === 3 && p.childNodes[1] === b;
	`)
	if !got.ToBoolean() {
		t.Error("Navigation accessors should mirror the tree structure")
	}
}

func TestScriptInsertBefore(t *testing.T) {
	vm, _ := newTestBinder(t)

	got := runScript(t, vm, `
		var p = document.createElement("p");
		var a = document.createElement("a");
		var c = document.createElement("c");
		p.appendChild(a);
		p.appendChild(c);
		p.insertBefore(document.createElement("b"), c);
		p.insertBefore(document.createElement("tail"), null);
		p.toString();
	`)
	if got.String() != "<p><a /><b /><c /><tail /></p>" {
		t.Errorf("Unexpected tree after insertBefore: %s", got.String())
	}
}

func TestScriptRemoveNode(t *testing.T) {
	vm, _ := newTestBinder(t)

	got := runScript(t, vm, `
		var p = document.createElement("p");
		var a = document.createElement("a");
		p.appendChild(a);
		a.removeNode();
		p.hasChildNodes() === false && a.parentNode === null;
	`)
	if !got.ToBoolean() {
		t.Error("removeNode should detach the node from its parent")
	}
}

func TestAttributesProxy(t *testing.T) {
	vm, _ := newTestBinder(t)

	got := runScript(t, vm, `
		var a = document.createElement("a");
		a.attributes.zeta = "1";
		a.attributes.alpha = "2";
		var keys = Object.keys(a.attributes).join(",");
		delete a.attributes.zeta;
		keys + "|" + (a.attributes.zeta === undefined) + "|" + a.attributes.alpha;
	`)
	if got.String() != "alpha,zeta|true|2" {
		t.Errorf("Unexpected attributes proxy behavior: %s", got.String())
	}
}

func TestAttributesProxyIsLive(t *testing.T) {
	vm, b := newTestBinder(t)

	n := xml.NewElement("a")
	vm.Set("node", b.WrapNode(n))

	runScript(t, vm, `node.attributes.x = "1";`)
	if value, _ := n.AttributeValue("x"); value != "1" {
		t.Errorf("Script attribute writes should reach the Go table, got %q", value)
	}

	n.SetAttributeValue("y", "2")
	got := runScript(t, vm, `node.attributes.y;`)
	if got.String() != "2" {
		t.Errorf("Go attribute writes should be visible to scripts, got %s", got.String())
	}
}

func TestScriptCloneNodeIsIndependent(t *testing.T) {
	vm, _ := newTestBinder(t)

	got := runScript(t, vm, `
		var a = document.createElement("a");
		a.attributes.k = "v";
		a.appendChild(document.createTextNode("hi"));
		var d = a.cloneNode(true);
		d.attributes.x = "1";
		(d.toString() === '<a k="v" x="1">hi</a>') &&
			(a.toString() === '<a k="v">hi</a>') && d !== a;
	`)
	if !got.ToBoolean() {
		t.Error("cloneNode(true) should produce an independent copy")
	}
}

func TestScriptNamespaceLookups(t *testing.T) {
	vm, _ := newTestBinder(t)

	got := runScript(t, vm, `
		var root = document.createElement("root");
		root.attributes["xmlns:ns"] = "http://example.com";
		var leaf = document.createElement("leaf");
		root.appendChild(leaf);
		leaf.getNamespaceForPrefix("ns") + "|" +
			leaf.getPrefixForNamespace("http://example.com") + "|" +
			leaf.getNamespaceForPrefix("none");
	`)
	if got.String() != "http://example.com|ns|null" {
		t.Errorf("Unexpected namespace lookup results: %s", got.String())
	}
}

func TestParseXMLAndIDMap(t *testing.T) {
	vm, _ := newTestBinder(t)

	got := runScript(t, vm, `
		var root = document.parseXML('<a id="outer">  <b id="inner" /></a>', true);
		var outer = root.firstChild;
		(root.toString() === '<a id="outer"><b id="inner" /></a>') &&
			document.idMap.outer === outer &&
			document.idMap.inner === outer.firstChild;
	`)
	if !got.ToBoolean() {
		t.Error("parseXML should build the tree and populate the id map")
	}
}

func TestParseXMLThrowsOnMalformedInput(t *testing.T) {
	vm, _ := newTestBinder(t)

	got := runScript(t, vm, `
		var threw = false;
		try {
			document.parseXML("<a><b></a>");
		} catch (e) {
			threw = true;
		}
		threw;
	`)
	if !got.ToBoolean() {
		t.Error("parseXML should throw on mismatched tags")
	}
}

func TestScriptNodeValueAndNames(t *testing.T) {
	vm, _ := newTestBinder(t)

	got := runScript(t, vm, `
		var el = document.createElement("ns:tag");
		var text = document.createTextNode("hello");
		text.nodeValue = "changed";
		el.nodeName + "|" + el.localName + "|" + el.prefix + "|" +
			el.nodeValue + "|" + text.nodeName + "|" + text.nodeValue;
	`)
	if got.String() != "ns:tag|tag|ns|null|null|changed" {
		t.Errorf("Unexpected name/value results: %s", got.String())
	}
}
