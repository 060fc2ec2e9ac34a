// Package vdom provides the virtual node model and block-tracking core of
// the Vuego runtime.
//
// A VNode describes one renderable unit: its resolved kind (element, text,
// comment, static blob, fragment, component, teleport, suspense), its
// props, key, ref bindings, and children container. Two independent
// bitmasks classify every node: ShapeFlag says what the node is, PatchFlag
// says which of its aspects may change between renders. The flags are the
// contract between compiled render code, which emits them as hints, and
// the renderer, which trusts them to skip stable work.
//
// # Construction
//
// Hand-authored trees use the package-level constructors:
//
//	vdom.Element("div", vdom.Props{"class": "card"},
//	    vdom.Element("h1", nil, "Title"),
//	    vdom.Text("Content"),
//	)
//
// Compiled render code constructs nodes through a RenderPass, which adds
// patch-flag hints and block registration:
//
//	p := vdom.NewRenderPass()
//	p.OpenBlock(false)
//	title := p.ElementVNode("h1", nil, msg, vdom.PatchText, nil)
//	root := p.ElementBlock("div", nil, []*vdom.VNode{title}, 0, nil)
//
// # Block tracking
//
// A compiled template splits into nested blocks at every structurally
// dynamic boundary. While a block is open, every dynamic node constructed
// through the pass is collected into a flat list that ends up on the block
// root's DynamicChildren, letting the renderer diff that list instead of
// the whole subtree. The collecting stack lives on the RenderPass, so
// concurrent server renders each hold isolated state.
package vdom
