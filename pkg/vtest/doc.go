// Package vtest provides testing helpers for vuego applications and
// vnode trees.
//
// The vtest package reduces boilerplate when testing components by
// providing a fluent app builder and render assertions.
//
// # Quick Start
//
//	func TestGreeting(t *testing.T) {
//	    node := vdom.Element("h1", nil, "Welcome")
//	    vtest.ExpectContains(t, node, "Welcome")
//	}
//
// # Fluent App Builder
//
// The app builder allows chaining multiple setup operations:
//
//	app := vtest.NewApp(root).
//	    WithProps(vdom.Props{"title": "Dashboard"}).
//	    WithComponent("icon", iconDef).
//	    WithProvide("theme", "dark").
//	    Build()
//
// # Mounting
//
// Mounted returns an app already mounted into a fresh container:
//
//	app, container := vtest.NewApp(root).Mounted(t)
//	if !strings.Contains(container.HTML, "Welcome") {
//	    t.Error("missing greeting")
//	}
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	vtest.ExpectContains(t, node, "Welcome Admin")
//	vtest.ExpectNotContains(t, node, "Login")
//	vtest.ExpectElement(t, node, "button")
//	vtest.ExpectAttribute(t, node, "class", "btn-primary")
//
// # Tree Assertions
//
// Assert on vnode structure directly, including block tracking:
//
//	vtest.ExpectKind(t, node, vdom.KindElement)
//	vtest.ExpectTracked(t, block, 2)
package vtest
