// Package el provides the element DSL for vuego.
//
// It offers typed HTML element constructors, attribute helpers, event
// helpers, and control-flow utilities over pkg/vdom, so hand-written
// render functions read like markup:
//
//	func view(items []string) *el.VNode {
//	    return el.Div(el.ID("list"),
//	        el.H1("Items"),
//	        el.Ul(
//	            el.Range(items, func(item string, i int) *el.VNode {
//	                return el.Li(el.Key(i), item)
//	            }),
//	        ),
//	    )
//	}
//
// Constructors accept a mix of attributes, child nodes, strings, and
// slices in any order. Repeated Class attributes concatenate; repeated
// event handlers accumulate, following the property merge rules of
// pkg/vdom.
package el
