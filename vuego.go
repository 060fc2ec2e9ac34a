// Package vuego provides the public API for the Vuego runtime core: the
// virtual-node data model, block tracking, and the application instance
// that wires a root component into a host environment.
//
// This is the recommended import for most applications:
//
//	import "github.com/vuego-dev/vuego"
//
// Usage:
//
//	app := vuego.CreateApp(root, nil, vuego.WithRenderer(render.NewRenderer(render.Config{})))
//	app.Provide("theme", "dark")
//	handle := app.Mount(container)
//	defer app.Unmount()
//
// The actual host mutation lives behind the Renderer interface; this core
// only constructs node trees and tracks their dynamic parts.
package vuego

import "github.com/vuego-dev/vuego/pkg/vdom"

// =============================================================================
// Node model (re-export from pkg/vdom)
// =============================================================================

// VNode is the virtual node record.
type VNode = vdom.VNode

// Props holds attributes, event handlers, and special bindings.
type Props = vdom.Props

// Component is anything that can render to a VNode.
type Component = vdom.Component

// ComponentOptions is the options-object component definition.
type ComponentOptions = vdom.ComponentOptions

// RenderPass owns block-tracking state for one render.
type RenderPass = vdom.RenderPass

// Func creates a functional component from a render function.
var Func = vdom.Func

// NewRenderPass returns a pass with tracking enabled.
var NewRenderPass = vdom.NewRenderPass

// =============================================================================
// Hand-authored constructors (re-export from pkg/vdom)
// =============================================================================

// H is the generic hyperscript factory.
var H = vdom.H

// Element creates a host element node.
var Element = vdom.Element

// Text creates a text node.
var Text = vdom.Text

// Comment creates a comment node.
var Comment = vdom.Comment

// Fragment groups children without a wrapper element.
var Fragment = vdom.Fragment

// Static creates a hoisted static blob.
var Static = vdom.Static

// MergeProps folds prop maps with class/style/handler merge semantics.
var MergeProps = vdom.MergeProps

// CloneVNode produces a structurally independent copy of a node.
var CloneVNode = vdom.CloneVNode

// NormalizeVNode canonicalizes an arbitrary child value into a node.
var NormalizeVNode = vdom.NormalizeVNode
