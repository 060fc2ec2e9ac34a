// Package render is the reference host renderer: it turns vnode trees
// into HTML markup, assigns host handles, and computes patch lists
// between successive trees.
//
// The patch computation is block-aware. Trees built through a RenderPass
// carry flat DynamicChildren lists on their block roots; Diff walks
// those lists instead of the full tree and patches each node strictly by
// its patch-flag hints. Trees without block information fall back to a
// positional walk.
package render
