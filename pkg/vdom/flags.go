package vdom

import "strings"

// ShapeFlag classifies what kind of node this is and what shape its
// children take. Flags are OR-combined: an element with a child list is
// ShapeElement|ShapeArrayChildren.
type ShapeFlag uint16

const (
	ShapeElement             ShapeFlag = 1 << iota // Host element (<div>, <button>, ...)
	ShapeFunctionalComponent                       // Render-function component
	ShapeStatefulComponent                         // Options/stateful component
	ShapeTextChildren                              // Children is a string
	ShapeArrayChildren                             // Children is []*VNode
	ShapeSlotsChildren                             // Children is *Slots
	ShapeTeleport                                  // Teleport container
	ShapeSuspense                                  // Suspense boundary
	ShapeKeepAliveTarget                           // Should be kept alive by a KeepAlive parent
	ShapeKeptAlive                                 // Currently kept alive (skip real mount)

	// ShapeComponent matches any component kind.
	ShapeComponent = ShapeFunctionalComponent | ShapeStatefulComponent
)

// String returns a pipe-joined list of the set shape flags.
func (s ShapeFlag) String() string {
	var parts []string
	add := func(f ShapeFlag, name string) {
		if s&f != 0 {
			parts = append(parts, name)
		}
	}
	add(ShapeElement, "Element")
	add(ShapeFunctionalComponent, "FunctionalComponent")
	add(ShapeStatefulComponent, "StatefulComponent")
	add(ShapeTextChildren, "TextChildren")
	add(ShapeArrayChildren, "ArrayChildren")
	add(ShapeSlotsChildren, "SlotsChildren")
	add(ShapeTeleport, "Teleport")
	add(ShapeSuspense, "Suspense")
	add(ShapeKeepAliveTarget, "KeepAliveTarget")
	add(ShapeKeptAlive, "KeptAlive")
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}

// PatchFlag describes which aspects of a node may change between renders.
// Positive values are OR-combined bits; a set bit means that aspect
// participates in patching, an unset bit means the renderer may assume it
// is stable. Negative values are whole-node sentinels, never combined.
type PatchFlag int32

const (
	PatchText          PatchFlag = 1 << iota // Dynamic text content
	PatchClass                               // Dynamic class binding
	PatchStyle                               // Dynamic style binding
	PatchProps                               // Dynamic non-class/style props (see DynamicProps)
	PatchFullProps                           // Props with dynamic keys; full diff required
	PatchNeedHydration                       // Event listeners only; attach during hydration
	PatchStableFragment                      // Fragment whose child order never changes
	PatchKeyedFragment                       // Fragment with keyed children
	PatchUnkeyedFragment                     // Fragment with unkeyed children
	PatchNeedPatch                           // Non-props patching only (refs, hooks)
	PatchDynamicSlots                        // Component with dynamic slot content
	PatchDevRootFragment                     // Dev-only root comment fragment
)

const (
	// PatchHoisted marks a hoisted static node: skip diffing entirely.
	PatchHoisted PatchFlag = -1
	// PatchBail indicates the diff algorithm should bail out of
	// optimized mode for this subtree.
	PatchBail PatchFlag = -2
)

// IsDynamic reports whether the flag marks a node as requiring patch
// tracking. A node whose only positive bit is PatchNeedHydration does not
// count: hydration listeners are cached independent of the patch cycle.
func (p PatchFlag) IsDynamic() bool {
	return p > 0 && p != PatchNeedHydration
}

// String returns a readable form of the patch flag.
func (p PatchFlag) String() string {
	switch p {
	case PatchHoisted:
		return "Hoisted"
	case PatchBail:
		return "Bail"
	case 0:
		return "None"
	}
	var parts []string
	add := func(f PatchFlag, name string) {
		if p&f != 0 {
			parts = append(parts, name)
		}
	}
	add(PatchText, "Text")
	add(PatchClass, "Class")
	add(PatchStyle, "Style")
	add(PatchProps, "Props")
	add(PatchFullProps, "FullProps")
	add(PatchNeedHydration, "NeedHydration")
	add(PatchStableFragment, "StableFragment")
	add(PatchKeyedFragment, "KeyedFragment")
	add(PatchUnkeyedFragment, "UnkeyedFragment")
	add(PatchNeedPatch, "NeedPatch")
	add(PatchDynamicSlots, "DynamicSlots")
	add(PatchDevRootFragment, "DevRootFragment")
	return strings.Join(parts, "|")
}
