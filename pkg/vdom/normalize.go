package vdom

import "fmt"

// NormalizeVNode canonicalizes an arbitrary child value into a node:
// nil and booleans become placeholder comments, arrays become fragments
// over a copied slice, existing nodes are reused or cloned, everything
// else is coerced to text.
func NormalizeVNode(child any) *VNode {
	switch c := child.(type) {
	case nil:
		return Comment("")
	case bool:
		return Comment("")
	case *VNode:
		return cloneIfMounted(c)
	case []*VNode:
		// Never alias the caller's slice; it may be reused across renders.
		return createVNode(nil, FragmentMarker, nil, append([]*VNode{}, c...), 0, nil, false, true)
	case []any:
		return createVNode(nil, FragmentMarker, nil, append([]any{}, c...), 0, nil, false, true)
	case string:
		return Text(c)
	default:
		return Text(fmt.Sprint(c))
	}
}

// cloneIfMounted reuses a node that has never been mounted; a node with a
// host handle (or a hoisted one) may already sit elsewhere in the tree and
// must be cloned before reuse.
func cloneIfMounted(n *VNode) *VNode {
	if n.El == nil && n.PatchFlag != PatchHoisted {
		return n
	}
	return CloneVNode(n, nil)
}

// NormalizeChildren classifies a raw children value and writes the
// container plus the matching shape bit onto n.
func NormalizeChildren(n *VNode, children any) {
	switch c := children.(type) {
	case nil:
		n.Children = nil

	case []*VNode:
		n.Children = c
		n.ShapeFlag |= ShapeArrayChildren

	case []any:
		// Nil entries become comment placeholders so sibling positions
		// stay stable for positional diffing.
		list := make([]*VNode, 0, len(c))
		for _, item := range c {
			list = append(list, NormalizeVNode(item))
		}
		n.Children = list
		n.ShapeFlag |= ShapeArrayChildren

	case *Slots:
		normalizeSlots(n, c)

	case SlotFn:
		// Bare function children become the default slot.
		normalizeSlots(n, &Slots{M: map[string]SlotFn{"default": c}})

	case func(args ...any) []*VNode:
		normalizeSlots(n, &Slots{M: map[string]SlotFn{"default": c}})

	case *VNode:
		n.Children = []*VNode{cloneIfMounted(c)}
		n.ShapeFlag |= ShapeArrayChildren

	case string:
		normalizeTextChildren(n, c)

	default:
		normalizeTextChildren(n, fmt.Sprint(c))
	}
}

// normalizeSlots applies the slot-container rules. Slots are a component
// concept: on a plain element or teleport, a lone default slot unwraps to
// plain children. On components the container is kept, tagged with its
// owning render context, and the forwarded-slot stability rule decides
// whether dynamic-slots patching is required.
func normalizeSlots(n *VNode, slots *Slots) {
	if n.ShapeFlag&(ShapeElement|ShapeTeleport) != 0 {
		if def, ok := slots.M["default"]; ok && len(slots.M) == 1 {
			NormalizeChildren(n, def())
		}
		return
	}
	n.Children = slots
	n.ShapeFlag |= ShapeSlotsChildren
	if slots.Forward && !slots.Stable {
		// Forwarded from an unstable parent: content may change shape.
		n.PatchFlag |= PatchDynamicSlots
	}
}

// normalizeTextChildren stores text children; a teleport cannot host bare
// text and wraps it in a single-node list instead.
func normalizeTextChildren(n *VNode, text string) {
	if n.ShapeFlag&ShapeTeleport != 0 {
		n.Children = []*VNode{Text(text)}
		n.ShapeFlag |= ShapeArrayChildren
		return
	}
	n.Children = text
	n.ShapeFlag |= ShapeTextChildren
}
