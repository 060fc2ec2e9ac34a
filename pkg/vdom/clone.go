package vdom

// CloneVNode produces a structurally independent copy of n, merging
// extraProps into the clone's props when supplied. Host handles are
// shallow-copied: a clone may describe the same mounted artifact, as with
// keep-alive reuse. Replacement ref semantics; see CloneVNodeWithRefMerge.
func CloneVNode(n *VNode, extraProps Props) *VNode {
	return CloneVNodeWithRefMerge(n, extraProps, false)
}

// CloneVNodeWithRefMerge clones n. When mergeRef is set, an incoming ref
// in extraProps concatenates onto the existing bindings; otherwise it
// replaces them.
func CloneVNodeWithRefMerge(n *VNode, extraProps Props, mergeRef bool) *VNode {
	mergedProps := n.Props
	if extraProps != nil {
		if n.Props == nil {
			mergedProps = MergeProps(extraProps)
		} else {
			mergedProps = MergeProps(n.Props, extraProps)
		}
	}

	cloned := &VNode{
		Kind:            n.Kind,
		Type:            n.Type,
		Tag:             n.Tag,
		Props:           mergedProps,
		Key:             normalizeKey(mergedProps),
		Ref:             cloneRef(n, extraProps, mergeRef),
		Children:        cloneChildren(n.Children),
		DynamicChildren: n.DynamicChildren,
		ShapeFlag:       n.ShapeFlag,
		PatchFlag:       clonePatchFlag(n, extraProps),
		DynamicProps:    n.DynamicProps,
		El:              n.El,
		Anchor:          n.Anchor,
		Target:          n.Target,
		TargetAnchor:    n.TargetAnchor,
		Component:       n.Component,
		AppContext:      n.AppContext,
		Suspense:        n.Suspense,
		StaticCount:     n.StaticCount,
	}
	// Suspense subtrees are deep-cloned; a boundary's content and fallback
	// must never be shared between two logical nodes.
	if n.Content != nil {
		cloned.Content = CloneVNode(n.Content, nil)
	}
	if n.Fallback != nil {
		cloned.Fallback = CloneVNode(n.Fallback, nil)
	}
	return cloned
}

// clonePatchFlag applies the merge-time patch-flag rules: with extra props
// on a non-fragment node, a hoisted sentinel is replaced by FullProps
// outright while a positive flag set gains the FullProps bit. Fragments
// keep their flag untouched; theirs only encodes children fast-paths and
// must not be forced to FullProps.
func clonePatchFlag(n *VNode, extraProps Props) PatchFlag {
	if extraProps == nil || n.Kind == KindFragment {
		return n.PatchFlag
	}
	if n.PatchFlag == PatchHoisted {
		return PatchFullProps
	}
	return n.PatchFlag | PatchFullProps
}

// cloneRef resolves the clone's ref bindings per the merge semantics.
func cloneRef(n *VNode, extraProps Props, mergeRef bool) []*RefBinding {
	if extraProps == nil {
		return n.Ref
	}
	incoming := normalizeRef(extraProps)
	if incoming == nil {
		return n.Ref
	}
	if mergeRef && n.Ref != nil {
		return append(append([]*RefBinding{}, n.Ref...), incoming...)
	}
	return incoming
}

// cloneChildren gives the clone an independent child container. Leaf values
// (strings) are immutable and shared; node lists are shallow-copied so the
// clone's arrangement can diverge.
func cloneChildren(children any) any {
	if list, ok := children.([]*VNode); ok {
		return append([]*VNode{}, list...)
	}
	return children
}
