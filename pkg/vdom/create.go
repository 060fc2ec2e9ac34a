package vdom

import "fmt"

// Factory entry points. Package-level constructors serve hand-authored
// trees and fully normalize children; the RenderPass methods are shaped
// for compiled render code, which guarantees child shape and supplies
// patch-flag hints, and additionally registers nodes with the open block.

// trackedPropsCheck, when set, identifies prop maps that originate from a
// tracked/reactive source. Such maps are cloned before in-place class and
// style normalization so shared state is never corrupted. Installed by the
// reactivity collaborator, like the HMR hook.
var trackedPropsCheck func(Props) bool

// SetTrackedPropsCheck installs the tracked-props guard. Pass nil to clear.
func SetTrackedPropsCheck(fn func(Props) bool) {
	trackedPropsCheck = fn
}

// reactiveValue is the capability by which the excluded reactivity system
// surfaces proxied values: the descriptor unwraps to its raw target.
type reactiveValue interface {
	ReactiveRaw() any
}

// createVNode is the single construction path behind every factory entry.
// pass may be nil for untracked, hand-authored construction.
func createVNode(pass *RenderPass, typ any, props Props, children any, patchFlag PatchFlag, dynamicProps []string, isBlockRoot, fullNormalize bool) *VNode {
	if typ == nil {
		warnCode("W001", "type", "nil")
		typ = CommentMarker
	}

	// An existing vnode used as a type (dynamic <component :is>) means
	// clone-and-merge, not fresh construction.
	if orig, ok := typ.(*VNode); ok {
		return cloneIntoBlock(pass, orig, props, children, isBlockRoot)
	}

	// Unwrap class-style component wrappers and reactive proxies.
	if provider, ok := typ.(OptionsProvider); ok {
		typ = provider.ComponentOptions()
	}
	if rv, ok := typ.(reactiveValue); ok {
		warnCode("W008")
		typ = rv.ReactiveRaw()
	}

	if props != nil {
		if trackedPropsCheck != nil && trackedPropsCheck(props) {
			props = cloneProps(props)
		}
		normalizePropsInPlace(props)
	}

	kind, shape := resolveType(typ)
	if kind == KindComment && typ != CommentMarker {
		warnCode("W001", "type", fmt.Sprintf("%T", typ))
		typ = CommentMarker
	}

	n := &VNode{
		Kind:         kind,
		Type:         typ,
		Props:        props,
		Key:          normalizeKey(props),
		Ref:          normalizeRef(props),
		ShapeFlag:    shape,
		PatchFlag:    patchFlag,
		DynamicProps: dynamicProps,
	}
	if tag, ok := typ.(string); ok {
		n.Tag = tag
	}
	if isNaNKey(n.Key) {
		warnCode("W006")
	}

	if fullNormalize {
		NormalizeChildren(n, children)
	} else if children != nil {
		// Compiler fast path: shape is guaranteed by the call site.
		switch c := children.(type) {
		case string:
			n.Children = c
			n.ShapeFlag |= ShapeTextChildren
		case []*VNode:
			n.Children = c
			n.ShapeFlag |= ShapeArrayChildren
		default:
			n.Children = children
		}
	}

	if pass != nil {
		if pass.Observer != nil {
			pass.Observer.NodeCreated(n.Kind)
		}
		pass.track(n, isBlockRoot)
	}
	return n
}

// cloneIntoBlock implements the clone-and-merge branch of the factory: the
// incoming vnode is cloned with the extra props merged, FullProps is forced
// since the original patch-flag hint no longer applies, and the clone takes
// the original's slot in the open block rather than a second entry.
func cloneIntoBlock(pass *RenderPass, orig *VNode, extraProps Props, children any, isBlockRoot bool) *VNode {
	cloned := CloneVNodeWithRefMerge(orig, extraProps, true)
	if children != nil {
		NormalizeChildren(cloned, children)
	}
	if pass != nil {
		if pass.Observer != nil {
			pass.Observer.NodeCreated(cloned.Kind)
		}
		if pass.tracking > 0 && !isBlockRoot {
			// Reuse the original's slot so the same logical position is
			// not patched twice.
			if !pass.replaceTracked(orig, cloned) {
				pass.track(cloned, false)
			}
		}
	}
	return cloned
}

// resolveType probes the raw type descriptor exactly once, yielding the
// resolved kind and its base shape bits.
func resolveType(typ any) (VKind, ShapeFlag) {
	switch t := typ.(type) {
	case string:
		return KindElement, ShapeElement
	case *Marker:
		switch t {
		case TextMarker:
			return KindText, 0
		case CommentMarker:
			return KindComment, 0
		case StaticMarker:
			return KindStatic, 0
		case FragmentMarker:
			return KindFragment, 0
		}
	case *ComponentOptions:
		return KindComponent, ShapeStatefulComponent
	}
	switch typ.(type) {
	case suspenseComponent:
		return KindSuspense, ShapeSuspense
	case teleportComponent:
		return KindTeleport, ShapeTeleport
	case Component:
		return KindComponent, ShapeFunctionalComponent
	}
	return KindComment, 0
}

// normalizePropsInPlace canonicalizes the class and style entries.
func normalizePropsInPlace(props Props) {
	if klass, ok := props["class"]; ok {
		if _, isString := klass.(string); !isString {
			props["class"] = NormalizeClass(klass)
		}
	}
	if style, ok := props["style"]; ok {
		if normalized := NormalizeStyle(style); normalized != nil {
			props["style"] = normalized
		}
	}
}

// normalizeKey pulls the reconciliation key out of props. Absent keys stay
// nil so they never match an explicit key.
func normalizeKey(props Props) any {
	if props == nil {
		return nil
	}
	return props["key"]
}

// normalizeRef turns a ref prop into binding descriptors. Accepted shapes:
// *any pointer, func(any) setter, string naming a slot on the owner, or a
// prebuilt *RefBinding / []*RefBinding.
func normalizeRef(props Props) []*RefBinding {
	if props == nil {
		return nil
	}
	raw, ok := props["ref"]
	if !ok || raw == nil {
		return nil
	}
	switch r := raw.(type) {
	case *RefBinding:
		return []*RefBinding{r}
	case []*RefBinding:
		return r
	case string:
		return []*RefBinding{{SubKey: r}}
	default:
		return []*RefBinding{{Target: r}}
	}
}

func cloneProps(props Props) Props {
	out := make(Props, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}

// -----------------------------------------------------------------------------
// Hand-authored constructors (untracked, full child normalization)
// -----------------------------------------------------------------------------

// H is the generic hyperscript factory: tag string, marker, component
// definition, or an existing vnode to clone-and-merge.
func H(typ any, props Props, children ...any) *VNode {
	return createVNode(nil, typ, props, wrapChildren(children), 0, nil, false, true)
}

// Element creates a host element node.
func Element(tag string, props Props, children ...any) *VNode {
	return createVNode(nil, tag, props, wrapChildren(children), 0, nil, false, true)
}

// Text creates a text node.
func Text(content string) *VNode {
	return createVNode(nil, TextMarker, nil, content, 0, nil, false, true)
}

// Comment creates a comment node.
func Comment(text string) *VNode {
	return createVNode(nil, CommentMarker, nil, text, 0, nil, false, true)
}

// Static creates a hoisted static blob spanning count host nodes.
func Static(content string, count int) *VNode {
	n := createVNode(nil, StaticMarker, nil, content, PatchHoisted, nil, false, true)
	n.StaticCount = count
	return n
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	return createVNode(nil, FragmentMarker, nil, wrapChildren(children), 0, nil, false, true)
}

// SuspenseNode builds a suspense boundary. The core represents the
// content and fallback subtrees structurally; scheduling belongs to the
// suspense collaborator.
func SuspenseNode(props Props, content, fallback *VNode) *VNode {
	n := createVNode(nil, Suspense, props, nil, 0, nil, false, true)
	n.Content = content
	n.Fallback = fallback
	return n
}

// TeleportNode builds a teleport to the given host target selector.
func TeleportNode(target string, props Props, children ...any) *VNode {
	if props == nil {
		props = Props{}
	}
	props["to"] = target
	return createVNode(nil, Teleport, props, wrapChildren(children), 0, nil, false, true)
}

// wrapChildren collapses a variadic child list to the factory's children
// argument: nil for none, the sole element for one, the slice otherwise.
func wrapChildren(children []any) any {
	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	default:
		return children
	}
}

// -----------------------------------------------------------------------------
// Compiled-call-site constructors (tracked, patch-flag hinted)
// -----------------------------------------------------------------------------

// CreateVNode is the full-normalization tracked factory, used for
// components and any call site whose child shape is not statically known.
func (p *RenderPass) CreateVNode(typ any, props Props, children any, patchFlag PatchFlag, dynamicProps []string) *VNode {
	return createVNode(p, typ, props, children, patchFlag, dynamicProps, false, true)
}

// ElementVNode is the fast-path tracked factory for plain elements whose
// children shape the compiler already guarantees.
func (p *RenderPass) ElementVNode(tag string, props Props, children any, patchFlag PatchFlag, dynamicProps []string) *VNode {
	return createVNode(p, tag, props, children, patchFlag, dynamicProps, false, false)
}

// TextVNode creates a tracked text node with a patch-flag hint.
func (p *RenderPass) TextVNode(content string, patchFlag PatchFlag) *VNode {
	return createVNode(p, TextMarker, nil, content, patchFlag, nil, false, false)
}

// CommentVNode creates a tracked comment node.
func (p *RenderPass) CommentVNode(text string) *VNode {
	return createVNode(p, CommentMarker, nil, text, 0, nil, false, false)
}

// StaticVNode creates a hoisted static blob.
func (p *RenderPass) StaticVNode(content string, count int) *VNode {
	n := createVNode(p, StaticMarker, nil, content, PatchHoisted, nil, false, false)
	n.StaticCount = count
	return n
}

// Block closes the innermost open block around a full-normalization node.
// Pair with a preceding OpenBlock call.
func (p *RenderPass) Block(typ any, props Props, children any, patchFlag PatchFlag, dynamicProps []string) *VNode {
	n := createVNode(p, typ, props, children, patchFlag, dynamicProps, true, true)
	return p.sealBlock(n)
}

// ElementBlock is the fast-path variant of Block.
func (p *RenderPass) ElementBlock(tag string, props Props, children any, patchFlag PatchFlag, dynamicProps []string) *VNode {
	n := createVNode(p, tag, props, children, patchFlag, dynamicProps, true, false)
	return p.sealBlock(n)
}
