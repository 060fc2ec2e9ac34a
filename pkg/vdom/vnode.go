package vdom

import (
	"fmt"
	"math"

	"github.com/vuego-dev/vuego/internal/errors"
	"github.com/vuego-dev/vuego/pkg/diag"
)

// VKind is the resolved node type discriminator. The raw type descriptor
// passed to the factory is probed exactly once, at construction; everything
// downstream switches on Kind.
type VKind uint8

const (
	KindElement   VKind = iota // Host element
	KindText                   // Plain text node
	KindComment                // Comment node (also the invalid-type fallback)
	KindStatic                 // Hoisted static markup blob
	KindFragment               // Grouping without wrapper
	KindComponent              // Functional or stateful component
	KindTeleport               // Teleport to another host target
	KindSuspense               // Suspense boundary (structural only)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	case KindStatic:
		return "Static"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindTeleport:
		return "Teleport"
	case KindSuspense:
		return "Suspense"
	default:
		return "Unknown"
	}
}

// Marker is a sentinel type descriptor for non-element nodes. The factory
// recognizes the package-level marker values by identity.
type Marker struct{ name string }

func (m *Marker) String() string { return m.name }

// Type markers accepted by the factory in place of a tag or component.
var (
	TextMarker     = &Marker{"v-txt"}
	CommentMarker  = &Marker{"v-cmt"}
	StaticMarker   = &Marker{"v-stc"}
	FragmentMarker = &Marker{"v-fgt"}
)

// Props holds attributes, event handlers, and special bindings (key, ref).
type Props map[string]any

// VNode is the virtual node record. Kind and Type are fixed at
// construction; host handles and Component are written later by the
// renderer while it owns the node (construction -> block registration ->
// mount -> unmount).
type VNode struct {
	Kind VKind // Resolved node type
	Type any   // Original type descriptor (tag, marker, component)
	Tag  string // Element tag name when Kind == KindElement

	Props        Props
	Key          any           // Reconciliation key; nil when absent
	Ref          []*RefBinding // Where to publish the host handle
	Children     any           // nil | string | []*VNode | *Slots (tagged by shape bits)
	DynamicChildren []*VNode   // Collected by block tracking; nil unless a block root

	ShapeFlag    ShapeFlag
	PatchFlag    PatchFlag
	DynamicProps []string // Prop names covered by PatchProps

	// Host artifacts, nil until mounted.
	El           any
	Anchor       any
	Target       any // Teleport target
	TargetAnchor any

	// Component is the live instance once mounted as a component.
	Component *ComponentInstance

	// AppContext is set only on the root node of a mounted tree and
	// shared by reference with every render below it.
	AppContext any

	// Suspense-only fields.
	Suspense any
	Content  *VNode
	Fallback *VNode

	// StaticCount is the number of host nodes a KindStatic blob expands to.
	StaticCount int
}

// RefBinding describes one target for publishing the resolved host handle.
type RefBinding struct {
	Owner  *ComponentInstance // Instance whose render produced the binding
	Target any                // *any, func(any), or a named slot on Owner
	SubKey string             // Named ref: publish under Owner refs map key
	InFor  bool               // Inside v-for: collect into a slice
}

// Slots is the slot-map children container for component nodes.
type Slots struct {
	M       map[string]SlotFn
	Ctx     *ComponentInstance // Owning render context
	Stable  bool               // Compiler-guaranteed stable slot content
	Forward bool               // Slots forwarded from the parent
}

// SlotFn produces slot content on demand.
type SlotFn func(args ...any) []*VNode

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function into a functional component.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode { return f.render() }

// Func creates a functional component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}

// ComponentOptions is the options-object component definition. The core
// only carries it; interpreting options is the mounting runtime's job.
type ComponentOptions struct {
	Name       string
	Setup      func() Component
	Render     func() *VNode
	Components map[string]any
	Mixins     []*ComponentOptions
	Exposed    []string // Restricted public surface; empty means full instance
}

// OptionsProvider is the class-style component wrapper contract: a value
// that exposes an options object. The factory unwraps it at construction.
type OptionsProvider interface {
	ComponentOptions() *ComponentOptions
}

// teleportComponent and suspenseComponent are capability interfaces: any
// type descriptor implementing one is resolved to the matching kind.
type teleportComponent interface{ IsTeleport() }
type suspenseComponent interface{ IsSuspense() }

// TeleportImpl is the built-in teleport type descriptor.
type TeleportImpl struct{}

// IsTeleport marks TeleportImpl as the teleport capability.
func (TeleportImpl) IsTeleport() {}

// SuspenseImpl is the built-in suspense type descriptor.
type SuspenseImpl struct{}

// IsSuspense marks SuspenseImpl as the suspense capability.
func (SuspenseImpl) IsSuspense() {}

// Teleport and Suspense are the shared built-in descriptors.
var (
	Teleport = TeleportImpl{}
	Suspense = SuspenseImpl{}
)

// hmrDirty, when set, forces IsSameType to report false for nodes whose
// component definition has been hot-replaced, producing a full remount.
var hmrDirty func(typ any) bool

// SetHMRDirtyCheck installs the hot-reload override used by IsSameType.
// Pass nil to clear it.
func SetHMRDirtyCheck(fn func(typ any) bool) {
	hmrDirty = fn
}

// IsSameType reports whether two nodes represent the same logical node for
// diffing purposes: identical type descriptor and equal keys. A NaN key
// never equals itself, so a NaN-keyed node is always "different".
func IsSameType(a, b *VNode) bool {
	if hmrDirty != nil && b.Kind == KindComponent && hmrDirty(b.Type) {
		// Hot-replaced component: drop kept-alive state and remount.
		a.ShapeFlag &^= ShapeKeepAliveTarget
		b.ShapeFlag &^= ShapeKeptAlive
		return false
	}
	return a.Type == b.Type && keysEqual(a.Key, b.Key)
}

func keysEqual(a, b any) bool {
	if isNaNKey(a) || isNaNKey(b) {
		return false
	}
	return a == b
}

func isNaNKey(k any) bool {
	switch f := k.(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	}
	return false
}

// IsVNode reports whether v is a *VNode.
func IsVNode(v any) bool {
	_, ok := v.(*VNode)
	return ok
}

// instanceUID is bumped per component instance; see NewComponentInstance.
var instanceUID uint64

// ComponentInstance is the live state behind a mounted component node.
// The core only needs identity, the app context back-reference, and the
// public-handle selection; interpreting component options is out of scope.
type ComponentInstance struct {
	UID        uint64
	Type       any
	VNode      *VNode
	AppContext any
	Exposed    map[string]any
	IsMounted  bool
}

// NewComponentInstance allocates an instance for the given vnode.
func NewComponentInstance(vnode *VNode, appContext any) *ComponentInstance {
	instanceUID++
	return &ComponentInstance{
		UID:        instanceUID,
		Type:       vnode.Type,
		VNode:      vnode,
		AppContext: appContext,
	}
}

// PublicHandle returns the instance surface handed back to callers of
// mount: the restricted exposed map when the component declared one, else
// the full instance.
func (c *ComponentInstance) PublicHandle() any {
	if c.Exposed != nil {
		return c.Exposed
	}
	return c
}

// TextChildren returns the children as text; empty when not text-shaped.
func (n *VNode) TextChildren() string {
	if s, ok := n.Children.(string); ok {
		return s
	}
	return ""
}

// ArrayChildren returns the children as a node list; nil when not
// array-shaped.
func (n *VNode) ArrayChildren() []*VNode {
	if c, ok := n.Children.([]*VNode); ok {
		return c
	}
	return nil
}

// SlotChildren returns the children as a slot map; nil when not
// slots-shaped.
func (n *VNode) SlotChildren() *Slots {
	if s, ok := n.Children.(*Slots); ok {
		return s
	}
	return nil
}

// warnCode routes a registered diagnostic through the package warn channel,
// with optional key/value pairs appended to the message. Diagnostics never
// alter control flow.
func warnCode(code string, kv ...string) {
	msg := errors.New(code).Error()
	for i := 0; i+1 < len(kv); i += 2 {
		msg += fmt.Sprintf(" (%s=%s)", kv[i], kv[i+1])
	}
	diag.Warn(msg)
}
