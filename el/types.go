package el

import "github.com/vuego-dev/vuego/pkg/vdom"

// Type aliases for the VDOM primitives used by the DSL.
type VNode = vdom.VNode
type VKind = vdom.VKind
type Props = vdom.Props
type Component = vdom.Component

// Attr is one element attribute. An Attr with an empty Key is skipped,
// which is how conditional helpers drop themselves.
type Attr struct {
	Key   string
	Value any
}

// Case pairs a match value with its node for Switch.
type Case[T comparable] struct {
	value   T
	node    *VNode
	default_ bool
}
