// Control-flow helpers for the element DSL.
package el

// If returns node when condition holds, a placeholder otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return Nothing()
}

// IfElse returns ifTrue or ifFalse depending on condition.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// Unless is the inverse of If.
func Unless(condition bool, node *VNode) *VNode {
	return If(!condition, node)
}

// When lazily builds the node only when condition holds. Use this when
// construction itself is unsafe or expensive on the false branch.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return Nothing()
}

// Maybe converts a nil node into a placeholder.
func Maybe(node *VNode) *VNode {
	if node == nil {
		return Nothing()
	}
	return node
}

// Case_ pairs a match value with its node for Switch.
func Case_[T comparable](value T, node *VNode) Case[T] {
	return Case[T]{value: value, node: node}
}

// Default provides the fallthrough node for Switch.
func Default[T comparable](node *VNode) Case[T] {
	return Case[T]{node: node, default_: true}
}

// Switch returns the node of the first case matching value, the default
// case if present, or a placeholder.
func Switch[T comparable](value T, cases ...Case[T]) *VNode {
	var fallback *VNode
	for _, c := range cases {
		if c.default_ {
			if fallback == nil {
				fallback = c.node
			}
			continue
		}
		if c.value == value {
			return c.node
		}
	}
	return Maybe(fallback)
}

// Range maps items to nodes.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	nodes := make([]*VNode, 0, len(items))
	for i, item := range items {
		nodes = append(nodes, fn(item, i))
	}
	return nodes
}

// Repeat builds n nodes by index.
func Repeat(n int, fn func(i int) *VNode) []*VNode {
	nodes := make([]*VNode, 0, n)
	for i := 0; i < n; i++ {
		nodes = append(nodes, fn(i))
	}
	return nodes
}
