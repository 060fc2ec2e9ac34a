package vtest

import (
	"testing"

	"github.com/vuego-dev/vuego/pkg/vdom"
)

// ExpectKind asserts the node resolved to the given kind.
//
// Example:
//
//	vtest.ExpectKind(t, node, vdom.KindElement)
func ExpectKind(t *testing.T, node *vdom.VNode, kind vdom.VKind) {
	t.Helper()
	if node == nil {
		t.Fatalf("expected %v node, got nil", kind)
	}
	if node.Kind != kind {
		t.Errorf("node kind = %v, want %v", node.Kind, kind)
	}
}

// ExpectShape asserts the node's shape flag carries the given bits.
func ExpectShape(t *testing.T, node *vdom.VNode, bits vdom.ShapeFlag) {
	t.Helper()
	if node.ShapeFlag&bits != bits {
		t.Errorf("shape flag = %v, want bits %v set", node.ShapeFlag, bits)
	}
}

// ExpectTracked asserts a block root collected exactly n dynamic nodes.
//
// Example:
//
//	vtest.ExpectTracked(t, block, 2)
func ExpectTracked(t *testing.T, block *vdom.VNode, n int) {
	t.Helper()
	if block.DynamicChildren == nil {
		t.Fatalf("node is not a block root")
	}
	if len(block.DynamicChildren) != n {
		t.Errorf("dynamic children = %d, want %d", len(block.DynamicChildren), n)
	}
}

// FindByTag returns the first element with the given tag in a depth-first
// walk, or nil.
func FindByTag(node *vdom.VNode, tag string) *vdom.VNode {
	if node == nil {
		return nil
	}
	if node.Kind == vdom.KindElement && node.Tag == tag {
		return node
	}
	for _, child := range node.ArrayChildren() {
		if found := FindByTag(child, tag); found != nil {
			return found
		}
	}
	if found := FindByTag(node.Content, tag); found != nil {
		return found
	}
	return FindByTag(node.Fallback, tag)
}

// CountKind returns the number of nodes of the given kind in the tree.
func CountKind(node *vdom.VNode, kind vdom.VKind) int {
	if node == nil {
		return 0
	}
	n := 0
	if node.Kind == kind {
		n = 1
	}
	for _, child := range node.ArrayChildren() {
		n += CountKind(child, kind)
	}
	n += CountKind(node.Content, kind)
	n += CountKind(node.Fallback, kind)
	return n
}
