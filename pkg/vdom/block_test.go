package vdom

import "testing"

func TestBlockCollectsDynamicChildren(t *testing.T) {
	p := NewRenderPass()

	p.OpenBlock(false)
	first := p.ElementVNode("span", nil, "a", PatchText, nil)
	p.ElementVNode("span", nil, "b", 0, nil)
	third := p.ElementVNode("span", nil, nil, PatchClass, []string{"class"})
	root := p.ElementBlock("div", nil, nil, 0, nil)

	if got := len(root.DynamicChildren); got != 2 {
		t.Fatalf("len(DynamicChildren) = %d, want 2", got)
	}
	if root.DynamicChildren[0] != first || root.DynamicChildren[1] != third {
		t.Error("DynamicChildren must hold exactly the dynamic nodes in construction order")
	}
}

func TestBlockTracksComponentsRegardlessOfFlags(t *testing.T) {
	p := NewRenderPass()
	comp := Func(func() *VNode { return Text("x") })

	p.OpenBlock(false)
	child := p.CreateVNode(comp, nil, nil, 0, nil)
	root := p.ElementBlock("div", nil, nil, 0, nil)

	if len(root.DynamicChildren) != 1 || root.DynamicChildren[0] != child {
		t.Error("components are always patch candidates and must be tracked")
	}
}

func TestBlockSkipsHydrationOnlyNodes(t *testing.T) {
	p := NewRenderPass()

	p.OpenBlock(false)
	p.ElementVNode("button", Props{"onclick": func() {}}, nil, PatchNeedHydration, nil)
	root := p.ElementBlock("div", nil, nil, 0, nil)

	if len(root.DynamicChildren) != 0 {
		t.Error("a node whose only patch bit is NeedHydration is not dynamic")
	}

	// The exclusion outranks the always-track-components rule.
	p2 := NewRenderPass()
	p2.OpenBlock(false)
	p2.CreateVNode(Func(func() *VNode { return Text("x") }), nil, nil, PatchNeedHydration, nil)
	root2 := p2.ElementBlock("div", nil, nil, 0, nil)

	if len(root2.DynamicChildren) != 0 {
		t.Error("a component whose only patch bit is NeedHydration is not dynamic")
	}
}

func TestLoopFragmentBlockUsesEmptySentinel(t *testing.T) {
	p := NewRenderPass()

	p.OpenBlock(true) // loop fragment: re-diffed wholesale
	p.ElementVNode("li", nil, "item", PatchText, nil)
	root := p.ElementBlock("ul", nil, nil, PatchUnkeyedFragment, nil)

	if root.DynamicChildren == nil {
		t.Fatal("loop-fragment block root must carry the empty sentinel, not nil")
	}
	if len(root.DynamicChildren) != 0 {
		t.Errorf("loop-fragment block must not sub-track, got %d entries", len(root.DynamicChildren))
	}
}

func TestNestedBlockRegistersInParent(t *testing.T) {
	p := NewRenderPass()

	p.OpenBlock(false)
	p.OpenBlock(false)
	inner := p.ElementBlock("section", nil, nil, 0, nil)
	outer := p.ElementBlock("div", nil, nil, 0, nil)

	if len(outer.DynamicChildren) != 1 || outer.DynamicChildren[0] != inner {
		t.Error("a closed block must register itself with the still-open parent block")
	}
}

func TestSetBlockTrackingNests(t *testing.T) {
	p := NewRenderPass()

	p.OpenBlock(false)
	p.SetBlockTracking(-1)
	p.SetBlockTracking(-1)
	p.ElementVNode("span", nil, "a", PatchText, nil)
	p.SetBlockTracking(1)
	// Still suspended: one resume is not enough after two suspensions.
	p.ElementVNode("span", nil, "b", PatchText, nil)
	p.SetBlockTracking(1)
	tracked := p.ElementVNode("span", nil, "c", PatchText, nil)
	root := p.ElementBlock("div", nil, nil, 0, nil)

	if len(root.DynamicChildren) != 1 || root.DynamicChildren[0] != tracked {
		t.Errorf("nested suspension must compose; got %d tracked nodes", len(root.DynamicChildren))
	}
}

func TestRenderPassIsolation(t *testing.T) {
	a := NewRenderPass()
	b := NewRenderPass()

	a.OpenBlock(false)
	b.OpenBlock(false)
	nodeA := a.ElementVNode("span", nil, "a", PatchText, nil)
	nodeB := b.ElementVNode("span", nil, "b", PatchText, nil)
	rootA := a.ElementBlock("div", nil, nil, 0, nil)
	rootB := b.ElementBlock("div", nil, nil, 0, nil)

	if len(rootA.DynamicChildren) != 1 || rootA.DynamicChildren[0] != nodeA {
		t.Error("pass A collected a foreign node")
	}
	if len(rootB.DynamicChildren) != 1 || rootB.DynamicChildren[0] != nodeB {
		t.Error("pass B collected a foreign node")
	}
}

func TestUntrackedConstructorsNeverRegister(t *testing.T) {
	p := NewRenderPass()

	p.OpenBlock(false)
	// Hand-authored constructors carry no pass and must not leak into the
	// open block, even while one is open.
	Element("span", nil, "x")
	root := p.ElementBlock("div", nil, nil, 0, nil)

	if len(root.DynamicChildren) != 0 {
		t.Error("package-level constructors must not register with any block")
	}
}

func TestBlockDepth(t *testing.T) {
	p := NewRenderPass()
	if p.Depth() != 0 {
		t.Fatal("fresh pass must have no open blocks")
	}
	p.OpenBlock(false)
	p.OpenBlock(true)
	if p.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", p.Depth())
	}
	p.ElementBlock("div", nil, nil, 0, nil)
	if p.Depth() != 1 {
		t.Errorf("Depth() after close = %d, want 1", p.Depth())
	}
}
