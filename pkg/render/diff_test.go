package render

import (
	"testing"

	"github.com/vuego-dev/vuego/pkg/vdom"
)

// buildCard compiles the same shape twice with different dynamic values:
// a block root whose first and third children are flagged dynamic and
// whose divider is static.
func buildCard(title, badgeClass string) *vdom.VNode {
	pass := vdom.NewRenderPass()
	pass.OpenBlock(false)
	kids := []*vdom.VNode{
		pass.ElementVNode("span", nil, title, vdom.PatchText, nil),
		pass.ElementVNode("hr", nil, nil, 0, nil),
		pass.ElementVNode("em", vdom.Props{"class": badgeClass}, "!", vdom.PatchClass, nil),
	}
	return pass.ElementBlock("div", nil, kids, 0, nil)
}

func mount(t *testing.T, n *vdom.VNode) {
	t.Helper()
	r := NewRenderer(Config{})
	if _, err := r.RenderToString(n); err != nil {
		t.Fatalf("mount render: %v", err)
	}
}

func opsOf(patches []Patch) []PatchOp {
	ops := make([]PatchOp, len(patches))
	for i, p := range patches {
		ops[i] = p.Op
	}
	return ops
}

func TestDiffBlockPatchesOnlyTrackedNodes(t *testing.T) {
	prev := buildCard("old", "ok")
	next := buildCard("new", "warn")
	mount(t, prev)

	patches := Diff(prev, next)

	if len(patches) != 2 {
		t.Fatalf("patches = %v, want exactly text+class", opsOf(patches))
	}
	if patches[0].Op != OpSetText || patches[0].Value != "new" {
		t.Errorf("first patch = %+v, want SetText new", patches[0])
	}
	if patches[1].Op != OpSetClass || patches[1].Value != "warn" {
		t.Errorf("second patch = %+v, want SetClass warn", patches[1])
	}
	// Targets come from the mounted tree.
	if patches[0].Target != prev.DynamicChildren[0].El {
		t.Errorf("text patch target = %v, want mounted handle", patches[0].Target)
	}
}

func TestDiffBlockStableAspectsUntouched(t *testing.T) {
	prev := buildCard("same", "same")
	next := buildCard("same", "same")
	mount(t, prev)

	if patches := Diff(prev, next); len(patches) != 0 {
		t.Errorf("identical trees produced patches: %v", opsOf(patches))
	}
}

func TestDiffAdoptsHandles(t *testing.T) {
	prev := buildCard("a", "x")
	next := buildCard("b", "y")
	mount(t, prev)

	Diff(prev, next)

	if next.El != prev.El {
		t.Errorf("root handle not adopted: %v vs %v", next.El, prev.El)
	}
	for i := range next.DynamicChildren {
		if next.DynamicChildren[i].El != prev.DynamicChildren[i].El {
			t.Errorf("dynamic child %d handle not adopted", i)
		}
	}
}

func TestDiffReplaceOnTypeChange(t *testing.T) {
	prev := vdom.Element("div", nil, "x")
	next := vdom.Element("section", nil, "x")
	mount(t, prev)

	patches := Diff(prev, next)
	if len(patches) != 1 || patches[0].Op != OpReplace {
		t.Fatalf("patches = %v, want single Replace", opsOf(patches))
	}
	if patches[0].Node != next {
		t.Errorf("replacement node is not the new tree")
	}
}

func TestDiffKeyChangeReplaces(t *testing.T) {
	prev := vdom.Element("li", vdom.Props{"key": 1}, "x")
	next := vdom.Element("li", vdom.Props{"key": 2}, "x")
	mount(t, prev)

	patches := Diff(prev, next)
	if len(patches) != 1 || patches[0].Op != OpReplace {
		t.Errorf("patches = %v, want single Replace", opsOf(patches))
	}
}

func TestDiffHoistedSkipped(t *testing.T) {
	prev := vdom.Static("<b>x</b>", 1)
	next := vdom.Static("<b>changed</b>", 1)
	prev.El = "v1"

	if patches := Diff(prev, next); len(patches) != 0 {
		t.Errorf("hoisted node produced patches: %v", opsOf(patches))
	}
	if next.El != "v1" {
		t.Errorf("hoisted node should still adopt the handle")
	}
}

func TestDiffStylePatch(t *testing.T) {
	build := func(color string) *vdom.VNode {
		pass := vdom.NewRenderPass()
		pass.OpenBlock(false)
		return pass.ElementBlock("div", vdom.Props{
			"style": map[string]string{"color": color},
		}, nil, vdom.PatchStyle, nil)
	}
	prev := build("red")
	next := build("blue")
	mount(t, prev)

	patches := Diff(prev, next)
	if len(patches) != 1 || patches[0].Op != OpSetStyle {
		t.Fatalf("patches = %v, want single SetStyle", opsOf(patches))
	}
	if patches[0].Value != "color: blue" {
		t.Errorf("style value = %q", patches[0].Value)
	}
}

func TestDiffDynamicPropsPatch(t *testing.T) {
	build := func(id, title string) *vdom.VNode {
		pass := vdom.NewRenderPass()
		pass.OpenBlock(false)
		return pass.ElementBlock("div", vdom.Props{"id": id, "title": title, "lang": "en"},
			nil, vdom.PatchProps, []string{"id"})
	}
	prev := build("a", "t1")
	next := build("b", "t2")
	mount(t, prev)

	patches := Diff(prev, next)
	// Only the declared dynamic key is compared; title changes silently.
	if len(patches) != 1 || patches[0].Op != OpSetProp || patches[0].Key != "id" || patches[0].Value != "b" {
		t.Errorf("patches = %v, want SetProp id=b", patches)
	}
}

func TestDiffFullPropsPatch(t *testing.T) {
	build := func(props vdom.Props) *vdom.VNode {
		pass := vdom.NewRenderPass()
		pass.OpenBlock(false)
		return pass.ElementBlock("div", props, nil, vdom.PatchFullProps, nil)
	}
	prev := build(vdom.Props{"id": "a", "hidden": "yes", "onClick": func() {}})
	next := build(vdom.Props{"id": "b", "class": "hot", "onClick": func() {}})
	mount(t, prev)

	patches := Diff(prev, next)

	var gotRemove, gotSet, gotClass bool
	for _, p := range patches {
		switch {
		case p.Op == OpRemoveProp && p.Key == "hidden":
			gotRemove = true
		case p.Op == OpSetProp && p.Key == "id" && p.Value == "b":
			gotSet = true
		case p.Op == OpSetClass && p.Value == "hot":
			gotClass = true
		case p.Key == "onClick":
			t.Errorf("event key diffed as attribute: %+v", p)
		}
	}
	if !gotRemove || !gotSet || !gotClass {
		t.Errorf("missing expected patches: %v", patches)
	}
}

func TestDiffFallbackWalk(t *testing.T) {
	// Hand-built trees without block information take the positional walk.
	prev := vdom.Element("ul", nil,
		vdom.Element("li", nil, "one"),
		vdom.Element("li", nil, "two"),
	)
	next := vdom.Element("ul", nil,
		vdom.Element("li", nil, "one"),
		vdom.Element("li", nil, "2"),
	)
	mount(t, prev)

	patches := Diff(prev, next)
	if len(patches) != 1 || patches[0].Op != OpSetText || patches[0].Value != "2" {
		t.Errorf("patches = %v, want single SetText 2", patches)
	}
}

func TestDiffFallbackAppends(t *testing.T) {
	prev := vdom.Element("ul", nil, vdom.Element("li", nil, "one"))
	next := vdom.Element("ul", nil,
		vdom.Element("li", nil, "one"),
		vdom.Element("li", nil, "two"),
	)
	mount(t, prev)

	patches := Diff(prev, next)
	if len(patches) != 1 || patches[0].Op != OpReplace {
		t.Fatalf("patches = %v, want single Replace for the appended child", opsOf(patches))
	}
	if patches[0].Node == nil || patches[0].Node.TextChildren() != "two" {
		t.Errorf("appended node = %+v", patches[0].Node)
	}
}

func TestDiffNestedBlocks(t *testing.T) {
	build := func(inner string) *vdom.VNode {
		pass := vdom.NewRenderPass()
		pass.OpenBlock(false)
		pass.OpenBlock(false)
		section := pass.ElementBlock("section", nil, nil, 0, nil)
		label := pass.ElementVNode("b", nil, inner, vdom.PatchText, nil)
		return pass.ElementBlock("div", nil, []*vdom.VNode{section, label}, 0, nil)
	}
	prev := build("x")
	next := build("y")
	mount(t, prev)

	patches := Diff(prev, next)
	if len(patches) != 1 || patches[0].Op != OpSetText || patches[0].Value != "y" {
		t.Errorf("patches = %v, want single SetText y", patches)
	}
}
