package vdom

import "testing"

func TestClonePatchFlagRules(t *testing.T) {
	tests := []struct {
		name  string
		node  *VNode
		extra Props
		want  PatchFlag
	}{
		{
			name:  "no extra props keeps flag",
			node:  &VNode{Kind: KindElement, PatchFlag: PatchText},
			extra: nil,
			want:  PatchText,
		},
		{
			name:  "positive flags gain FullProps",
			node:  &VNode{Kind: KindElement, PatchFlag: PatchText | PatchClass},
			extra: Props{"id": "x"},
			want:  PatchText | PatchClass | PatchFullProps,
		},
		{
			name:  "hoisted sentinel replaced outright",
			node:  &VNode{Kind: KindElement, PatchFlag: PatchHoisted},
			extra: Props{"id": "x"},
			want:  PatchFullProps,
		},
		{
			name:  "fragment exempt from forcing",
			node:  &VNode{Kind: KindFragment, PatchFlag: PatchStableFragment},
			extra: Props{"id": "x"},
			want:  PatchStableFragment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CloneVNode(tt.node, tt.extra)
			if got.PatchFlag != tt.want {
				t.Errorf("PatchFlag = %v, want %v", got.PatchFlag, tt.want)
			}
		})
	}
}

func TestCloneRefSemantics(t *testing.T) {
	var target any
	existing := &RefBinding{Target: &target}
	node := Element("div", nil)
	node.Ref = []*RefBinding{existing}

	t.Run("replace by default", func(t *testing.T) {
		var incoming any
		got := CloneVNode(node, Props{"ref": &incoming})
		if len(got.Ref) != 1 || got.Ref[0] == existing {
			t.Error("incoming ref must fully replace the prior binding")
		}
	})

	t.Run("concat when merge requested", func(t *testing.T) {
		var incoming any
		got := CloneVNodeWithRefMerge(node, Props{"ref": &incoming}, true)
		if len(got.Ref) != 2 {
			t.Fatalf("len(Ref) = %d, want 2", len(got.Ref))
		}
		if got.Ref[0] != existing {
			t.Error("merged refs must keep the existing binding first")
		}
	})

	t.Run("original untouched by merge", func(t *testing.T) {
		if len(node.Ref) != 1 {
			t.Error("merge must not mutate the source node's bindings")
		}
	})
}

func TestCloneIndependentContainers(t *testing.T) {
	child := Element("span", nil)
	node := Element("div", Props{"id": "a"}, child)

	got := CloneVNode(node, Props{"title": "t"})

	children := got.ArrayChildren()
	if len(children) != 1 || children[0] != child {
		t.Fatal("child nodes are shared leaves")
	}
	children[0] = Element("em", nil)
	if node.ArrayChildren()[0] != child {
		t.Error("mutating the clone's child list must not touch the original")
	}

	got.Props["id"] = "b"
	if node.Props["id"] != "a" {
		t.Error("the clone's merged props must be an independent map")
	}
}

func TestCloneSharesHostHandles(t *testing.T) {
	host := struct{ name string }{"hostEl"}
	node := Element("div", nil)
	node.El = &host

	got := CloneVNode(node, nil)
	if got.El != node.El {
		t.Error("host handles are shallow-copied; a clone may describe the same mounted artifact")
	}
}

func TestCloneSuspenseDeep(t *testing.T) {
	content := Element("main", nil)
	fallback := Element("div", nil, "loading")
	node := SuspenseNode(nil, content, fallback)

	got := CloneVNode(node, nil)
	if got.Content == content || got.Fallback == fallback {
		t.Error("suspense content and fallback must be deep-cloned")
	}
	if got.Content.Tag != "main" || got.Fallback.Tag != "div" {
		t.Error("deep clones must preserve structure")
	}
}
