package vdom

import (
	"math"
	"testing"
)

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindComment, "Comment"},
		{KindStatic, "Static"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindTeleport, "Teleport"},
		{KindSuspense, "Suspense"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsSameType(t *testing.T) {
	comp := Func(func() *VNode { return Text("x") })

	tests := []struct {
		name string
		a, b *VNode
		want bool
	}{
		{
			name: "same tag no keys",
			a:    Element("div", nil),
			b:    Element("div", nil),
			want: true,
		},
		{
			name: "different tags",
			a:    Element("div", nil),
			b:    Element("span", nil),
			want: false,
		},
		{
			name: "same tag same key",
			a:    Element("li", Props{"key": "a"}),
			b:    Element("li", Props{"key": "a"}),
			want: true,
		},
		{
			name: "same tag different key",
			a:    Element("li", Props{"key": "a"}),
			b:    Element("li", Props{"key": "b"}),
			want: false,
		},
		{
			name: "same component",
			a:    H(comp, nil),
			b:    H(comp, nil),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSameType(tt.a, tt.b); got != tt.want {
				t.Errorf("IsSameType() = %v, want %v", got, tt.want)
			}
		})
	}
}

// A NaN key never satisfies self-equality, so two nodes carrying the same
// NaN key must still compare as different.
func TestIsSameTypeNaNKey(t *testing.T) {
	a := Element("li", Props{"key": math.NaN()})
	b := Element("li", Props{"key": math.NaN()})

	if IsSameType(a, b) {
		t.Error("nodes with NaN keys must never be the same type")
	}
	if IsSameType(a, a) {
		t.Error("a NaN-keyed node must not equal even itself")
	}
}

func TestIsSameTypeHMROverride(t *testing.T) {
	comp := Func(func() *VNode { return Text("x") })
	a := H(comp, nil)
	b := H(comp, nil)

	SetHMRDirtyCheck(func(typ any) bool { return typ == comp })
	defer SetHMRDirtyCheck(nil)

	if IsSameType(a, b) {
		t.Error("hot-replaced component must force a type mismatch")
	}

	SetHMRDirtyCheck(nil)
	if !IsSameType(a, b) {
		t.Error("clearing the HMR hook must restore normal matching")
	}
}

func TestChildrenAccessors(t *testing.T) {
	text := Element("div", nil, "hello")
	if got := text.TextChildren(); got != "hello" {
		t.Errorf("TextChildren() = %q, want %q", got, "hello")
	}
	if text.ArrayChildren() != nil {
		t.Error("ArrayChildren() on text children should be nil")
	}

	list := Element("ul", nil, Element("li", nil), Element("li", nil))
	if got := len(list.ArrayChildren()); got != 2 {
		t.Errorf("len(ArrayChildren()) = %d, want 2", got)
	}
	if list.TextChildren() != "" {
		t.Error("TextChildren() on array children should be empty")
	}
}

func TestPublicHandle(t *testing.T) {
	n := H(Func(func() *VNode { return Text("x") }), nil)
	inst := NewComponentInstance(n, nil)

	if inst.PublicHandle() != inst {
		t.Error("instance without exposed surface should hand back itself")
	}

	inst.Exposed = map[string]any{"focus": func() {}}
	if _, ok := inst.PublicHandle().(map[string]any); !ok {
		t.Error("instance with exposed surface should hand back the restricted map")
	}
}

func TestInstanceUIDsMonotonic(t *testing.T) {
	n := Element("div", nil)
	a := NewComponentInstance(n, nil)
	b := NewComponentInstance(n, nil)
	if b.UID <= a.UID {
		t.Errorf("instance uids must increase: %d then %d", a.UID, b.UID)
	}
}
