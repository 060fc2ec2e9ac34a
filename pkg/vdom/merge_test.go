package vdom

import (
	"reflect"
	"testing"
)

func TestMergePropsClass(t *testing.T) {
	tests := []struct {
		name string
		maps []Props
		want string
	}{
		{
			name: "concatenates distinct classes",
			maps: []Props{{"class": "a"}, {"class": "b"}},
			want: "a b",
		},
		{
			name: "identical classes collapse",
			maps: []Props{{"class": "a"}, {"class": "a"}},
			want: "a",
		},
		{
			name: "three way",
			maps: []Props{{"class": "a"}, {"class": "b"}, {"class": "c"}},
			want: "a b c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeProps(tt.maps...)
			if got["class"] != tt.want {
				t.Errorf("class = %q, want %q", got["class"], tt.want)
			}
		})
	}
}

func TestMergePropsStyleLaterWins(t *testing.T) {
	got := MergeProps(
		Props{"style": map[string]string{"color": "red", "margin": "0"}},
		Props{"style": map[string]string{"color": "blue"}},
	)
	style, ok := got["style"].(map[string]string)
	if !ok {
		t.Fatalf("style is %T, want map[string]string", got["style"])
	}
	if style["color"] != "blue" {
		t.Errorf("color = %q, want later value blue", style["color"])
	}
	if style["margin"] != "0" {
		t.Errorf("margin = %q, want retained value 0", style["margin"])
	}
}

func TestMergePropsHandlers(t *testing.T) {
	h1 := func() {}
	h2 := func() {}

	t.Run("distinct handlers accumulate in order", func(t *testing.T) {
		got := MergeProps(Props{"onclick": h1}, Props{"onclick": h2})
		list, ok := got["onclick"].([]any)
		if !ok {
			t.Fatalf("onclick is %T, want []any", got["onclick"])
		}
		if len(list) != 2 {
			t.Fatalf("len = %d, want 2", len(list))
		}
		if handlerID(list[0]) != handlerID(h1) || handlerID(list[1]) != handlerID(h2) {
			t.Error("handlers must keep encounter order")
		}
	})

	t.Run("same reference merged twice dedupes", func(t *testing.T) {
		got := MergeProps(Props{"onclick": h1}, Props{"onclick": h1})
		if _, isList := got["onclick"].([]any); isList {
			t.Error("merging the same handler reference must not produce a list")
		}
	})
}

func TestMergePropsLastWriteWins(t *testing.T) {
	got := MergeProps(Props{"id": "a", "title": "x"}, Props{"id": "b"})
	if got["id"] != "b" {
		t.Errorf("id = %v, want b", got["id"])
	}
	if got["title"] != "x" {
		t.Errorf("title = %v, want x", got["title"])
	}
}

func TestMergePropsIgnoresEmptyKeys(t *testing.T) {
	got := MergeProps(Props{"": "junk", "id": "a"})
	if _, ok := got[""]; ok {
		t.Error("empty keys must be dropped")
	}
	if got["id"] != "a" {
		t.Error("named keys must survive")
	}
}

func TestNormalizeClass(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "a b", "a b"},
		{"nil", nil, ""},
		{"array", []any{"a", nil, "b"}, "a b"},
		{"map", map[string]bool{"on": true, "off": false, "also": true}, "also on"},
		{"nested array", []any{"a", []any{"b", "c"}}, "a b c"},
		{"array with map", []any{"a", map[string]bool{"b": true}}, "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeClass(tt.value); got != tt.want {
				t.Errorf("NormalizeClass(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestNormalizeStyle(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  map[string]string
	}{
		{
			name:  "string parsed",
			value: "color: red; margin: 0",
			want:  map[string]string{"color": "red", "margin": "0"},
		},
		{
			name:  "array later wins",
			value: []any{map[string]string{"color": "red"}, "color: blue"},
			want:  map[string]string{"color": "blue"},
		},
		{
			name:  "nil",
			value: nil,
			want:  nil,
		},
		{
			name:  "malformed declarations skipped",
			value: "color red; margin: 0;",
			want:  map[string]string{"margin": "0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeStyle(tt.value)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeStyle(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestIsEventKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"onclick", true},
		{"onClick", true},
		{"ONLOAD", true},
		{"on", false},
		{"once", true}, // naming convention match; callers pass handlers here
		{"class", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := IsEventKey(tt.key); got != tt.want {
				t.Errorf("IsEventKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}
