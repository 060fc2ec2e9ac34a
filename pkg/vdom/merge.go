package vdom

import (
	"fmt"
	"sort"
	"strings"
)

// IsEventKey reports whether a prop key names an event handler.
// Case-insensitive on the prefix to catch onclick, onClick, and OnLoad.
func IsEventKey(key string) bool {
	return len(key) > 2 && strings.EqualFold(key[:2], "on")
}

// MergeProps folds the given prop maps left to right into a single map.
// class values concatenate, style values merge per declared property with
// later wins, event handlers accumulate into a deduplicated handler list,
// and every other key is last-write-wins. Empty keys are dropped.
func MergeProps(maps ...Props) Props {
	out := Props{}
	for _, m := range maps {
		for key, val := range m {
			switch {
			case key == "":
				// Ignored entirely.
			case key == "class":
				prev, seen := out["class"]
				switch {
				case !seen:
					out["class"] = val
				case sameClassValue(prev, val):
					// Identical binding on both sides; keep one.
				default:
					out["class"] = NormalizeClass([]any{prev, val})
				}
			case key == "style":
				out["style"] = NormalizeStyle([]any{out["style"], val})
			case IsEventKey(key):
				existing := out[key]
				if existing != nil && !handlerListContains(existing, val) {
					out[key] = appendHandler(existing, val)
				} else if existing == nil {
					out[key] = val
				}
			default:
				out[key] = val
			}
		}
	}
	return out
}

// sameClassValue reports whether two class bindings are identical values.
// Only string bindings compare cheaply; container bindings always merge.
func sameClassValue(a, b any) bool {
	as, aok := a.(string)
	bs, bok := b.(string)
	return aok && bok && as == bs
}

// appendHandler joins an existing handler value (single or list) with an
// incoming one into a flat list.
func appendHandler(existing, incoming any) []any {
	if list, ok := existing.([]any); ok {
		return append(list, incoming)
	}
	return []any{existing, incoming}
}

// handlerListContains reports whether incoming is already present, by
// reference identity, in the existing handler value. Function values are
// not comparable with ==, so identity goes through fmt's pointer formatting.
func handlerListContains(existing, incoming any) bool {
	inID := handlerID(incoming)
	if list, ok := existing.([]any); ok {
		for _, h := range list {
			if handlerID(h) == inID {
				return true
			}
		}
		return false
	}
	return handlerID(existing) == inID
}

func handlerID(h any) string {
	return fmt.Sprintf("%p", h)
}

// NormalizeClass canonicalizes a class binding into a space-joined string.
// Accepted shapes: string, []any of bindings, map[string]bool of
// conditionally applied names.
func NormalizeClass(value any) string {
	var b strings.Builder
	appendClass(&b, value)
	return strings.TrimSpace(b.String())
}

func appendClass(b *strings.Builder, value any) {
	switch v := value.(type) {
	case nil:
	case string:
		if v != "" {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(v)
		}
	case []any:
		for _, item := range v {
			appendClass(b, item)
		}
	case map[string]bool:
		// Sorted for deterministic output.
		names := make([]string, 0, len(v))
		for name, on := range v {
			if on {
				names = append(names, name)
			}
		}
		sort.Strings(names)
		for _, name := range names {
			appendClass(b, name)
		}
	}
}

// NormalizeStyle canonicalizes a style binding into a map of declared
// properties. Accepted shapes: map[string]string, []any of bindings
// (later wins per property), and raw "prop: val; prop: val" strings.
func NormalizeStyle(value any) map[string]string {
	switch v := value.(type) {
	case nil:
		return nil
	case map[string]string:
		return v
	case string:
		return ParseStringStyle(v)
	case []any:
		out := map[string]string{}
		for _, item := range v {
			for prop, val := range NormalizeStyle(item) {
				out[prop] = val
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
	return nil
}

// ParseStringStyle parses an inline style string into a property map.
func ParseStringStyle(s string) map[string]string {
	out := map[string]string{}
	for _, decl := range strings.Split(s, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		val = strings.TrimSpace(val)
		if prop != "" && val != "" {
			out[prop] = val
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
