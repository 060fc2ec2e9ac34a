package el

import (
	"fmt"

	"github.com/vuego-dev/vuego/pkg/vdom"
)

// E builds an element from a mixed argument list. Arguments are
// interpreted by type:
//
//   - Attr and Props contribute attributes, merged in order
//   - *VNode, []*VNode, string, and fmt.Stringer contribute children
//   - numeric values are stringified into text children
//   - nil arguments are skipped
//
// Attribute merging follows vdom.MergeProps: repeated class values
// concatenate, repeated styles merge with later values winning, and
// event handlers accumulate.
func E(tag string, args ...any) *VNode {
	var props Props
	var children []any

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			if v.Key == "" {
				continue
			}
			props = vdom.MergeProps(props, Props{v.Key: v.Value})
		case Props:
			props = vdom.MergeProps(props, v)
		case *VNode:
			if v != nil {
				children = append(children, v)
			}
		case []*VNode:
			for _, child := range v {
				if child != nil {
					children = append(children, child)
				}
			}
		case string:
			children = append(children, vdom.Text(v))
		case fmt.Stringer:
			children = append(children, vdom.Text(v.String()))
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			children = append(children, vdom.Text(fmt.Sprint(v)))
		default:
			children = append(children, vdom.Text(fmt.Sprint(v)))
		}
	}

	return vdom.Element(tag, props, children...)
}

// Text creates a text node.
func Text(content string) *VNode {
	return vdom.Text(content)
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return vdom.Text(fmt.Sprintf(format, args...))
}

// Comment creates a comment node.
func Comment(text string) *VNode {
	return vdom.Comment(text)
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	return vdom.Fragment(children...)
}

// Nothing renders as an empty comment placeholder.
func Nothing() *VNode {
	return vdom.Comment("")
}
