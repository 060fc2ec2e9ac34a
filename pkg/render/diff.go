package render

import (
	"github.com/vuego-dev/vuego/pkg/vdom"
)

// PatchOp is the type of patch operation.
type PatchOp uint8

const (
	OpSetText    PatchOp = 0x01 // Update text content
	OpSetClass   PatchOp = 0x02 // Update class attribute
	OpSetStyle   PatchOp = 0x03 // Update style attribute
	OpSetProp    PatchOp = 0x04 // Set/update one attribute
	OpRemoveProp PatchOp = 0x05 // Remove one attribute
	OpReplace    PatchOp = 0x06 // Replace node entirely
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case OpSetText:
		return "SetText"
	case OpSetClass:
		return "SetClass"
	case OpSetStyle:
		return "SetStyle"
	case OpSetProp:
		return "SetProp"
	case OpRemoveProp:
		return "RemoveProp"
	case OpReplace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// Patch represents a single host operation to apply.
type Patch struct {
	Op     PatchOp
	Target any    // Host handle of the patched node
	Key    string // Attribute key for SetProp/RemoveProp
	Value  string // New value
	Node   *vdom.VNode // Replacement node for OpReplace
}

// Diff compares two trees produced by the same compiled render function
// and returns the host patches that transform prev into next.
//
// When both roots are block roots, only the flat DynamicChildren lists
// are walked; within a block the node arrangement is fixed, so positions
// pair one-to-one and each pair is patched strictly by its patch-flag
// hints. Anything else falls back to a positional child walk.
func Diff(prev, next *vdom.VNode) []Patch {
	var patches []Patch
	diffNode(prev, next, &patches)
	return patches
}

func diffNode(prev, next *vdom.VNode, patches *[]Patch) {
	if prev == nil || next == nil {
		return
	}
	if !vdom.IsSameType(prev, next) {
		*patches = append(*patches, Patch{Op: OpReplace, Target: prev.El, Node: next})
		return
	}

	// Adopt the mounted artifact.
	next.El = prev.El

	if next.PatchFlag == vdom.PatchHoisted {
		return
	}

	patchByFlags(prev, next, patches)

	if prev.DynamicChildren != nil && next.DynamicChildren != nil &&
		len(prev.DynamicChildren) == len(next.DynamicChildren) {
		for i := range next.DynamicChildren {
			diffNode(prev.DynamicChildren[i], next.DynamicChildren[i], patches)
		}
		return
	}
	if next.Kind == vdom.KindText || next.PatchFlag&vdom.PatchText != 0 {
		// Text already handled by the flag path.
		return
	}
	diffChildren(prev, next, patches)
}

// patchByFlags patches exactly the aspects the compiler flagged dynamic.
// An unflagged aspect is stable by contract and is skipped outright.
func patchByFlags(prev, next *vdom.VNode, patches *[]Patch) {
	flag := next.PatchFlag
	if flag == vdom.PatchBail || flag&vdom.PatchFullProps != 0 {
		diffAllProps(prev, next, patches)
	} else {
		if flag&vdom.PatchClass != 0 {
			diffProp(prev, next, "class", OpSetClass, patches)
		}
		if flag&vdom.PatchStyle != 0 {
			diffProp(prev, next, "style", OpSetStyle, patches)
		}
		if flag&vdom.PatchProps != 0 {
			for _, key := range next.DynamicProps {
				diffProp(prev, next, key, OpSetProp, patches)
			}
		}
	}

	if next.Kind == vdom.KindText || flag&vdom.PatchText != 0 {
		if prev.TextChildren() != next.TextChildren() {
			*patches = append(*patches, Patch{Op: OpSetText, Target: next.El, Value: next.TextChildren()})
		}
	}
}

func diffProp(prev, next *vdom.VNode, key string, op PatchOp, patches *[]Patch) {
	if vdom.IsEventKey(key) {
		return
	}
	prevVal := propValue(prev, key)
	nextVal := propValue(next, key)
	if prevVal == nextVal {
		return
	}
	if nextVal == "" {
		*patches = append(*patches, Patch{Op: OpRemoveProp, Target: next.El, Key: key})
		return
	}
	*patches = append(*patches, Patch{Op: op, Target: next.El, Key: key, Value: nextVal})
}

// diffAllProps is the FullProps path: every key on either side is
// compared, since dynamic keys make the flag hints untrustworthy.
func diffAllProps(prev, next *vdom.VNode, patches *[]Patch) {
	for key := range prev.Props {
		if key == "key" || key == "ref" || vdom.IsEventKey(key) {
			continue
		}
		if _, still := next.Props[key]; !still {
			*patches = append(*patches, Patch{Op: OpRemoveProp, Target: next.El, Key: key})
		}
	}
	for key := range next.Props {
		if key == "key" || key == "ref" || vdom.IsEventKey(key) {
			continue
		}
		op := OpSetProp
		switch key {
		case "class":
			op = OpSetClass
		case "style":
			op = OpSetStyle
		}
		diffProp(prev, next, key, op, patches)
	}
}

// diffChildren is the unoptimized positional walk for trees without
// usable block information.
func diffChildren(prev, next *vdom.VNode, patches *[]Patch) {
	if next.ShapeFlag&vdom.ShapeTextChildren != 0 {
		if prev.TextChildren() != next.TextChildren() {
			*patches = append(*patches, Patch{Op: OpSetText, Target: next.El, Value: next.TextChildren()})
		}
		return
	}

	prevKids := prev.ArrayChildren()
	nextKids := next.ArrayChildren()
	n := len(prevKids)
	if len(nextKids) < n {
		n = len(nextKids)
	}
	for i := 0; i < n; i++ {
		diffNode(prevKids[i], nextKids[i], patches)
	}
	for i := n; i < len(nextKids); i++ {
		*patches = append(*patches, Patch{Op: OpReplace, Target: next.El, Node: nextKids[i]})
	}
}

// propValue resolves a prop to its attribute string form.
func propValue(n *vdom.VNode, key string) string {
	if n.Props == nil {
		return ""
	}
	v, ok := n.Props[key]
	if !ok {
		return ""
	}
	if style, isStyle := v.(map[string]string); isStyle {
		return styleToString(style)
	}
	return attrToString(v)
}
