package vdom

// Block tracking collects the dynamic descendants of a compiled block into
// a flat list attached to the block root, so the renderer can diff that
// list instead of walking the whole subtree.
//
// The collecting state lives on an explicit RenderPass rather than package
// globals: independent render passes (concurrent server renders) each own
// an isolated stack. Within one pass, execution is single-threaded and
// re-entrant construction nests via push/pop discipline.

// emptyDynamic is the shared immutable sentinel attached to block roots
// whose tracking was disabled. Never append to it.
var emptyDynamic = []*VNode{}

// PassObserver receives render-pass events. Implementations must be cheap;
// the factory calls them on the hot path. See pkg/metrics.
type PassObserver interface {
	BlockOpened()
	NodeCreated(kind VKind)
	NodeTracked()
}

// blockFrame is one open block's collecting list. A disabled frame (loop
// fragment) swallows registrations instead of recording them.
type blockFrame struct {
	nodes    []*VNode
	disabled bool
}

// RenderPass owns the block stack and tracking counter for one render.
// A zero-value RenderPass is not usable; call NewRenderPass.
type RenderPass struct {
	stack    []*blockFrame
	tracking int // registration enabled while > 0

	// Observer, when non-nil, is notified of pass events.
	Observer PassObserver
}

// NewRenderPass returns a pass with tracking enabled and no open block.
func NewRenderPass() *RenderPass {
	return &RenderPass{tracking: 1}
}

// OpenBlock pushes a fresh collecting frame. Pass disableTracking=true for
// loop fragments, which re-diff wholesale and must not sub-track (this also
// bounds memory when the loop body repeats).
func (p *RenderPass) OpenBlock(disableTracking bool) {
	p.stack = append(p.stack, &blockFrame{disabled: disableTracking})
	if p.Observer != nil {
		p.Observer.BlockOpened()
	}
}

// closeBlock pops the innermost frame.
func (p *RenderPass) closeBlock() *blockFrame {
	if len(p.stack) == 0 {
		return nil
	}
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return top
}

// currentFrame returns the innermost open frame, or nil.
func (p *RenderPass) currentFrame() *blockFrame {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

// SetBlockTracking adjusts the tracking counter by delta. It is signed so
// nested suspensions compose: a memoized subtree passes -1 on entry and +1
// on exit, and registration stays off until every suspension has resumed.
func (p *RenderPass) SetBlockTracking(delta int) {
	p.tracking += delta
}

// TrackingEnabled reports whether construction-time registration is live.
func (p *RenderPass) TrackingEnabled() bool {
	return p.tracking > 0
}

// Depth returns the number of open blocks.
func (p *RenderPass) Depth() int {
	return len(p.stack)
}

// track appends a freshly constructed node to the current collecting list
// when all registration conditions hold: a block is open, tracking is
// enabled, the node is not itself a block root, and it is patch-worthy
// (dynamic patch bits, or any component, whose updates must always
// propagate).
func (p *RenderPass) track(n *VNode, isBlockRoot bool) {
	if isBlockRoot || p.tracking <= 0 {
		return
	}
	frame := p.currentFrame()
	if frame == nil || frame.disabled {
		return
	}
	// Hydration-only bits never warrant patching, components included.
	if n.PatchFlag == PatchNeedHydration {
		return
	}
	if !n.PatchFlag.IsDynamic() && n.ShapeFlag&ShapeComponent == 0 {
		return
	}
	frame.nodes = append(frame.nodes, n)
	if p.Observer != nil {
		p.Observer.NodeTracked()
	}
}

// replaceTracked swaps prev for next in the current collecting list,
// matching by identity. Used by the clone-and-merge factory path so the
// same logical position is not patched twice. Returns false when prev was
// not registered (the caller then appends next normally).
func (p *RenderPass) replaceTracked(prev, next *VNode) bool {
	frame := p.currentFrame()
	if frame == nil || frame.disabled {
		return false
	}
	for i := len(frame.nodes) - 1; i >= 0; i-- {
		if frame.nodes[i] == prev {
			frame.nodes[i] = next
			return true
		}
	}
	return false
}

// sealBlock closes the innermost block and turns n into its root: the
// collected list (or the empty sentinel when tracking was off) becomes
// n.DynamicChildren, and n itself is registered with the parent block. A
// block is always patch-worthy since even a no-op update must propagate
// unmount and lifecycle.
func (p *RenderPass) sealBlock(n *VNode) *VNode {
	frame := p.closeBlock()
	if frame == nil {
		return n
	}
	if p.tracking > 0 && !frame.disabled {
		n.DynamicChildren = frame.nodes
		if n.DynamicChildren == nil {
			n.DynamicChildren = emptyDynamic
		}
	} else {
		n.DynamicChildren = emptyDynamic
	}
	if p.tracking > 0 {
		if parent := p.currentFrame(); parent != nil && !parent.disabled {
			parent.nodes = append(parent.nodes, n)
		}
	}
	return n
}
