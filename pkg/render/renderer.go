package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vuego-dev/vuego"
	"github.com/vuego-dev/vuego/pkg/vdom"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables indented output. Development only; it inflates the
	// markup and the host-handle positions.
	Pretty bool

	// Indent is the string per indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer is the host renderer collaborator: it turns vnode trees into
// HTML and assigns host handles. It implements the root package's
// Renderer and Hydrator interfaces.
type Renderer struct {
	config    Config
	elCounter uint32
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// Render renders node into container, replacing its markup. A nil node is
// the teardown path: the container is emptied.
func (r *Renderer) Render(n *vdom.VNode, container vuego.Container) {
	host, ok := container.(*Container)
	if !ok {
		return
	}
	if n == nil {
		host.HTML = ""
		return
	}
	html, err := r.RenderToString(n)
	if err != nil {
		return
	}
	host.HTML = html
}

// Hydrate reconstructs host handles over the container's existing markup
// without rewriting it. Handle assignment follows the same traversal as
// Render, so handle positions line up with server output.
func (r *Renderer) Hydrate(n *vdom.VNode, container vuego.Container) {
	if _, ok := container.(*Container); !ok || n == nil {
		return
	}
	r.assignHandles(n)
}

// RenderToString renders a vnode tree to an HTML string.
func (r *Renderer) RenderToString(n *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.renderNode(&buf, n, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Reset clears the handle counter for renderer reuse.
func (r *Renderer) Reset() {
	r.elCounter = 0
}

// renderNode dispatches on the resolved node kind.
func (r *Renderer) renderNode(w io.Writer, n *vdom.VNode, depth int) error {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case vdom.KindElement:
		return r.renderElement(w, n, depth)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(n.TextChildren()))
		return err
	case vdom.KindComment:
		_, err := fmt.Fprintf(w, "<!--%s-->", n.TextChildren())
		return err
	case vdom.KindStatic:
		// Hoisted blobs are pre-rendered markup; emit verbatim.
		_, err := io.WriteString(w, n.TextChildren())
		return err
	case vdom.KindFragment:
		return r.renderChildren(w, n, depth)
	case vdom.KindComponent:
		return r.renderComponent(w, n, depth)
	case vdom.KindTeleport:
		// Without a second host target, teleport content renders in place.
		return r.renderChildren(w, n, depth)
	case vdom.KindSuspense:
		if n.Content != nil {
			return r.renderNode(w, n.Content, depth)
		}
		return r.renderNode(w, n.Fallback, depth)
	default:
		return fmt.Errorf("unknown node kind: %v", n.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, n *vdom.VNode, depth int) error {
	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", n.Tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, n); err != nil {
		return err
	}

	n.El = r.nextHandle()
	if _, err := fmt.Fprintf(w, ` data-v="%s"`, n.El); err != nil {
		return err
	}

	if isVoidElement(n.Tag) {
		_, err := io.WriteString(w, ">")
		if r.config.Pretty {
			io.WriteString(w, "\n")
		}
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	switch {
	case n.ShapeFlag&vdom.ShapeTextChildren != 0:
		if _, err := io.WriteString(w, escapeHTML(n.TextChildren())); err != nil {
			return err
		}
	case n.ShapeFlag&vdom.ShapeArrayChildren != 0:
		pretty := r.config.Pretty && !isInlineElement(n.Tag)
		if pretty {
			io.WriteString(w, "\n")
		}
		for _, child := range n.ArrayChildren() {
			if err := r.renderNode(w, child, depth+1); err != nil {
				return err
			}
		}
		if pretty {
			r.writeIndent(w, depth)
		}
	}

	if _, err := fmt.Fprintf(w, "</%s>", n.Tag); err != nil {
		return err
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
	return nil
}

func (r *Renderer) renderChildren(w io.Writer, n *vdom.VNode, depth int) error {
	if n.ShapeFlag&vdom.ShapeTextChildren != 0 {
		_, err := io.WriteString(w, escapeHTML(n.TextChildren()))
		return err
	}
	for _, child := range n.ArrayChildren() {
		if err := r.renderNode(w, child, depth); err != nil {
			return err
		}
	}
	return nil
}

// renderComponent renders a component node by invoking its definition's
// render path. Options components without a render function produce
// nothing; interpreting full options is outside the renderer's scope.
func (r *Renderer) renderComponent(w io.Writer, n *vdom.VNode, depth int) error {
	switch def := n.Type.(type) {
	case vdom.Component:
		out := def.Render()
		return r.renderNode(w, vdom.NormalizeVNode(out), depth)
	case *vdom.ComponentOptions:
		if def.Render != nil {
			return r.renderNode(w, vdom.NormalizeVNode(def.Render()), depth)
		}
		if def.Setup != nil {
			return r.renderNode(w, vdom.NormalizeVNode(def.Setup().Render()), depth)
		}
	}
	return nil
}

// renderAttributes writes the element's attributes in sorted order.
func (r *Renderer) renderAttributes(w io.Writer, n *vdom.VNode) error {
	if n.Props == nil {
		return nil
	}

	keys := make([]string, 0, len(n.Props))
	for key := range n.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		switch {
		case key == "key" || key == "ref":
			// Internal bindings, never rendered.
			continue
		case vdom.IsEventKey(key):
			// Handlers attach during hydration, not as markup. Emit the
			// marker the client runtime binds against.
			name := strings.ToLower(key[2:])
			if _, err := fmt.Fprintf(w, ` data-on-%s="true"`, name); err != nil {
				return err
			}
			continue
		}

		value := n.Props[key]
		if style, ok := value.(map[string]string); ok && key == "style" {
			if _, err := fmt.Fprintf(w, ` style="%s"`, escapeAttr(styleToString(style))); err != nil {
				return err
			}
			continue
		}
		if b, ok := value.(bool); ok && isBooleanAttr(key) {
			if b {
				if _, err := fmt.Fprintf(w, " %s", key); err != nil {
					return err
				}
			}
			continue
		}

		str := attrToString(value)
		if str == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(str)); err != nil {
			return err
		}
	}
	return nil
}

// assignHandles walks the tree assigning host handles without writing
// markup; the hydration path.
func (r *Renderer) assignHandles(n *vdom.VNode) {
	if n == nil {
		return
	}
	if n.Kind == vdom.KindElement {
		n.El = r.nextHandle()
	}
	for _, child := range n.ArrayChildren() {
		r.assignHandles(child)
	}
	if n.Kind == vdom.KindSuspense {
		r.assignHandles(n.Content)
		r.assignHandles(n.Fallback)
	}
}

func (r *Renderer) nextHandle() string {
	r.elCounter++
	return fmt.Sprintf("v%d", r.elCounter)
}

func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}

// styleToString serializes a normalized style map in sorted order.
func styleToString(style map[string]string) string {
	props := make([]string, 0, len(style))
	for prop := range style {
		props = append(props, prop)
	}
	sort.Strings(props)

	var b strings.Builder
	for i, prop := range props {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(prop)
		b.WriteString(": ")
		b.WriteString(style[prop])
	}
	return b.String()
}

// attrToString converts a prop value to its attribute form.
func attrToString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(v)
	}
}

// voidElements never carry children or closing tags.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

func isVoidElement(tag string) bool {
	return voidElements[tag]
}

// inlineElements keep their children on one line in pretty mode.
var inlineElements = map[string]bool{
	"a": true, "abbr": true, "b": true, "code": true, "em": true,
	"i": true, "kbd": true, "label": true, "mark": true, "q": true,
	"s": true, "small": true, "span": true, "strong": true, "sub": true,
	"sup": true, "u": true,
}

func isInlineElement(tag string) bool {
	return inlineElements[tag]
}

// booleanAttrs render as bare attribute names when true.
var booleanAttrs = map[string]bool{
	"autofocus": true, "checked": true, "disabled": true, "hidden": true,
	"multiple": true, "readonly": true, "required": true, "selected": true,
}

func isBooleanAttr(key string) bool {
	return booleanAttrs[key]
}
