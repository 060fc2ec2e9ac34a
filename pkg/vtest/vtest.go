package vtest

import (
	"strings"
	"testing"

	"github.com/vuego-dev/vuego"
	"github.com/vuego-dev/vuego/pkg/render"
	"github.com/vuego-dev/vuego/pkg/vdom"
)

// AppBuilder allows fluent construction of test applications.
type AppBuilder struct {
	root       any
	props      vdom.Props
	components map[string]any
	directives map[string]any
	provides   map[string]any
	opts       []vuego.Option
}

// NewApp creates a new app builder for testing. The app is wired with
// the reference HTML renderer.
//
// Example:
//
//	app := vtest.NewApp(root).
//	    WithProvide("theme", "dark").
//	    Build()
func NewApp(root any) *AppBuilder {
	return &AppBuilder{
		root:       root,
		components: make(map[string]any),
		directives: make(map[string]any),
		provides:   make(map[string]any),
	}
}

// WithProps sets the root component props.
func (b *AppBuilder) WithProps(props vdom.Props) *AppBuilder {
	b.props = props
	return b
}

// WithComponent registers a component on the app.
func (b *AppBuilder) WithComponent(name string, def any) *AppBuilder {
	b.components[name] = def
	return b
}

// WithDirective registers a directive on the app.
func (b *AppBuilder) WithDirective(name string, def any) *AppBuilder {
	b.directives[name] = def
	return b
}

// WithProvide injects an app-level provide.
//
// Example:
//
//	app := vtest.NewApp(root).WithProvide("store", store).Build()
func (b *AppBuilder) WithProvide(key string, val any) *AppBuilder {
	b.provides[key] = val
	return b
}

// WithOption appends an app option.
func (b *AppBuilder) WithOption(opt vuego.Option) *AppBuilder {
	b.opts = append(b.opts, opt)
	return b
}

// Build returns the final app for use in tests.
func (b *AppBuilder) Build() *vuego.App {
	opts := append([]vuego.Option{
		vuego.WithRenderer(render.NewRenderer(render.Config{})),
	}, b.opts...)

	app := vuego.CreateApp(b.root, b.props, opts...)
	for name, def := range b.components {
		app.SetComponent(name, def)
	}
	for name, def := range b.directives {
		app.SetDirective(name, def)
	}
	for key, val := range b.provides {
		app.Provide(key, val)
	}
	return app
}

// Mounted builds the app and mounts it into a fresh container.
func (b *AppBuilder) Mounted(t *testing.T) (*vuego.App, *render.Container) {
	t.Helper()
	app := b.Build()
	container := render.NewContainer()
	if handle := app.Mount(container); handle == nil && !app.IsMounted() {
		t.Fatalf("mount failed")
	}
	return app, container
}

// RenderToString renders a VNode and returns the HTML string.
// This is useful for asserting on rendered output.
//
// Example:
//
//	html := vtest.RenderToString(node)
//	if !strings.Contains(html, "expected text") {
//	    t.Error("missing expected text")
//	}
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.Config{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, node, "Welcome Admin")
func ExpectContains(t *testing.T, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
//
// Example:
//
//	vtest.ExpectNotContains(t, node, "Error")
func ExpectNotContains(t *testing.T, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
//
// Example:
//
//	vtest.ExpectElement(t, node, "button")
func ExpectElement(t *testing.T, node *vdom.VNode, tag string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, node, "class", "btn-primary")
func ExpectAttribute(t *testing.T, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
