package vuego

import (
	"log/slog"

	"github.com/vuego-dev/vuego/pkg/diag"
	"github.com/vuego-dev/vuego/pkg/vdom"
)

// AppConfig holds per-application configuration. It is created once with
// the context and mutated field by field; wholesale replacement is a usage
// diagnostic (see App.SetConfig).
type AppConfig struct {
	// GlobalProperties are made available on every component instance.
	GlobalProperties map[string]any

	// ErrorHandler receives errors recovered from lifecycle and vnode
	// hooks. When nil, hook errors are reported on the warn channel.
	ErrorHandler func(err error, instance any, info string)

	// WarnHandler, when set, receives application warnings instead of the
	// process-wide diag channel.
	WarnHandler func(msg string, instance any)

	// OptionMergeStrategies customize how duplicated options merge when
	// app-level mixins apply.
	OptionMergeStrategies map[string]func(to, from any) any

	// Logger is used for structured log output. Defaults to slog.Default.
	Logger *slog.Logger
}

// AppContext is the per-mounted-tree registry: named components and
// directives, provided values, config, and the per-definition memoization
// caches. It is created once per application, attached to the root vnode
// at mount, and shared by reference with every render below it. All
// mutation goes through the registration API on App, on the single
// render/setup goroutine.
type AppContext struct {
	app *App

	Config     *AppConfig
	Components map[string]any
	Directives map[string]any
	Provides   map[any]any

	// Per-component-definition caches. Keyed by definition identity and
	// evicted explicitly on unmount: merge results are per-app (app-level
	// mixins invalidate them) and nothing may outlive the context.
	optionsCache map[any]*vdom.ComponentOptions
	propsCache   map[any][]string
	emitsCache   map[any][]string
}

// NewAppContext returns a fresh registry with empty maps and default config.
func NewAppContext() *AppContext {
	return &AppContext{
		Config: &AppConfig{
			GlobalProperties:      map[string]any{},
			OptionMergeStrategies: map[string]func(to, from any) any{},
		},
		Components:   map[string]any{},
		Directives:   map[string]any{},
		Provides:     map[any]any{},
		optionsCache: map[any]*vdom.ComponentOptions{},
		propsCache:   map[any][]string{},
		emitsCache:   map[any][]string{},
	}
}

// App returns the owning application, nil for a detached context.
func (c *AppContext) App() *App {
	return c.app
}

// CachedOptions memoizes the normalized options for a component
// definition. The compute function runs once per definition per app.
func (c *AppContext) CachedOptions(def any, compute func() *vdom.ComponentOptions) *vdom.ComponentOptions {
	if cached, ok := c.optionsCache[def]; ok {
		return cached
	}
	opts := compute()
	c.optionsCache[def] = opts
	return opts
}

// CachedProps memoizes the normalized prop-name list for a definition.
func (c *AppContext) CachedProps(def any, compute func() []string) []string {
	if cached, ok := c.propsCache[def]; ok {
		return cached
	}
	props := compute()
	c.propsCache[def] = props
	return props
}

// CachedEmits memoizes the normalized emit-name list for a definition.
func (c *AppContext) CachedEmits(def any, compute func() []string) []string {
	if cached, ok := c.emitsCache[def]; ok {
		return cached
	}
	emits := compute()
	c.emitsCache[def] = emits
	return emits
}

// dropCaches evicts every per-definition cache. Called on unmount.
func (c *AppContext) dropCaches() {
	c.optionsCache = map[any]*vdom.ComponentOptions{}
	c.propsCache = map[any][]string{}
	c.emitsCache = map[any][]string{}
}

// warn routes a diagnostic through the app's WarnHandler when one is
// installed, else through the process warn channel.
func (c *AppContext) warn(msg string, instance any) {
	if c.Config != nil && c.Config.WarnHandler != nil {
		c.Config.WarnHandler(msg, instance)
		return
	}
	diag.Warn(msg)
}
