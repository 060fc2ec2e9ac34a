package vuego

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync/atomic"

	"github.com/vuego-dev/vuego/internal/errors"
	"github.com/vuego-dev/vuego/pkg/vdom"
)

// Version is reported to devtools hooks on init.
const Version = "0.4.0"

// appUID is the source of application instance ids. Atomic so apps may be
// created from any goroutine even though each app renders on one.
var appUID uint64

// currentApp is the active application during RunWithContext, enabling
// Inject outside the render tree. Scoped to the single setup/render
// goroutine, like the rest of the registration API.
var currentApp *App

// App is an application instance: a root component definition bound to an
// AppContext, mountable into a host container through an injected
// renderer.
type App struct {
	uid           uint64
	ctx           *AppContext
	rootComponent any
	rootProps     vdom.Props

	renderer  Renderer
	devtools  []DevtoolsHook
	observer  vdom.PassObserver
	optionsAPI bool

	installedPlugins map[any]bool
	mixins           []*vdom.ComponentOptions

	mounted   bool
	container Container
	rootVNode *vdom.VNode
}

// Option configures an App at creation.
type Option func(*App)

// WithRenderer injects the host renderer. Mount is a no-op diagnostic
// without one.
func WithRenderer(r Renderer) Option {
	return func(a *App) { a.renderer = r }
}

// WithDevtools registers a devtools/telemetry hook.
func WithDevtools(h DevtoolsHook) Option {
	return func(a *App) { a.devtools = append(a.devtools, h) }
}

// WithObserver wires a render-pass observer (see pkg/metrics).
func WithObserver(o vdom.PassObserver) Option {
	return func(a *App) { a.observer = o }
}

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.ctx.Config.Logger = l }
}

// WithoutOptionsAPI marks this build as composition-only: Mixin becomes a
// diagnostic no-op.
func WithoutOptionsAPI() Option {
	return func(a *App) { a.optionsAPI = false }
}

// CreateApp creates an application instance from a root component
// definition and optional root props (a vdom.Props map or nil; anything
// else is ignored with a diagnostic).
//
// A non-function root definition is shallow-copied so per-instantiation
// mutation (asset registration, mixin application) never leaks into the
// shared definition value.
func CreateApp(rootComponent any, rootProps any, opts ...Option) *App {
	if opts2, ok := rootComponent.(*vdom.ComponentOptions); ok {
		copied := *opts2
		rootComponent = &copied
	}

	app := &App{
		uid:              atomic.AddUint64(&appUID, 1),
		ctx:              NewAppContext(),
		rootComponent:    rootComponent,
		optionsAPI:       true,
		installedPlugins: map[any]bool{},
	}
	app.ctx.app = app

	switch rp := rootProps.(type) {
	case nil:
	case vdom.Props:
		app.rootProps = rp
	case map[string]any:
		app.rootProps = vdom.Props(rp)
	default:
		app.warnCode("W010")
	}

	for _, opt := range opts {
		opt(app)
	}
	return app
}

// UID returns the application instance id.
func (a *App) UID() uint64 { return a.uid }

// Context returns the application context registry.
func (a *App) Context() *AppContext { return a.ctx }

// Config returns the mutable application config.
func (a *App) Config() *AppConfig { return a.ctx.Config }

// SetConfig is a guarded no-op: the config object cannot be replaced
// wholesale, only mutated field by field.
func (a *App) SetConfig(*AppConfig) {
	a.warnCode("W007")
}

// Use installs a plugin, once per plugin identity. A duplicate install is
// a diagnostic no-op. Returns the app for chaining.
func (a *App) Use(p Plugin) *App {
	key := pluginKey(p)
	if a.installedPlugins[key] {
		a.warnCode("W002")
		return a
	}
	a.installedPlugins[key] = true
	p.Install(a)
	return a
}

// Mixin registers an app-level mixin. Only meaningful on options-API
// builds; otherwise a diagnostic no-op.
func (a *App) Mixin(m *vdom.ComponentOptions) *App {
	if !a.optionsAPI {
		a.warnCode("W009")
		return a
	}
	for _, existing := range a.mixins {
		if existing == m {
			a.ctx.warn("mixin already applied to this application", nil)
			return a
		}
	}
	a.mixins = append(a.mixins, m)
	return a
}

// Component returns the definition registered under name, nil if absent.
func (a *App) Component(name string) any {
	return a.ctx.Components[name]
}

// SetComponent registers a component definition under name, warning on
// overwrite. Returns the app for chaining.
func (a *App) SetComponent(name string, def any) *App {
	if _, exists := a.ctx.Components[name]; exists {
		a.warnCode("W003", "name", name)
	}
	a.ctx.Components[name] = def
	return a
}

// Directive returns the directive registered under name, nil if absent.
func (a *App) Directive(name string) any {
	return a.ctx.Directives[name]
}

// SetDirective registers a directive definition under name, warning on
// overwrite. Returns the app for chaining.
func (a *App) SetDirective(name string, def any) *App {
	if _, exists := a.ctx.Directives[name]; exists {
		a.warnCode("W004", "name", name)
	}
	a.ctx.Directives[name] = def
	return a
}

// Provide makes value injectable under key for every component in the
// tree, warning on silent overwrite. Returns the app for chaining.
func (a *App) Provide(key, value any) *App {
	if _, exists := a.ctx.Provides[key]; exists {
		a.warnCode("W005", "key", fmt.Sprint(key))
	}
	a.ctx.Provides[key] = value
	return a
}

// RunWithContext makes this application the active one for the duration
// of fn, so Inject resolves app-provided values outside the render tree.
func (a *App) RunWithContext(fn func()) {
	prev := currentApp
	currentApp = a
	defer func() { currentApp = prev }()
	fn()
}

// Inject resolves a provided value from the active application. Returns
// nil, false when no app is active or the key is unknown.
func Inject(key any) (any, bool) {
	if currentApp == nil {
		return nil, false
	}
	v, ok := currentApp.ctx.Provides[key]
	return v, ok
}

// Mount renders the root component into container via the injected
// renderer and returns the root instance's public handle. Double mounts
// are diagnostic no-ops returning nil.
func (a *App) Mount(container Container) any {
	return a.mount(container, false)
}

// Hydrate mounts over pre-rendered host markup when the renderer supports
// hydration, falling back to a fresh render pass with a diagnostic.
func (a *App) Hydrate(container Container) any {
	return a.mount(container, true)
}

func (a *App) mount(container Container, hydrate bool) any {
	if a.mounted {
		a.warnCode("W101")
		return nil
	}
	if container.MountedApp() != nil {
		a.warnCode("W100")
		return nil
	}
	if a.renderer == nil {
		a.ctx.warn("no renderer injected; cannot mount", nil)
		return nil
	}

	vnode := vdom.H(a.rootComponent, a.rootProps)
	vnode.AppContext = a.ctx

	if hydrate {
		if h, ok := a.renderer.(Hydrator); ok {
			h.Hydrate(vnode, container)
		} else {
			a.warnCode("W103")
			a.renderer.Render(vnode, container)
		}
	} else {
		a.renderer.Render(vnode, container)
	}

	if vnode.ShapeFlag&vdom.ShapeComponent != 0 && vnode.Component == nil {
		vnode.Component = vdom.NewComponentInstance(vnode, a.ctx)
	}

	a.mounted = true
	a.container = container
	a.rootVNode = vnode
	container.SetMountedApp(a)
	a.notifyDevtoolsInit()

	if vnode.Component != nil {
		vnode.Component.IsMounted = true
		return vnode.Component.PublicHandle()
	}
	return nil
}

// Unmount tears the tree down through the renderer's normal path, clears
// the container back-reference, and drops the per-app caches. A diagnostic
// no-op when not mounted.
func (a *App) Unmount() {
	if !a.mounted {
		a.warnCode("W102")
		return
	}
	a.renderer.Render(nil, a.container)
	a.container.SetMountedApp(nil)
	a.ctx.dropCaches()
	a.notifyDevtoolsUnmount()
	a.mounted = false
	a.container = nil
	a.rootVNode = nil
}

// IsMounted reports whether the application is currently mounted.
func (a *App) IsMounted() bool { return a.mounted }

// NewRenderPass returns a render pass wired with the app's observer.
func (a *App) NewRenderPass() *vdom.RenderPass {
	p := vdom.NewRenderPass()
	p.Observer = a.observer
	return p
}

// CallWithErrorHandling invokes a lifecycle or vnode hook through the
// recoverable error path: a panic inside fn is captured and routed to
// config.ErrorHandler, never propagated.
func (a *App) CallWithErrorHandling(fn func(), instance any, info string) {
	defer func() {
		if r := recover(); r != nil {
			err := errors.New("W200").Wrap(fmt.Errorf("%v", r))
			if a.ctx.Config.ErrorHandler != nil {
				a.ctx.Config.ErrorHandler(err, instance, info)
				return
			}
			a.ctx.warn(err.Error()+" in "+info, instance)
		}
	}()
	fn()
}

// notifyDevtoolsInit fires AppInit on every hook, isolating panics.
func (a *App) notifyDevtoolsInit() {
	for _, h := range a.devtools {
		func() {
			defer func() { recover() }()
			h.AppInit(a, Version)
		}()
	}
}

func (a *App) notifyDevtoolsUnmount() {
	for _, h := range a.devtools {
		func() {
			defer func() { recover() }()
			h.AppUnmount(a)
		}()
	}
}

// warnCode emits a registered diagnostic through the app warn channel.
func (a *App) warnCode(code string, kv ...string) {
	e := errors.New(code)
	msg := e.Error()
	for i := 0; i+1 < len(kv); i += 2 {
		msg += fmt.Sprintf(" (%s=%s)", kv[i], kv[i+1])
	}
	a.ctx.warn(msg, nil)
}

// pluginKey derives a comparable identity for a plugin value. Function
// plugins are not comparable with ==, so identity goes through the
// function pointer; other incomparable plugin values (structs carrying
// funcs, maps, slices) fall back to their dynamic type so they cannot
// panic as map keys.
func pluginKey(p Plugin) any {
	if pf, ok := p.(PluginFunc); ok {
		return reflect.ValueOf(pf).Pointer()
	}
	if t := reflect.TypeOf(p); t != nil && !t.Comparable() {
		return t
	}
	return p
}
