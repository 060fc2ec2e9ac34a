package vuego

import "github.com/vuego-dev/vuego/pkg/vdom"

// Renderer is the injected host renderer contract. The core never mutates
// host artifacts itself: Mount hands the root vnode and the container to
// the renderer, and passing a nil node tears the tree down.
type Renderer interface {
	Render(n *vdom.VNode, container Container)
}

// Hydrator is the optional hydration contract: reconstruct live bindings
// over pre-existing host markup instead of creating it fresh. Renderers
// that support it implement both interfaces.
type Hydrator interface {
	Hydrate(n *vdom.VNode, container Container)
}

// Container is a host mount target. The mounted-app back-reference is the
// private marker the core uses to detect double mounts and to clean up on
// unmount; a nil value means "no application mounted here".
type Container interface {
	MountedApp() any
	SetMountedApp(app any)
}

// DevtoolsHook receives application lifecycle notifications. Calls are
// fire-and-forget: panics are swallowed and never affect mount success.
type DevtoolsHook interface {
	AppInit(app *App, version string)
	AppUnmount(app *App)
}
