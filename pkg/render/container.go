package render

// Container is an in-memory host mount target: the rendered markup plus
// the mounted-application back-reference the core uses to detect double
// mounts. It satisfies the root package's Container interface.
type Container struct {
	// HTML is the currently rendered markup.
	HTML string

	app any
}

// NewContainer returns an empty host container.
func NewContainer() *Container {
	return &Container{}
}

// MountedApp returns the application mounted here, nil when none.
func (c *Container) MountedApp() any {
	return c.app
}

// SetMountedApp records the application back-reference. Pass nil on
// unmount to break the cycle.
func (c *Container) SetMountedApp(app any) {
	c.app = app
}
