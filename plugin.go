package vuego

// Plugin extends an application: registering components and directives,
// providing values, or wrapping config. Install runs exactly once per
// plugin identity per app.
type Plugin interface {
	Install(app *App)
}

// PluginFunc adapts a plain function to the Plugin interface.
type PluginFunc func(app *App)

// Install implements Plugin.
func (f PluginFunc) Install(app *App) { f(app) }
