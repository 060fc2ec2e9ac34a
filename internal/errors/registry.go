package errors

// ErrorTemplate defines a registered diagnostic type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps diagnostic codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Usage diagnostics (W001-W099)
	// ============================================

	"W001": {
		Category:   CategoryUsage,
		Message:    "Invalid vnode type",
		Detail:     "The node factory received a type descriptor it cannot classify. A comment node is substituted.",
		Suggestion: "Pass a tag string, a type marker, or a component definition.",
	},
	"W002": {
		Category:   CategoryUsage,
		Message:    "Plugin already installed",
		Detail:     "Use() was called twice with the same plugin. The second install is a no-op.",
		Suggestion: "Install each plugin once per application.",
	},
	"W003": {
		Category:   CategoryUsage,
		Message:    "Component name already registered",
		Detail:     "Registering a component under a name that is already taken overwrites the previous definition.",
		Suggestion: "Use a unique name, or intend the overwrite.",
	},
	"W004": {
		Category:   CategoryUsage,
		Message:    "Directive name already registered",
		Detail:     "Registering a directive under a name that is already taken overwrites the previous definition.",
		Suggestion: "Use a unique name, or intend the overwrite.",
	},
	"W005": {
		Category:   CategoryUsage,
		Message:    "Provided key overwritten",
		Detail:     "Provide() was called with a key the application already provides. The new value silently wins for later injections.",
		Suggestion: "Provide each key once, or intend the overwrite.",
	},
	"W006": {
		Category:   CategoryUsage,
		Message:    "Invalid NaN key",
		Detail:     "A vnode key must equal itself; NaN never does, so this node can never be matched during diffing.",
		Suggestion: "Use a stable string or integer key.",
	},
	"W007": {
		Category:   CategoryUsage,
		Message:    "Config replacement attempt",
		Detail:     "The application config object cannot be replaced wholesale; mutate its fields instead.",
		Suggestion: "Set individual config fields on app.Config().",
	},
	"W008": {
		Category:   CategoryUsage,
		Message:    "Reactive object used as component type",
		Detail:     "A component definition wrapped in a reactive proxy forces needless re-renders.",
		Suggestion: "Pass the raw definition.",
	},
	"W009": {
		Category:   CategoryUsage,
		Message:    "Mixin on a non-options build",
		Detail:     "Mixin() only applies to options-API component definitions; the call is a no-op here.",
		Suggestion: "Use composition helpers instead of mixins.",
	},
	"W010": {
		Category:   CategoryUsage,
		Message:    "Invalid root props",
		Detail:     "Root props must be object-shaped or nil; the value was ignored.",
		Suggestion: "Pass a Props map or nil.",
	},

	// ============================================
	// Mount diagnostics (W100-W199)
	// ============================================

	"W100": {
		Category:   CategoryMount,
		Message:    "Host container already has a mounted application",
		Detail:     "Mount() was called on a container that another application instance is mounted into. The first mount's artifacts are left untouched.",
		Suggestion: "Unmount the previous application first, or use a different container.",
	},
	"W101": {
		Category:   CategoryMount,
		Message:    "Application already mounted",
		Detail:     "Mount() was called twice on the same application. The second call is a no-op.",
		Suggestion: "Mount each application once.",
	},
	"W102": {
		Category:   CategoryMount,
		Message:    "Unmount on an application that is not mounted",
		Detail:     "Unmount() was called before Mount(), or after a previous Unmount(). The call is a no-op.",
		Suggestion: "Only unmount a mounted application.",
	},
	"W103": {
		Category:   CategoryMount,
		Message:    "Hydration requested but no hydrator injected",
		Detail:     "The injected renderer does not implement hydration; a fresh render pass was performed instead.",
		Suggestion: "Inject a renderer that implements the Hydrator interface.",
	},

	// ============================================
	// Hook diagnostics (W200-W299)
	// ============================================

	"W200": {
		Category:   CategoryHook,
		Message:    "Error thrown in lifecycle hook",
		Detail:     "A lifecycle or vnode hook panicked. The error was routed to the application error handler.",
		Suggestion: "Handle errors inside the hook, or install config.ErrorHandler.",
	},
}
