// Package devtools bridges application lifecycle events to
// OpenTelemetry. The Hook implements the root package's DevtoolsHook and
// emits a span per lifecycle event, so app mounts and unmounts show up
// in the same trace backend as the rest of the service.
//
// The tracer uses the global OpenTelemetry tracer provider. Configure it
// in your main() before mounting:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithBatcher(exporter),
//	)
//	otel.SetTracerProvider(tp)
//
//	app := vuego.CreateApp(root, nil,
//	    vuego.WithDevtools(devtools.New()),
//	)
package devtools

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vuego-dev/vuego"
)

// Default tracer name for runtime lifecycle spans.
const defaultTracerName = "vuego"

// Config configures the OpenTelemetry hook.
type Config struct {
	// TracerName is the name of the tracer (default: "vuego").
	TracerName string

	// Filter determines which apps to trace. Return true to trace the
	// event, false to skip. If nil, all events are traced.
	Filter func(app *vuego.App) bool

	// AttributeExtractor extracts custom attributes from the app.
	// Called for each traced event.
	AttributeExtractor func(app *vuego.App) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// Option configures the OpenTelemetry hook.
type Option func(*Config)

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithFilter sets a filter function for apps.
func WithFilter(filter func(app *vuego.App) bool) Option {
	return func(c *Config) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(app *vuego.App) []attribute.KeyValue) Option {
	return func(c *Config) {
		c.AttributeExtractor = extractor
	}
}

func defaultConfig() Config {
	return Config{
		TracerName: defaultTracerName,
	}
}

// Hook emits OpenTelemetry spans for application lifecycle events.
type Hook struct {
	config Config
}

// New creates a Hook. The tracer is resolved from the global provider at
// construction time.
func New(opts ...Option) *Hook {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)
	return &Hook{config: config}
}

// AppInit implements the root package's DevtoolsHook. It records an
// "app.init" span carrying the app UID and runtime version.
func (h *Hook) AppInit(app *vuego.App, version string) {
	h.emit(app, "vuego.app.init", attribute.String("vuego.version", version))
}

// AppUnmount implements the root package's DevtoolsHook.
func (h *Hook) AppUnmount(app *vuego.App) {
	h.emit(app, "vuego.app.unmount")
}

// emit records a point-in-time span for one lifecycle event.
func (h *Hook) emit(app *vuego.App, name string, extra ...attribute.KeyValue) {
	if h.config.Filter != nil && !h.config.Filter(app) {
		return
	}

	attrs := extra
	if app != nil {
		attrs = append(attrs, attribute.Int64("vuego.app_uid", int64(app.UID())))
	}
	if h.config.AttributeExtractor != nil {
		attrs = append(attrs, h.config.AttributeExtractor(app)...)
	}

	_, span := h.config.tracer.Start(
		context.Background(),
		name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	span.End()
}

var _ vuego.DevtoolsHook = (*Hook)(nil)
