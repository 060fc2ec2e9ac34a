// Package metrics exposes Prometheus instrumentation for the runtime
// core: node construction, block tracking, and application lifecycle.
//
// A Collector implements both vdom.PassObserver and the root package's
// DevtoolsHook, so one instance wires into an App via WithObserver and
// WithDevtools:
//
//	collector := metrics.New(metrics.WithNamespace("myapp"))
//	app := vuego.CreateApp(root, nil,
//	    vuego.WithObserver(collector),
//	    vuego.WithDevtools(collector),
//	)
//
//	http.Handle("/metrics", promhttp.Handler())
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vuego-dev/vuego"
	"github.com/vuego-dev/vuego/pkg/vdom"
)

// Config configures the Prometheus collector.
type Config struct {
	// Namespace is the metrics namespace (default: "vuego").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the Prometheus collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the render duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace:   "vuego",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// Collector holds the Prometheus metrics for the runtime core.
type Collector struct {
	nodesCreated   *prometheus.CounterVec
	nodesTracked   prometheus.Counter
	blocksOpened   prometheus.Counter
	appMounts      prometheus.Counter
	appUnmounts    prometheus.Counter
	renderDuration prometheus.Histogram
}

// New creates a Collector registered with the configured registry.
//
// Metrics collected:
//   - vuego_nodes_created_total: Counter of vnodes created, by kind
//   - vuego_nodes_tracked_total: Counter of nodes registered as dynamic
//   - vuego_blocks_opened_total: Counter of blocks opened
//   - vuego_app_mounts_total: Counter of application mounts
//   - vuego_app_unmounts_total: Counter of application unmounts
//   - vuego_render_duration_seconds: Histogram of render pass duration
//     (when TimeRender is used)
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Collector{
		nodesCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "nodes_created_total",
			Help:        "Total number of vnodes created, by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		nodesTracked: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "nodes_tracked_total",
			Help:        "Total number of nodes registered in a block's dynamic list",
			ConstLabels: config.ConstLabels,
		}),

		blocksOpened: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "blocks_opened_total",
			Help:        "Total number of blocks opened during render",
			ConstLabels: config.ConstLabels,
		}),

		appMounts: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "app_mounts_total",
			Help:        "Total number of application mounts",
			ConstLabels: config.ConstLabels,
		}),

		appUnmounts: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "app_unmounts_total",
			Help:        "Total number of application unmounts",
			ConstLabels: config.ConstLabels,
		}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render pass duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

// BlockOpened implements vdom.PassObserver.
func (c *Collector) BlockOpened() {
	c.blocksOpened.Inc()
}

// NodeCreated implements vdom.PassObserver.
func (c *Collector) NodeCreated(kind vdom.VKind) {
	c.nodesCreated.WithLabelValues(kind.String()).Inc()
}

// NodeTracked implements vdom.PassObserver.
func (c *Collector) NodeTracked() {
	c.nodesTracked.Inc()
}

// AppInit implements the root package's DevtoolsHook.
func (c *Collector) AppInit(app *vuego.App, version string) {
	c.appMounts.Inc()
}

// AppUnmount implements the root package's DevtoolsHook.
func (c *Collector) AppUnmount(app *vuego.App) {
	c.appUnmounts.Inc()
}

// TimeRender starts timing a render pass. The returned function observes
// the elapsed duration:
//
//	defer collector.TimeRender()()
func (c *Collector) TimeRender() func() {
	start := time.Now()
	return func() {
		c.renderDuration.Observe(time.Since(start).Seconds())
	}
}

// Interface conformance.
var (
	_ vdom.PassObserver  = (*Collector)(nil)
	_ vuego.DevtoolsHook = (*Collector)(nil)
)
