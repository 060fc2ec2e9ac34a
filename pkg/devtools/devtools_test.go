package devtools

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/embedded"

	"github.com/vuego-dev/vuego"
	"github.com/vuego-dev/vuego/pkg/vdom"
)

// recorded is one span start captured by the recording provider.
type recorded struct {
	tracer string
	name   string
	attrs  []attribute.KeyValue
}

type recordingProvider struct {
	embedded.TracerProvider
	spans *[]recorded
}

func (p *recordingProvider) Tracer(name string, _ ...trace.TracerOption) trace.Tracer {
	return &recordingTracer{name: name, spans: p.spans}
}

type recordingTracer struct {
	embedded.Tracer
	name  string
	spans *[]recorded
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	config := trace.NewSpanStartConfig(opts...)
	*t.spans = append(*t.spans, recorded{
		tracer: t.name,
		name:   name,
		attrs:  config.Attributes(),
	})
	return ctx, trace.SpanFromContext(ctx)
}

// installRecorder swaps in a recording tracer provider for the test.
func installRecorder(t *testing.T) *[]recorded {
	t.Helper()
	var spans []recorded
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(&recordingProvider{spans: &spans})
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return &spans
}

func attrValue(attrs []attribute.KeyValue, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range attrs {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestHookEmitsInitSpan(t *testing.T) {
	spans := installRecorder(t)

	hook := New()
	app := vuego.CreateApp(vdom.Func(func() *vdom.VNode {
		return vdom.Text("x")
	}), nil)
	hook.AppInit(app, vuego.Version)

	if len(*spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(*spans))
	}
	span := (*spans)[0]
	if span.name != "vuego.app.init" {
		t.Errorf("span name = %q", span.name)
	}
	if span.tracer != "vuego" {
		t.Errorf("tracer name = %q, want default", span.tracer)
	}
	if v, ok := attrValue(span.attrs, "vuego.version"); !ok || v.AsString() != vuego.Version {
		t.Errorf("version attribute = %v, %v", v, ok)
	}
	if v, ok := attrValue(span.attrs, "vuego.app_uid"); !ok || v.AsInt64() != int64(app.UID()) {
		t.Errorf("uid attribute = %v, %v", v, ok)
	}
}

func TestHookEmitsUnmountSpan(t *testing.T) {
	spans := installRecorder(t)

	New().AppUnmount(nil)

	if len(*spans) != 1 || (*spans)[0].name != "vuego.app.unmount" {
		t.Fatalf("spans = %+v, want single unmount", *spans)
	}
	if _, ok := attrValue((*spans)[0].attrs, "vuego.app_uid"); ok {
		t.Errorf("nil app should not carry a uid attribute")
	}
}

func TestHookTracerName(t *testing.T) {
	spans := installRecorder(t)

	New(WithTracerName("my-app")).AppUnmount(nil)

	if len(*spans) != 1 || (*spans)[0].tracer != "my-app" {
		t.Errorf("tracer = %+v, want my-app", *spans)
	}
}

func TestHookFilterSkips(t *testing.T) {
	spans := installRecorder(t)

	hook := New(WithFilter(func(app *vuego.App) bool { return false }))
	hook.AppInit(nil, vuego.Version)
	hook.AppUnmount(nil)

	if len(*spans) != 0 {
		t.Errorf("filtered hook emitted %d spans", len(*spans))
	}
}

func TestHookAttributeExtractor(t *testing.T) {
	spans := installRecorder(t)

	hook := New(WithAttributeExtractor(func(app *vuego.App) []attribute.KeyValue {
		return []attribute.KeyValue{attribute.String("deploy.env", "test")}
	}))
	hook.AppUnmount(nil)

	if v, ok := attrValue((*spans)[0].attrs, "deploy.env"); !ok || v.AsString() != "test" {
		t.Errorf("custom attribute missing: %+v", (*spans)[0].attrs)
	}
}
