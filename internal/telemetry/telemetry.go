// Package telemetry wires map generation spans to an OTLP collector.
//
// Generators always ask the global provider for their tracer. Until Setup or
// Install registers an SDK provider that is the otel no-op provider, so spans
// cost nothing when no collector is configured.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName = "roguegen"
	endpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

// Version is reported as service.version. Set it with -ldflags at build time.
var Version = "dev"

// ShutdownFunc flushes pending spans and stops the installed provider.
type ShutdownFunc func(context.Context) error

// Enabled reports whether an OTLP endpoint is configured.
func Enabled() bool {
	return os.Getenv(endpointEnv) != ""
}

// Setup exports generation spans over OTLP/HTTP when an endpoint is configured.
// The exporter picks up the remaining OTEL_* variables itself. Without an
// endpoint Setup installs nothing and returns a shutdown that does nothing.
func Setup(ctx context.Context) (ShutdownFunc, error) {
	if !Enabled() {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx)
	if err != nil {
		return nil, err
	}

	tp := Install(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return tp.Shutdown, nil
}

// newResource describes this process. It is not merged with resource.Default()
// because the two schema URLs can conflict.
func newResource(ctx context.Context) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", Version),
			attribute.String("service.namespace", "procgen"),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
}

// Install registers a tracer provider built from opts as the global provider.
// Tests pass a span recorder here.
func Install(opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp
}

// Tracer returns the tracer for a component, such as "procgen" or "game".
func Tracer(component string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + component)
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}
