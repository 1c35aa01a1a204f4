package observability

import (
	"context"

	"github.com/3lvia/problemdetails/internal/runtime"
	"go.opentelemetry.io/contrib/processors/minsev"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// synchronous reports whether telemetry is exported as it is produced instead of in batches.
func synchronous(env runtime.Env) bool {
	return env == runtime.Development || env == runtime.Test
}

func newTraceProvider(ctx context.Context, r *resource.Resource, env runtime.Env) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	export := sdktrace.WithBatcher(exporter)
	if synchronous(env) {
		export = sdktrace.WithSyncer(exporter)
	}

	return sdktrace.NewTracerProvider(sdktrace.WithResource(r), export), nil
}

func newLoggerProvider(ctx context.Context, r *resource.Resource, env runtime.Env) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	var processor sdklog.Processor = sdklog.NewBatchProcessor(exporter)
	if synchronous(env) {
		processor = sdklog.NewSimpleProcessor(exporter)
	}

	return sdklog.NewLoggerProvider(
		sdklog.WithResource(r),
		sdklog.WithProcessor(minsev.NewLogProcessor(processor, EnvSeverity{})),
	), nil
}

// newMetricsProvider exposes metrics to the prometheus handler served on /metrics.
func newMetricsProvider(r *resource.Resource) (*sdkmetric.MeterProvider, error) {
	reader, err := prometheus.New()
	if err != nil {
		return nil, err
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(r),
		sdkmetric.WithReader(reader),
	), nil
}
