package observability

import (
	"context"
	"errors"

	"github.com/3lvia/problemdetails/internal/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const TraceNamespace = "ice"
const TracerName = "github.com/3lvia/problemdetails"

// ServiceName returns the otel service name for a service in the ice namespace.
func ServiceName(name string) string {
	return TraceNamespace + "." + name
}

func newResource(service string, env runtime.Env) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(ServiceName(service)),
			semconv.ServiceNamespace(TraceNamespace),
			semconv.DeploymentEnvironment(string(env)),
		))
}

type shutdowns []func(context.Context) error

// run stops the providers in reverse order of installation.
func (s shutdowns) run(ctx context.Context) error {
	var err error
	for i := len(s) - 1; i >= 0; i-- {
		err = errors.Join(err, s[i](ctx))
	}
	return err
}

// Configure installs the global propagator and the trace, log and metric providers for the service.
// The returned shutdown flushes and stops the providers.
func Configure(ctx context.Context, service string, env runtime.Env) (func(context.Context) error, error) {
	r, err := newResource(service, env)
	if err != nil {
		return nil, err
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	var installed shutdowns

	tracerProvider, err := newTraceProvider(ctx, r, env)
	if err != nil {
		return nil, errors.Join(err, installed.run(ctx))
	}
	otel.SetTracerProvider(tracerProvider)
	installed = append(installed, tracerProvider.Shutdown)

	loggerProvider, err := newLoggerProvider(ctx, r, env)
	if err != nil {
		return nil, errors.Join(err, installed.run(ctx))
	}
	global.SetLoggerProvider(loggerProvider)
	installed = append(installed, loggerProvider.Shutdown)

	meterProvider, err := newMetricsProvider(r)
	if err != nil {
		return nil, errors.Join(err, installed.run(ctx))
	}
	otel.SetMeterProvider(meterProvider)
	installed = append(installed, meterProvider.Shutdown)

	return installed.run, nil
}
