package tracemsg

import (
	"context"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// NewHeader returns a header carrying the trace context of ctx.
func NewHeader(ctx context.Context) nats.Header {
	return Inject(ctx, make(nats.Header))
}

// Extract returns ctx with the trace context found in header.
func Extract(ctx context.Context, header nats.Header) context.Context {
	if header == nil {
		return ctx
	}
	return otel.GetTextMapPropagator().Extract(ctx, propagation.HeaderCarrier(header))
}

// Inject adds the trace context of ctx to header and returns it.
func Inject(ctx context.Context, header nats.Header) nats.Header {
	if header == nil {
		header = make(nats.Header)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(header))
	return header
}
