package observability

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const ProblemsRenderedMetric = "problems.rendered"

// NewProblemCounter returns the counter of problems rendered to clients, from the global meter provider.
func NewProblemCounter() (metric.Int64Counter, error) {
	return otel.Meter(TracerName).Int64Counter(ProblemsRenderedMetric,
		metric.WithDescription("Number of problem details rendered to clients"),
		metric.WithUnit("{problem}"),
	)
}
