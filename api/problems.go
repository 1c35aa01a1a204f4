package api

import (
	"log/slog"
	"net/http"

	"github.com/3lvia/problemdetails"
	"github.com/3lvia/problemdetails/internal/observability"
	"github.com/3lvia/problemdetails/render"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// Abort records err on the context and stops the handler chain.
// The Problems middleware renders the error once the chain unwinds.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// Problems renders the last error of a request as problem details.
//
// Errors carrying a problem are rendered with its status. Any other error is rendered as
// 500 Internal Server Error. The error text, which holds the internal message and the cause,
// is only logged and recorded on the span.
func Problems() gin.HandlerFunc {
	counter, err := observability.NewProblemCounter()
	if err != nil {
		slog.Error("failed to create problem counter", "error", err)
		counter = noop.Int64Counter{}
	}

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		ctx := c.Request.Context()
		err := c.Errors.Last().Err

		if c.Writer.Written() {
			slog.WarnContext(ctx, "error after response was written",
				"status", c.Writer.Status(),
				"path", c.Request.URL.Path,
				"error", err,
			)
			return
		}

		p, ok := problemdetails.From(err)
		if !ok {
			p = problemdetails.MustNew(
				nil,
				requestInstance(c),
				http.StatusText(http.StatusInternalServerError),
				"the server could not handle the request",
				http.StatusInternalServerError)
		}

		doc := render.NewDocument(p)
		status := doc.Status

		slog.Log(ctx, observability.ProblemLevel(status), "request failed",
			"status", status,
			"title", doc.Title,
			"instance", doc.Instance,
			"error", err,
		)

		span := trace.SpanFromContext(ctx)
		span.RecordError(err)
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, doc.Title)
		}

		counter.Add(ctx, 1, metric.WithAttributes(attribute.Int("http.status_code", status)))

		c.Render(status, render.D(p))
	}
}
