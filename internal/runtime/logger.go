package runtime

import (
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log/global"
)

// NewLogger installs and returns the default logger for env.
// Records go to the otel log provider, and to stderr as well in development.
func NewLogger(name string, env Env) *slog.Logger {
	var handler slog.Handler
	handler = otelslog.NewHandler(name, otelslog.WithLoggerProvider(global.GetLoggerProvider()))

	if env == Development {
		handler = slogmulti.Fanout(handler, slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
