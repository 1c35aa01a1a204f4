package observability

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/log"
)

const logLevelKey = "OTEL_LOG_LEVEL"

var getSeverity = sync.OnceValue(func() log.Severity {
	return parseSeverity(os.Getenv(logLevelKey))
})

// parseSeverity returns log.SeverityUndefined for unknown levels.
func parseSeverity(level string) log.Severity {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return log.SeverityInfo
	case "debug":
		return log.SeverityDebug
	case "warn", "warning":
		return log.SeverityWarn
	case "error":
		return log.SeverityError
	}
	return log.SeverityUndefined
}

// EnvSeverity reads the minimum exported log severity from OTEL_LOG_LEVEL.
type EnvSeverity struct{}

func (EnvSeverity) Severity() log.Severity { return getSeverity() }

// ProblemLevel is the log level for a problem rendered with status.
// Client errors are warnings, everything else is an error.
func ProblemLevel(status int) slog.Level {
	if status >= 400 && status < 500 {
		return slog.LevelWarn
	}
	return slog.LevelError
}
