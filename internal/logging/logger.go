// Package logging provides structured logging configuration using log/slog.
//
// Every invocation of the tool is one "run"; WithRun mints a short run
// ID so log entries from a single run can be correlated when output from
// several invocations lands in the same place.
package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
//
// Logs go to stderr so they never mix with file content on stdout.
func Setup(level, format string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRun returns a logger carrying a fresh short run ID plus the given
// structured fields. Use one WithRun logger per run so every entry of
// that run shares the same run_id.
//
// Usage:
//
//	log := logging.WithRun("mode", "dedup", "target", path)
//	log.Info("run started")
func WithRun(args ...any) *slog.Logger {
	runID := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return slog.Default().With("run_id", runID).With(args...)
}
