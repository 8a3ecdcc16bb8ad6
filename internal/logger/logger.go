// Package logger builds the structured loggers used by the binaries.
package logger

import (
	"log/slog"
	"os"
)

// New constructs a JSON logger on stdout at the given level, tagging
// every record with the originating service name.
func New(service string, level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("service", service)
}
