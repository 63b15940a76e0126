package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards everything. Tests inject it
// wherever a component wants a *slog.Logger, keeping output readable.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
