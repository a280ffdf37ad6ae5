package logging

import (
	"io"
	"log/slog"
	"os"
)

// New builds the slog logger the validator CLI uses for diagnostics. Output
// goes to Stderr so a piped validation report on Stdout stays clean, and
// attribute keys are normalized through normalizeKeys.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: normalizeKeys,
	}))
}

// normalizeKeys shortens the "error" attribute to "err" so error lines keep
// one spelling across the codebase.
func normalizeKeys(groups []string, a slog.Attr) slog.Attr {
	if a.Key == "error" {
		a.Key = "err"
	}
	return a
}

// NewNop returns a logger that discards everything. It is the default until
// the verbose flag swaps in a real one.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
