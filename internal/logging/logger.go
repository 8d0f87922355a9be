package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"shoprelay/internal/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the process logger: one JSON-per-line combined file for
// every level, one error-only file, and a console handler when not
// running in production mode.
func New(cfg config.Config) (*slog.Logger, error) {
	for _, p := range []string{cfg.CombinedLogPath, cfg.ErrorLogPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return nil, err
		}
	}

	combined := &lumberjack.Logger{Filename: cfg.CombinedLogPath}
	errorOnly := &lumberjack.Logger{Filename: cfg.ErrorLogPath}

	handlers := []slog.Handler{
		slog.NewJSONHandler(combined, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(errorOnly, &slog.HandlerOptions{Level: slog.LevelError}),
	}
	if cfg.Development() {
		handlers = append(handlers, slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	return slog.New(fanoutHandler(handlers)), nil
}

// fanoutHandler duplicates every record to each sink; each sink applies
// its own level filter.
type fanoutHandler []slog.Handler

func (h fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, sub := range h {
		if sub.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, sub := range h {
		if !sub.Enabled(ctx, record.Level) {
			continue
		}
		if err := sub.Handle(ctx, record.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (h fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanoutHandler, len(h))
	for i, sub := range h {
		out[i] = sub.WithAttrs(attrs)
	}
	return out
}

func (h fanoutHandler) WithGroup(name string) slog.Handler {
	out := make(fanoutHandler, len(h))
	for i, sub := range h {
		out[i] = sub.WithGroup(name)
	}
	return out
}
