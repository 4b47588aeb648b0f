// SPDX-License-Identifier: MIT
// Package ctxlog carries the command's *slog.Logger through a context.Context.
package ctxlog

import (
	"context"
	"log/slog"
	"os"
)

type ctxKey struct{}

// quiet serves code paths that run without the root command, such as a
// subcommand executed directly in tests. It writes warnings and errors to
// stderr and drops everything below.
var quiet = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or a warn-level
// stderr logger when ctx holds none.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return quiet
	}
	if logger, _ := ctx.Value(ctxKey{}).(*slog.Logger); logger != nil {
		return logger
	}

	return quiet
}
