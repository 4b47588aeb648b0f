// SPDX-License-Identifier: MIT
// Package logging builds the slog.Logger used by the negpath binary: a
// colored single-line handler for terminals, or slog's JSON handler.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrBadFormat indicates a log format other than "text" or "json".
var ErrBadFormat = errors.New("logging: format must be 'text' or 'json'")

// ParseLevel maps "debug", "info", "warn" and "error" (any case) to a level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logging: invalid level %q: %w", s, err)
	}

	return l, nil
}

// New returns a logger writing to w in the given format at the given level.
func New(w io.Writer, format string, level slog.Level) (*slog.Logger, error) {
	opts := slog.HandlerOptions{Level: level}
	switch strings.ToLower(format) {
	case FormatText, "":
		return slog.New(NewPrettyHandler(w, PrettyHandlerOptions{SlogOpts: opts})), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, &opts)), nil
	default:
		return nil, fmt.Errorf("%w: got %q", ErrBadFormat, format)
	}
}

// PrettyHandlerOptions configures a PrettyHandler.
type PrettyHandlerOptions struct {
	SlogOpts slog.HandlerOptions
}

// PrettyHandler writes one colored line per record:
//
//	15:04:05.000 INFO  message key=value ...
//
// Colors are dropped when color.NoColor is set, e.g. when stdout is not a
// terminal.
type PrettyHandler struct {
	opts   slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr // pre-qualified with group names
	prefix string      // current group path, "a.b."
}

// NewPrettyHandler returns a handler writing to out.
func NewPrettyHandler(out io.Writer, opts PrettyHandlerOptions) *PrettyHandler {
	return &PrettyHandler{opts: opts.SlogOpts, out: out, mu: &sync.Mutex{}}
}

// Enabled reports whether level is at or above the configured minimum.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

// Handle formats r and writes it as a single line.
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	if !r.Time.IsZero() {
		sb.WriteString(color.HiBlackString(r.Time.Format("15:04:05.000")))
		sb.WriteByte(' ')
	}
	sb.WriteString(levelString(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&sb, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		a.Key = h.prefix + a.Key
		writeAttr(&sb, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())

	return err
}

// WithAttrs returns a handler that prints attrs on every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		next.attrs = append(next.attrs, a)
	}

	return &next
}

// WithGroup returns a handler that qualifies later keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."

	return &next
}

func levelString(l slog.Level) string {
	s := fmt.Sprintf("%-5s", l.String())
	switch {
	case l >= slog.LevelError:
		return color.RedString(s)
	case l >= slog.LevelWarn:
		return color.YellowString(s)
	case l >= slog.LevelInfo:
		return color.GreenString(s)
	default:
		return color.MagentaString(s)
	}
}

func writeAttr(sb *strings.Builder, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			ga.Key = a.Key + "." + ga.Key
			writeAttr(sb, ga)
		}
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(color.CyanString(a.Key))
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}
