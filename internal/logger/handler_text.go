package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

// ColorTextHandler is a slog.Handler that renders human-readable log lines,
// optionally colorized for terminals.
type ColorTextHandler struct {
	opts     *slog.HandlerOptions
	useColor bool

	mu    sync.Mutex
	w     io.Writer
	attrs []slog.Attr
	group string
}

// NewColorTextHandler creates a text handler writing to w.
func NewColorTextHandler(w io.Writer, opts *slog.HandlerOptions, useColor bool) *ColorTextHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &ColorTextHandler{
		opts:     opts,
		useColor: useColor,
		w:        w,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *ColorTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

// Handle formats and writes the record.
func (h *ColorTextHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	if h.useColor {
		b.WriteString(colorGray)
	}
	b.WriteString(r.Time.Format(time.RFC3339))
	if h.useColor {
		b.WriteString(colorReset)
	}
	b.WriteByte(' ')

	b.WriteString(h.formatLevel(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	for _, attr := range h.attrs {
		h.appendAttr(&b, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		h.appendAttr(&b, attr)
		return true
	})

	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

// WithAttrs returns a handler whose attributes include both h's and attrs.
func (h *ColorTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := &ColorTextHandler{
		opts:     h.opts,
		useColor: h.useColor,
		w:        h.w,
		attrs:    append(append([]slog.Attr{}, h.attrs...), attrs...),
		group:    h.group,
	}
	return clone
}

// WithGroup returns a handler with the given group prefix.
func (h *ColorTextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := &ColorTextHandler{
		opts:     h.opts,
		useColor: h.useColor,
		w:        h.w,
		attrs:    h.attrs,
		group:    h.group,
	}
	if clone.group != "" {
		clone.group += "." + name
	} else {
		clone.group = name
	}
	return clone
}

func (h *ColorTextHandler) formatLevel(level slog.Level) string {
	var label, color string
	switch {
	case level >= slog.LevelError:
		label, color = "ERROR", colorRed
	case level >= slog.LevelWarn:
		label, color = "WARN ", colorYellow
	case level >= slog.LevelInfo:
		label, color = "INFO ", colorGreen
	default:
		label, color = "DEBUG", colorCyan
	}
	if !h.useColor {
		return label
	}
	return color + label + colorReset
}

func (h *ColorTextHandler) appendAttr(b *strings.Builder, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	key := attr.Key
	if h.group != "" {
		key = h.group + "." + key
	}

	b.WriteByte(' ')
	if h.useColor {
		b.WriteString(colorCyan)
	}
	b.WriteString(key)
	b.WriteByte('=')
	if h.useColor {
		b.WriteString(colorReset)
	}

	switch attr.Value.Kind() {
	case slog.KindString:
		s := attr.Value.String()
		if strings.ContainsAny(s, " \t\"") {
			b.WriteString(fmt.Sprintf("%q", s))
		} else {
			b.WriteString(s)
		}
	default:
		b.WriteString(attr.Value.String())
	}
}
