package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
)

type Options struct {
	Level     slog.Level
	AddSource bool
}

var DefaultOptions = Options{Level: slog.LevelInfo}

// Err is the conventional attribute for attaching an error to a log record.
func Err(err error) slog.Attr {
	return slog.Any("error", err)
}

type handler struct {
	opts  Options
	mu    *sync.Mutex
	out   io.Writer
	attrs []slog.Attr
	group string
}

// NewHandler returns a slog handler writing human-readable colored lines.
func NewHandler(out io.Writer, opts Options) slog.Handler {
	return &handler{
		opts: opts,
		mu:   &sync.Mutex{},
		out:  out,
	}
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	sb.WriteString(r.Time.Format("15:04:05.000"))
	sb.WriteByte(' ')
	sb.WriteString(levelString(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&sb, h.group, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.group, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &h2
}

func (h *handler) WithGroup(name string) slog.Handler {
	h2 := *h
	if h2.group != "" {
		h2.group += "."
	}
	h2.group += name
	return &h2
}

func writeAttr(sb *strings.Builder, group string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	sb.WriteByte(' ')
	sb.WriteString(color.CyanString(key))
	sb.WriteByte('=')
	sb.WriteString(fmt.Sprintf("%v", a.Value.Resolve().Any()))
}

func levelString(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return color.RedString("ERR")
	case l >= slog.LevelWarn:
		return color.YellowString("WRN")
	case l >= slog.LevelInfo:
		return color.GreenString("INF")
	default:
		return color.WhiteString("DBG")
	}
}
