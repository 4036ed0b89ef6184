package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log/global"
)

const instrumentationName = "simple-blog"

// Logger is replaced by Init; the default keeps packages usable before initialization.
var Logger = slog.Default()

// Init initializes the logger with stdout output only
func Init() *slog.Logger {
	return InitWithOTel(false)
}

// InitWithOTel initializes the logger; when enableOTel is set records are also
// exported through the global OTel logger provider.
func InitWithOTel(enableOTel bool) *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))

	Logger = slog.New(newHandler(os.Stdout, level, enableOTel))
	slog.SetDefault(Logger)
	GlobalContext = NewContextLogger(Logger)

	Logger.Info("Logger initialized", "otel_enabled", enableOTel, "level", level.String())
	return Logger
}

func newHandler(w io.Writer, level slog.Level, enableOTel bool) slog.Handler {
	jsonHandler := NewTraceContextHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	if !enableOTel {
		return jsonHandler
	}
	return NewMultiHandler(
		jsonHandler,
		&levelHandler{
			level: level,
			inner: otelslog.NewHandler(instrumentationName, otelslog.WithLoggerProvider(global.GetLoggerProvider())),
		},
	)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// levelHandler applies the configured minimum level to a handler that has none of its own.
type levelHandler struct {
	level slog.Level
	inner slog.Handler
}

func (h *levelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level && h.inner.Enabled(ctx, level)
}

func (h *levelHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.inner.Handle(ctx, r)
}

func (h *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelHandler{level: h.level, inner: h.inner.WithAttrs(attrs)}
}

func (h *levelHandler) WithGroup(name string) slog.Handler {
	return &levelHandler{level: h.level, inner: h.inner.WithGroup(name)}
}
