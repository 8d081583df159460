package logger_i

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/akolanti/PdfSummaryAPI/internal/config"
)

type Logger struct {
	inner *slog.Logger
}

// Init installs the process wide slog handler: JSON at info level in prod, text at debug level otherwise.
func Init(isProd bool) {
	slog.SetDefault(slog.New(newHandler(os.Stdout, isProd)))
}

func newHandler(w io.Writer, isProd bool) slog.Handler {
	options := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	if isProd {
		options.Level = config.LOG_LEVEL_PROD
		options.AddSource = true
		return slog.NewJSONHandler(w, options)
	}
	return slog.NewTextHandler(w, options)
}

func NewLogger(section string) *Logger {
	return &Logger{
		inner: slog.Default().With("component", section),
	}
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args...)
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args...)
}

// log records the caller of Info/Error/Warn/Debug as the source, not this wrapper.
func (l *Logger) log(level slog.Level, msg string, args ...any) {
	ctx := context.Background()
	if !l.inner.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // skip [Callers, log, Info/Error/Warn/Debug]
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.inner.Handler().Handle(ctx, r)
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		inner: l.inner.With(args...),
	}
}

// FromContext returns a child logger tagged with the trace id carried by ctx, if any.
func (l *Logger) FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}
	if trace, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok && trace != "" {
		return l.With("traceId", trace)
	}
	return l
}
