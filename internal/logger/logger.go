// Package logger provides structured logging for the service. Adapter call
// boundaries log through this; the pure formatting path stays silent.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

type contextKey string

// RequestIDKey is the context key under which the HTTP middleware stores the
// per-request ID.
const RequestIDKey contextKey = "request_id"

// Logger wraps slog.Logger.
type Logger struct {
	*slog.Logger
}

// New builds a logger for the given environment: human-readable text at
// debug level in development, JSON at info level everywhere else.
func New(env string) *Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	var handler slog.Handler
	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return &Logger{Logger: slog.New(handler)}
}

// WithRequestID stores a request ID on the context for later extraction.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestIDFrom returns the request ID stored on ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// WithContext attaches the request ID from ctx, when present.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}
	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		return &Logger{Logger: l.With(slog.String("request_id", id))}
	}
	return l
}

// WithProvider tags every record with the upstream provider name.
func (l *Logger) WithProvider(name string) *Logger {
	return &Logger{Logger: l.With(slog.String("provider", name))}
}
