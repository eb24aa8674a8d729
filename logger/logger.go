package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Logger struct {
	service  string
	hostname string
	handler  *slog.Logger
}

func New(service, level string) *Logger {
	return NewWithWriter(os.Stdout, service, level)
}

func NewWithWriter(w io.Writer, service, level string) *Logger {
	hostname, _ := os.Hostname()
	h := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
	return &Logger{service: service, hostname: hostname, handler: h}
}

// Discard ใช้ในเทสต์
func Discard() *Logger {
	return NewWithWriter(io.Discard, "test", "error")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

func (l *Logger) attrs(action, requestID string, extra []slog.Attr) []slog.Attr {
	out := []slog.Attr{
		slog.String("service", l.service),
		slog.String("hostname", l.hostname),
		slog.String("action", action),
	}
	if requestID != "" {
		out = append(out, slog.String("request_id", requestID))
	}
	return append(out, extra...)
}

func (l *Logger) Debug(action, requestID, msg string, extra ...slog.Attr) {
	l.handler.LogAttrs(context.Background(), slog.LevelDebug, msg, l.attrs(action, requestID, extra)...)
}

func (l *Logger) Info(action, requestID, msg string, extra ...slog.Attr) {
	l.handler.LogAttrs(context.Background(), slog.LevelInfo, msg, l.attrs(action, requestID, extra)...)
}

func (l *Logger) Warn(action, requestID, msg string, extra ...slog.Attr) {
	l.handler.LogAttrs(context.Background(), slog.LevelWarn, msg, l.attrs(action, requestID, extra)...)
}

func (l *Logger) Error(action, requestID, msg string, err error, extra ...slog.Attr) {
	if err != nil {
		extra = append(extra, slog.String("error", err.Error()))
	}
	l.handler.LogAttrs(context.Background(), slog.LevelError, msg, l.attrs(action, requestID, extra)...)
}
