// internal/logging/logger.go
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
)

// nopHandler отбрасывает все записи, Enabled возвращает false — форматирование не выполняется
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger задаёт логгер для всех пакетов приложения. nil — тишина.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger возвращает текущий логгер. По умолчанию он ничего не пишет.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// ParseLevel разбирает уровень логирования: debug, info, warn, error
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
