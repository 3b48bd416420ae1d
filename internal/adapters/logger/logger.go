// Package logger implements the host logger on log/slog and the adapter that
// plugins log through.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/droidpack/internal/core/domain"
)

// ErrorKey is the attribute key a cause is logged under.
const ErrorKey = "error"

// Logger is the host logger. It satisfies ports.HostLogger.
type Logger struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	level    *slog.LevelVar
	jsonMode bool
	output   io.Writer
}

// New creates a Logger writing pretty output to stderr at lifecycle level.
func New() *Logger {
	l := &Logger{
		level:  &slog.LevelVar{},
		output: os.Stderr,
	}
	l.level.Set(domain.LevelLifecycle)
	l.logger = slog.New(l.newHandler())
	return l
}

func (l *Logger) newHandler() slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       l.level,
		ReplaceAttr: replaceLevelName,
	}
	if l.jsonMode {
		return slog.NewJSONHandler(l.output, opts)
	}
	return NewPrettyHandler(l.output, opts)
}

// replaceLevelName prints the lifecycle level by name instead of INFO+2.
func replaceLevelName(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok {
		a.Value = slog.StringValue(domain.LevelName(level))
	}
	return a
}

// SetOutput updates the output destination, keeping the current mode.
// A nil writer selects stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.newHandler())
}

// SetJSON switches between JSON and pretty output.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(l.newHandler())
}

// SetLevel sets the minimum level that is written.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// Level returns the minimum level that is written.
func (l *Logger) Level() slog.Level {
	return l.level.Level()
}

// Enabled reports whether records at level are written.
func (l *Logger) Enabled(ctx context.Context, level slog.Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.logger.Enabled(ctx, level)
}

// Log writes a record at level.
func (l *Logger) Log(ctx context.Context, level slog.Level, msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Log(ctx, level, msg, args...)
}

// Error renders a failed command: the error message followed by its causes.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", ErrorKey, err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}
