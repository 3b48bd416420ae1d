package domain

import (
	"log/slog"
	"strings"

	"go.trai.ch/zerr"
)

// LevelLifecycle sits between info and warn. Lifecycle messages are shown by default,
// info messages only when the user asks for more detail.
const LevelLifecycle slog.Level = 2

// ErrInvalidLogLevel is returned when a log level name is not recognized.
var ErrInvalidLogLevel = zerr.New("invalid log level, expected 'debug', 'info', 'lifecycle', 'warn' or 'error'")

// ParseLevel converts a level name into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "lifecycle":
		return LevelLifecycle, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, zerr.With(ErrInvalidLogLevel, "level", s)
	}
}

// LevelName returns the display name of a level, including LIFECYCLE.
func LevelName(l slog.Level) string {
	if l == LevelLifecycle {
		return "LIFECYCLE"
	}
	return l.String()
}

// TaskStatus represents the outcome of a scheduled task.
type TaskStatus string

const (
	// TaskStatusPending indicates the task is waiting for dependencies.
	TaskStatusPending TaskStatus = "pending"
	// TaskStatusRunning indicates the task is executing.
	TaskStatusRunning TaskStatus = "running"
	// TaskStatusCompleted indicates the task executed successfully.
	TaskStatusCompleted TaskStatus = "completed"
	// TaskStatusFailed indicates the task execution failed.
	TaskStatusFailed TaskStatus = "failed"
	// TaskStatusUpToDate indicates the task was skipped because its inputs did not change.
	TaskStatusUpToDate TaskStatus = "up-to-date"
)

// IsTerminal reports whether the status is final.
func (s TaskStatus) IsTerminal() bool {
	switch s {
	case TaskStatusCompleted, TaskStatusFailed, TaskStatusUpToDate:
		return true
	default:
		return false
	}
}
