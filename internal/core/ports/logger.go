package ports

import (
	"context"
	"log/slog"
)

// HostLogger is the host's leveled logger. *slog.Logger satisfies it.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type HostLogger interface {
	// Enabled reports whether records at level are emitted.
	Enabled(ctx context.Context, level slog.Level) bool
	// Log emits msg at level with optional key/value attributes.
	Log(ctx context.Context, level slog.Level, msg string, args ...any)
}

// Logger is the four-severity logger used by plugins and the application.
type Logger interface {
	// Error logs a message at error severity. A non-nil cause is attached to the record.
	Error(cause error, msg string, args ...any)
	// Warning logs a message at warning severity.
	Warning(msg string, args ...any)
	// Info logs a message that is always shown to the user.
	Info(msg string, args ...any)
	// Verbose logs a detailed diagnostic message that is hidden by default.
	Verbose(msg string, args ...any)
}
