package logger

import (
	"context"
	"fmt"
	"log/slog"

	"go.trai.ch/droidpack/internal/core/domain"
	"go.trai.ch/droidpack/internal/core/ports"
)

// NoMessage replaces an empty message.
const NoMessage = "[no message defined]"

// Adapter implements ports.Logger on top of a host logger. Error, Warning,
// Info and Verbose map onto ERROR, WARN, LIFECYCLE and INFO.
//
// An Adapter is immutable after construction and safe for concurrent use.
type Adapter struct {
	host ports.HostLogger
	tag  string
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithTag prefixes every message with tag and a space. An empty tag disables the prefix.
func WithTag(tag string) Option {
	return func(a *Adapter) {
		a.tag = tag
	}
}

// NewAdapter creates an Adapter forwarding to host.
func NewAdapter(host ports.HostLogger, opts ...Option) *Adapter {
	a := &Adapter{host: host}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Tagged returns a copy of the adapter using tag. The receiver is unchanged.
func (a *Adapter) Tagged(tag string) *Adapter {
	c := *a
	c.tag = tag
	return &c
}

// Tag returns the configured prefix.
func (a *Adapter) Tag() string {
	return a.tag
}

// Error logs at ERROR. A non-nil cause is attached so the host can render its chain.
func (a *Adapter) Error(cause error, msg string, args ...any) {
	a.log(slog.LevelError, cause, msg, args)
}

// Warning logs at WARN.
func (a *Adapter) Warning(msg string, args ...any) {
	a.log(slog.LevelWarn, nil, msg, args)
}

// Info logs at LIFECYCLE, which is visible by default.
func (a *Adapter) Info(msg string, args ...any) {
	a.log(domain.LevelLifecycle, nil, msg, args)
}

// Verbose logs at INFO, which is hidden by default.
func (a *Adapter) Verbose(msg string, args ...any) {
	a.log(slog.LevelInfo, nil, msg, args)
}

func (a *Adapter) log(level slog.Level, cause error, msg string, args []any) {
	ctx := context.Background()
	if !a.host.Enabled(ctx, level) {
		return
	}

	text := a.format(msg, args)
	if cause != nil {
		a.host.Log(ctx, level, text, ErrorKey, cause)
		return
	}
	a.host.Log(ctx, level, text)
}

// format applies args to msg only when there are any, so a literal '%' in an
// argument-free message survives.
func (a *Adapter) format(msg string, args []any) string {
	text := NoMessage
	if msg != "" {
		text = msg
		if len(args) > 0 {
			text = fmt.Sprintf(msg, args...)
		}
	}
	if a.tag != "" {
		text = a.tag + " " + text
	}
	return text
}
