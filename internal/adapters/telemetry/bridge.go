package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/droidpack/internal/core/domain"
	"go.trai.ch/droidpack/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*LogBridge)(nil)

// LogBridge implements sdktrace.SpanProcessor and reports finished task spans
// to a logger at verbose level.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart does nothing.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the outcome and duration of task spans. Other spans are ignored.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	var kind, status string
	for _, attr := range s.Attributes() {
		switch string(attr.Key) {
		case domain.AttrTaskKind:
			kind = attr.Value.AsString()
		case domain.AttrTaskStatus:
			status = attr.Value.AsString()
		}
	}
	if kind == "" {
		return
	}

	if s.Status().Code == codes.Error {
		status = string(domain.TaskStatusFailed)
	}
	if status == "" {
		status = string(domain.TaskStatusCompleted)
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	b.logger.Verbose("%s (%s) %s in %s", s.Name(), kind, status, elapsed)
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}
