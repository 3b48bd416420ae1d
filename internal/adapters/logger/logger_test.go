package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/droidpack/internal/adapters/logger"
	"go.trai.ch/droidpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_DefaultLevelIsLifecycle(t *testing.T) {
	lg, _ := newTestLogger(t)

	assert.Equal(t, domain.LevelLifecycle, lg.Level())
	assert.True(t, lg.Enabled(t.Context(), domain.LevelLifecycle))
	assert.True(t, lg.Enabled(t.Context(), slog.LevelWarn))
	assert.False(t, lg.Enabled(t.Context(), slog.LevelInfo))
}

func TestLogger_SetLevel(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.SetLevel(slog.LevelError)
	lg.Log(t.Context(), slog.LevelWarn, "dropped")
	assert.Empty(t, buf.String())

	lg.SetLevel(slog.LevelDebug)
	lg.Log(t.Context(), slog.LevelDebug, "kept")
	assert.Equal(t, "kept\n", buf.String())
}

func TestLogger_Attributes(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Log(t.Context(), domain.LevelLifecycle, "archived", "task", "androidSourcesJar", "entries", 2)
	assert.Equal(t, "archived task=androidSourcesJar entries=2\n", buf.String())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple",
			err:        errors.New("no tasks specified"),
			goldenName: "error_simple",
		},
		{
			name: "zerr chain with metadata",
			err: func() error {
				inner := zerr.With(zerr.New("javadoc exited with status 1"), "exit_code", 1)
				outer := zerr.Wrap(inner, "task execution failed")
				return zerr.With(outer, "task", "androidJavadoc")
			}(),
			goldenName: "error_chain",
		},
		{
			name:       "multiline",
			err:        errors.Join(errors.New("first"), errors.New("second")),
			goldenName: "error_multiline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String(), "Expected no output for nil error")
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Log(t.Context(), domain.LevelLifecycle, "hello", "task", "androidJavadoc")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "LIFECYCLE", record["level"])
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "androidJavadoc", record["task"])
}

func TestLogger_SetJSON_Error(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(errors.New("disk full"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "disk full", record[logger.ErrorKey])
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.SetJSON(true)
	lg.Log(t.Context(), slog.LevelWarn, "json")
	assert.Contains(t, buf.String(), `"msg":"json"`)

	buf.Reset()
	lg.SetJSON(false)
	lg.Log(t.Context(), slog.LevelWarn, "pretty")
	assert.Equal(t, "! pretty\n", buf.String())
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	lg := logger.New()
	assert.NotPanics(t, func() { lg.SetOutput(nil) })
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg := logger.New()
	lg.SetOutput(io.Discard)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lg.Log(t.Context(), domain.LevelLifecycle, fmt.Sprintf("message %d", i))
			if i%3 == 0 {
				lg.SetJSON(i%2 == 0)
			}
		}()
	}
	wg.Wait()
}
