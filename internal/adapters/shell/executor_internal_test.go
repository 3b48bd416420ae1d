package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		sysEnv   []string
		cmdEnv   map[string]string
		expected []string
	}{
		{
			name:     "System Only (Allowed)",
			sysEnv:   []string{"USER=test", "PATH=/bin", "HOME=/home/test", "JAVA_HOME=/opt/jdk"},
			expected: []string{"HOME=/home/test", "JAVA_HOME=/opt/jdk", "PATH=/bin", "USER=test"},
		},
		{
			name:     "System Only (Filtered)",
			sysEnv:   []string{"USER=test", "SSH_AUTH_SOCK=/tmp/ssh", "SECRET=key", "broken"},
			expected: []string{"USER=test"},
		},
		{
			name:     "Command Override",
			sysEnv:   []string{"USER=test", "PATH=/bin"},
			cmdEnv:   map[string]string{"PATH": "/custom/bin", "FOO": "bar"},
			expected: []string{"FOO=bar", "PATH=/custom/bin", "USER=test"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveEnvironment(tt.sysEnv, tt.cmdEnv))
		})
	}
}

func TestLookPath(t *testing.T) {
	_, err := lookPath("sh", nil)
	assert.Error(t, err)

	path, err := lookPath("sh", []string{"PATH=/nonexistent:/bin:/usr/bin"})
	assert.NoError(t, err)
	assert.NotEmpty(t, path)
}

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Error(error, string, ...any) {}
func (r *recordingLogger) Warning(string, ...any)      {}
func (r *recordingLogger) Info(string, ...any)         {}
func (r *recordingLogger) Verbose(_ string, args ...any) {
	r.lines = append(r.lines, args[0].(string))
}

func TestLogWriter_Tail(t *testing.T) {
	rec := &recordingLogger{}
	w := &logWriter{logger: rec}

	for range tailLines + 5 {
		_, _ = w.Write([]byte("x\r\n"))
	}
	_, _ = w.Write([]byte("last"))
	w.Close()

	assert.Len(t, rec.lines, tailLines+6)
	assert.Len(t, w.tail, tailLines)
	assert.Equal(t, "last", w.tail[len(w.tail)-1])
	assert.Equal(t, "x", rec.lines[0])
}
