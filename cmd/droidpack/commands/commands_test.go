package commands_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/droidpack/cmd/droidpack/commands"
	"go.trai.ch/droidpack/internal/app"
	"go.trai.ch/droidpack/internal/build"
	"go.trai.ch/droidpack/internal/core/domain"
)

type mockApp struct {
	level      slog.Level
	json       bool
	runFunc    func(ctx context.Context, targetNames []string, opts app.RunOptions) error
	tasks      []*domain.Task
	artifacts  []app.ArtifactInfo
	cleanPaths []string
	err        error
}

func (m *mockApp) ConfigureLogging(level slog.Level, json bool) {
	m.level = level
	m.json = json
}

func (m *mockApp) Run(ctx context.Context, targetNames []string, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, targetNames, opts)
	}
	return nil
}

func (m *mockApp) Tasks(_ context.Context, _ string) ([]*domain.Task, error) {
	return m.tasks, m.err
}

func (m *mockApp) Artifacts(_ context.Context, _ string) ([]app.ArtifactInfo, error) {
	return m.artifacts, m.err
}

func (m *mockApp) Clean(_ context.Context, path string) error {
	m.cleanPaths = append(m.cleanPaths, path)
	return m.err
}

func pluginTasks() []*domain.Task {
	return []*domain.Task{
		{
			Name:        "androidJavadoc",
			Group:       "publishing",
			Description: "Generates Javadoc API documentation for the main sources.",
		},
		{
			Name:        "androidJavadocJar",
			Group:       "publishing",
			Description: "Assembles a jar archive containing the generated Javadoc.",
		},
		{
			Name:        "androidSourcesJar",
			Group:       "publishing",
			Description: "Assembles a jar archive containing the main sources.",
		},
		{Name: "verify"},
	}
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedTargets []string
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, targetNames []string, opts app.RunOptions) error {
				capturedOpts = opts
				capturedTargets = targetNames
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "androidSourcesJar", "--no-cache", "-j", "3", "--config", "lib/droidpack.yaml"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.True(t, capturedOpts.NoCache)
		assert.Equal(t, 3, capturedOpts.Parallelism)
		assert.Equal(t, "lib/droidpack.yaml", capturedOpts.ConfigPath)
		assert.Equal(t, []string{"androidSourcesJar"}, capturedTargets)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "target"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no targets provided", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string, _ app.RunOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"run"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_LoggingFlags(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"version", "--log-level", "debug", "--json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, slog.LevelDebug, mock.level)
	assert.True(t, mock.json)
}

func TestCommands_DefaultLogLevel(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, domain.LevelLifecycle, mock.level)
	assert.False(t, mock.json)
}

func TestCommands_InvalidLogLevel(t *testing.T) {
	cli := commands.New(&mockApp{})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"tasks", "--log-level", "chatty"})

	err := cli.Execute(context.Background())
	require.ErrorContains(t, err, domain.ErrInvalidLogLevel.Error())
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}

func TestCommands_Tasks(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	mock := &mockApp{tasks: pluginTasks()}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, new(bytes.Buffer))
	cli.SetArgs([]string{"tasks"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "Publishing tasks\n")
	assert.Contains(t, buf.String(), "androidSourcesJar - Assembles a jar archive containing the main sources.\n")
}

func TestCommands_TasksError(t *testing.T) {
	mock := &mockApp{err: domain.ErrConfigNotFound}
	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"tasks"})

	require.ErrorIs(t, cli.Execute(context.Background()), domain.ErrConfigNotFound)
}

func TestCommands_Clean(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"clean", "-c", "sub"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, []string{"sub"}, mock.cleanPaths)
}

func TestRenderTasks(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	require.NoError(t, commands.RenderTasks(&buf, pluginTasks(), 60))

	g := goldie.New(t)
	g.Assert(t, "tasks_narrow", buf.Bytes())
}

func TestRenderTasks_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, commands.RenderTasks(&buf, nil, 80))
	assert.Equal(t, "No tasks.\n", buf.String())
}

func TestRenderArtifacts(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	artifacts := []app.ArtifactInfo{
		{
			Artifact: domain.Artifact{
				Bucket: domain.ArchivesBucket, Task: "androidSourcesJar",
				File: "/proj/build/libs/mylib-1.0-sources.jar", Classifier: "sources",
			},
			Digest: digest.Digest("sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"),
			Size:   2048,
		},
		{
			Artifact: domain.Artifact{
				Bucket: domain.ArchivesBucket, Task: "androidJavadocJar",
				File: "/proj/build/libs/mylib-1.0-javadoc.jar", Classifier: "javadoc",
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, commands.RenderArtifacts(&buf, artifacts))

	g := goldie.New(t)
	g.Assert(t, "artifacts", buf.Bytes())
}
