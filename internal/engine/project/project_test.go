package project_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/droidpack/internal/core/domain"
	"go.trai.ch/droidpack/internal/core/ports"
	"go.trai.ch/droidpack/internal/engine/project"
)

func newProject(t *testing.T) *project.Project {
	t.Helper()
	root := t.TempDir()
	return project.New(&domain.ProjectSpec{
		Name:     "mylib",
		Version:  "1.2.0",
		Dir:      root,
		BuildDir: filepath.Join(root, "build"),
		Doclet:   domain.DocletStandard,
	}, nil)
}

func register(t *testing.T, p *project.Project, name string, kind domain.TaskKind) *domain.Task {
	t.Helper()
	task, err := p.RegisterTask(name, kind, nil)
	require.NoError(t, err)
	return task
}

func TestProject_RegisterTask_ArchiveDefaults(t *testing.T) {
	p := newProject(t)

	task := register(t, p, "jar", domain.TaskKindArchive)

	require.NotNil(t, task.Archive)
	assert.Nil(t, task.Javadoc)
	assert.Equal(t, "mylib", task.Archive.BaseName)
	assert.Equal(t, "1.2.0", task.Archive.Version)
	assert.Equal(t, "jar", task.Archive.Extension)
	assert.Equal(t, filepath.Join(p.BuildDir(), "libs"), task.Archive.DestinationDir)
}

func TestProject_RegisterTask_JavadocDefaults(t *testing.T) {
	p := newProject(t)

	task := register(t, p, "doc", domain.TaskKindJavadoc)

	require.NotNil(t, task.Javadoc)
	assert.Equal(t, project.DefaultJavadocTool, task.Javadoc.Tool)
	assert.True(t, task.Javadoc.FailOnError)
	assert.Equal(t, filepath.Join(p.BuildDir(), "docs", "javadoc"), task.Javadoc.DestinationDir)
	_, ok := task.Javadoc.Options.Standard()
	assert.True(t, ok)
}

func TestProject_RegisterTask_MinimalDoclet(t *testing.T) {
	p := project.New(&domain.ProjectSpec{Name: "mylib", BuildDir: "/b", Doclet: domain.DocletMinimal}, nil)

	task := register(t, p, "doc", domain.TaskKindJavadoc)
	_, ok := task.Javadoc.Options.Standard()
	assert.False(t, ok)
}

func TestProject_RegisterTask_Errors(t *testing.T) {
	p := newProject(t)
	register(t, p, "jar", domain.TaskKindArchive)

	_, err := p.RegisterTask("jar", domain.TaskKindArchive, nil)
	require.ErrorContains(t, err, domain.ErrTaskAlreadyExists.Error())

	_, err = p.RegisterTask("bad name", domain.TaskKindArchive, nil)
	require.ErrorContains(t, err, domain.ErrInvalidTaskName.Error())

	_, err = p.RegisterTask("compile", domain.TaskKind("compile"), nil)
	require.ErrorContains(t, err, domain.ErrUnknownTaskKind.Error())

	boom := errors.New("boom")
	_, err = p.RegisterTask("other", domain.TaskKindArchive, func(*domain.Task) error { return boom })
	require.ErrorIs(t, err, boom)
	_, ok := p.Task("other")
	assert.False(t, ok, "a task whose configuration failed must not be registered")
}

func TestProject_RegisterTask_ConfigureDependsOn(t *testing.T) {
	p := newProject(t)
	register(t, p, "doc", domain.TaskKindJavadoc)

	task, err := p.RegisterTask("docJar", domain.TaskKindArchive, func(t *domain.Task) error {
		t.DependsOn = []string{"doc"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"doc"}, task.DependsOn)

	_, err = p.RegisterTask("broken", domain.TaskKindArchive, func(t *domain.Task) error {
		t.DependsOn = []string{"missing"}
		return nil
	})
	require.ErrorContains(t, err, domain.ErrTaskNotFound.Error())
}

func TestProject_DependsOn(t *testing.T) {
	p := newProject(t)
	a := register(t, p, "a", domain.TaskKindArchive)
	register(t, p, "b", domain.TaskKindArchive)

	require.NoError(t, p.DependsOn("a", "b"))
	require.NoError(t, p.DependsOn("a", "b"), "declaring a dependency twice is a no-op")
	assert.Equal(t, []string{"b"}, a.DependsOn)

	require.ErrorContains(t, p.DependsOn("a", "missing"), domain.ErrTaskNotFound.Error())
	require.ErrorContains(t, p.DependsOn("missing", "a"), domain.ErrTaskNotFound.Error())
}

func TestProject_DependsOn_RejectsCycles(t *testing.T) {
	p := newProject(t)
	register(t, p, "a", domain.TaskKindArchive)
	register(t, p, "b", domain.TaskKindArchive)
	register(t, p, "c", domain.TaskKindArchive)

	require.NoError(t, p.DependsOn("a", "b"))
	require.NoError(t, p.DependsOn("b", "c"))

	require.ErrorContains(t, p.DependsOn("c", "a"), domain.ErrCycleDetected.Error())
	require.ErrorContains(t, p.DependsOn("a", "a"), domain.ErrCycleDetected.Error())

	c, _ := p.Task("c")
	assert.Empty(t, c.DependsOn)
}

func TestProject_Artifacts(t *testing.T) {
	p := newProject(t)
	sources := register(t, p, "sourcesJar", domain.TaskKindArchive)
	sources.Archive.Classifier = "sources"
	register(t, p, "docJar", domain.TaskKindArchive)

	require.NoError(t, p.AddArtifact(domain.ArchivesBucket, "sourcesJar"))
	require.NoError(t, p.AddArtifact(domain.ArchivesBucket, "docJar"))
	require.NoError(t, p.AddArtifact(domain.ArchivesBucket, "sourcesJar"))
	require.ErrorContains(t, p.AddArtifact(domain.ArchivesBucket, "missing"), domain.ErrTaskNotFound.Error())

	arts := p.Artifacts(domain.ArchivesBucket)
	require.Len(t, arts, 2)
	assert.Equal(t, "sourcesJar", arts[0].Task)
	assert.Equal(t, "sources", arts[0].Classifier)
	assert.Equal(t, filepath.Join(p.BuildDir(), "libs", "mylib-1.2.0-sources.jar"), arts[0].File)
	assert.Equal(t, "docJar", arts[1].Task)

	assert.Equal(t, []string{domain.ArchivesBucket}, p.Buckets())
	assert.Empty(t, p.Artifacts("other"))
}

func TestProject_Evaluate(t *testing.T) {
	p := newProject(t)

	var calls []string
	p.AfterEvaluate(func(_ context.Context, host ports.ProjectHost) error {
		calls = append(calls, "first:"+host.Name())
		return nil
	})
	p.AfterEvaluate(func(context.Context, ports.ProjectHost) error {
		calls = append(calls, "second")
		return nil
	})

	assert.False(t, p.Evaluated())
	require.NoError(t, p.Evaluate(t.Context()))
	assert.True(t, p.Evaluated())
	assert.Equal(t, []string{"first:mylib", "second"}, calls)

	err := p.Evaluate(t.Context())
	require.ErrorContains(t, err, domain.ErrAlreadyEvaluated.Error())
	assert.Len(t, calls, 2, "callbacks must run exactly once")
}

func TestProject_Evaluate_StopsAtFirstError(t *testing.T) {
	p := newProject(t)
	boom := errors.New("boom")

	ran := false
	p.AfterEvaluate(func(context.Context, ports.ProjectHost) error { return boom })
	p.AfterEvaluate(func(context.Context, ports.ProjectHost) error {
		ran = true
		return nil
	})

	require.ErrorIs(t, p.Evaluate(t.Context()), boom)
	assert.False(t, ran)
}

func TestProject_Extension(t *testing.T) {
	p := newProject(t)
	_, ok := p.Extension(domain.AndroidExtensionName)
	assert.False(t, ok, "no android block means no extension")

	ext := &domain.AndroidExtension{Kind: domain.ExtensionLibrary}
	withAndroid := project.New(&domain.ProjectSpec{Name: "x", Android: ext}, nil)
	got, ok := withAndroid.Extension(domain.AndroidExtensionName)
	require.True(t, ok)
	assert.Same(t, ext, got)

	p.AddExtension("custom", 42)
	got, ok = p.Extension("custom")
	require.True(t, ok)
	assert.Equal(t, 42, got)
}

func TestProject_Plan(t *testing.T) {
	p := newProject(t)
	for _, name := range []string{"sourcesJar", "doc", "docJar", "unrelated"} {
		register(t, p, name, domain.TaskKindArchive)
	}
	require.NoError(t, p.DependsOn("docJar", "doc"))

	_, err := p.Plan([]string{"docJar"})
	require.ErrorContains(t, err, domain.ErrNotEvaluated.Error())

	require.NoError(t, p.Evaluate(t.Context()))

	plan, err := p.Plan([]string{"docJar", "sourcesJar"})
	require.NoError(t, err)
	assert.Equal(t, []string{"doc", "sourcesJar", "docJar"}, names(plan))

	plan, err = p.Plan([]string{"docJar"})
	require.NoError(t, err)
	assert.Equal(t, []string{"doc", "docJar"}, names(plan))

	_, err = p.Plan(nil)
	require.ErrorIs(t, err, domain.ErrNoTargetsSpecified)

	_, err = p.Plan([]string{"missing"})
	require.ErrorContains(t, err, domain.ErrTaskNotFound.Error())
}

func TestProject_Tasks_SortedByName(t *testing.T) {
	p := newProject(t)
	register(t, p, "zeta", domain.TaskKindArchive)
	register(t, p, "alpha", domain.TaskKindJavadoc)

	assert.Equal(t, []string{"alpha", "zeta"}, names(p.Tasks()))
}

func names(tasks []*domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Name)
	}
	return out
}
