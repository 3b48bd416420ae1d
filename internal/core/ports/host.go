// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/droidpack/internal/core/domain"
)

// ProjectHost is the build host a plugin is applied to.
//
//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type ProjectHost interface {
	// Name returns the project name.
	Name() string
	// Logger returns the host's leveled logger.
	Logger() HostLogger

	// Extension returns the extension registered under name.
	Extension(name string) (any, bool)

	// RegisterTask creates a task of the given kind, runs configure on it and adds it
	// to the task registry. The host owns the task once RegisterTask returns.
	RegisterTask(name string, kind domain.TaskKind, configure func(*domain.Task) error) (*domain.Task, error)
	// DependsOn declares that task runs only after dependency has completed.
	DependsOn(task, dependency string) error
	// AddArtifact appends the output of task to the named artifact bucket.
	AddArtifact(bucket, task string) error
	// AfterEvaluate schedules fn to run once, after the project configuration is final.
	AfterEvaluate(fn func(ctx context.Context, host ProjectHost) error)
}

// BuildConfiguration is the android build configuration of a project.
// Optional capabilities report their presence through the boolean result.
type BuildConfiguration interface {
	// SourceSet returns the named source set.
	SourceSet(name string) (*domain.SourceSet, bool)
	// BootClasspath returns the boot classpath when the configuration carries one.
	BootClasspath() ([]string, bool)
	// LibraryVariants returns the build variants when the configuration is a library.
	LibraryVariants() ([]domain.Variant, bool)
}

// Plugin adds behavior to a project.
type Plugin interface {
	// ID returns the identifier used in the plugins list of droidpack.yaml.
	ID() string
	// Apply attaches the plugin to the project.
	Apply(host ProjectHost) error
}
