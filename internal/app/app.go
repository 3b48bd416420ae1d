// Package app implements the application layer for droidpack.
package app

import (
	"context"
	_ "crypto/sha256" // registers the hash behind digest.Canonical
	"errors"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/opencontainers/go-digest"
	"go.trai.ch/droidpack/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/droidpack/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/droidpack/internal/core/domain"
	"go.trai.ch/droidpack/internal/core/ports"
	"go.trai.ch/droidpack/internal/engine/project"
	"go.trai.ch/droidpack/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	host         *logger.Logger
	logger       ports.Logger
	scheduler    *scheduler.Scheduler
	clock        clockwork.Clock
	plugins      map[string]ports.Plugin
}

// New creates a new App instance. Plugins are looked up by their ID when a
// project lists them.
func New(
	loader ports.ConfigLoader,
	host *logger.Logger,
	log ports.Logger,
	sched *scheduler.Scheduler,
	clock clockwork.Clock,
	plugins ...ports.Plugin,
) *App {
	registry := make(map[string]ports.Plugin, len(plugins))
	for _, p := range plugins {
		registry[p.ID()] = p
	}
	return &App{
		configLoader: loader,
		host:         host,
		logger:       log,
		scheduler:    sched,
		clock:        clock,
		plugins:      registry,
	}
}

// ConfigureLogging sets the level and format of the host logger.
func (a *App) ConfigureLogging(level slog.Level, json bool) {
	a.host.SetLevel(level)
	a.host.SetJSON(json)
}

// Load reads the configuration at path, applies the listed plugins and
// evaluates the project. An empty path searches from the working directory.
func (a *App) Load(ctx context.Context, path string) (*project.Project, error) {
	spec, err := a.loadSpec(path)
	if err != nil {
		return nil, err
	}

	p := project.New(spec, a.host)
	for _, id := range spec.Plugins {
		plugin, ok := a.plugins[id]
		if !ok {
			return nil, zerr.With(domain.ErrUnknownPlugin, "plugin", id)
		}
		if err := plugin.Apply(p); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to apply plugin"), "plugin", id)
		}
		a.logger.Verbose("applied plugin %s to %s", id, spec.Name)
	}

	if err := p.Evaluate(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

func (a *App) loadSpec(path string) (*domain.ProjectSpec, error) {
	if path == "" {
		path = "."
	}
	spec, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return spec, nil
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	ConfigPath  string
	NoCache     bool
	Parallelism int
}

// Run executes the build process for the specified targets.
func (a *App) Run(ctx context.Context, targetNames []string, opts RunOptions) error {
	if len(targetNames) == 0 {
		return domain.ErrNoTargetsSpecified
	}

	start := a.clock.Now()

	p, err := a.Load(ctx, opts.ConfigPath)
	if err != nil {
		return err
	}

	shutdown := telemetry.Setup(telemetry.NewLogBridge(a.logger))
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()

	err = a.scheduler.Run(ctx, p, targetNames, scheduler.Options{
		NoCache:     opts.NoCache,
		Parallelism: opts.Parallelism,
	})
	elapsed := a.clock.Since(start).Round(time.Millisecond)
	if err != nil {
		a.logger.Error(err, "BUILD FAILED in %s", elapsed)
		return errors.Join(domain.ErrBuildExecutionFailed, err)
	}

	a.logger.Info("BUILD SUCCESSFUL in %s", elapsed)
	return nil
}

// Tasks returns every task of the project at path, sorted by name.
func (a *App) Tasks(ctx context.Context, path string) ([]*domain.Task, error) {
	p, err := a.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return p.Tasks(), nil
}

// ArtifactInfo is a published artifact and the digest of its file.
// Digest is empty until the artifact has been built.
type ArtifactInfo struct {
	domain.Artifact
	Digest digest.Digest
	Size   int64
}

// Artifacts returns the artifacts of every bucket, buckets sorted by name.
func (a *App) Artifacts(ctx context.Context, path string) ([]ArtifactInfo, error) {
	p, err := a.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	var infos []ArtifactInfo
	for _, bucket := range p.Buckets() {
		for _, artifact := range p.Artifacts(bucket) {
			info, err := describeArtifact(artifact)
			if err != nil {
				return nil, err
			}
			infos = append(infos, info)
		}
	}
	return infos, nil
}

func describeArtifact(artifact domain.Artifact) (ArtifactInfo, error) {
	info := ArtifactInfo{Artifact: artifact}

	f, err := os.Open(artifact.File)
	if errors.Is(err, iofs.ErrNotExist) {
		return info, nil
	}
	if err != nil {
		return info, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "file", artifact.File)
	}
	defer func() {
		_ = f.Close()
	}()

	stat, err := f.Stat()
	if err != nil {
		return info, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "file", artifact.File)
	}

	d, err := digest.Canonical.FromReader(f)
	if err != nil {
		return info, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "file", artifact.File)
	}

	info.Digest = d
	info.Size = stat.Size()
	return info, nil
}

// Clean removes the build directory and the build info store of the project at path.
func (a *App) Clean(_ context.Context, path string) error {
	spec, err := a.loadSpec(path)
	if err != nil {
		return err
	}

	var errs error

	remove := func(dir string, name string) {
		if _, err := os.Stat(dir); errors.Is(err, iofs.ErrNotExist) {
			a.logger.Verbose("%s %s does not exist", name, dir)
			return
		}
		if err := os.RemoveAll(dir); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove "+name), "path", dir))
			return
		}
		a.logger.Info("removed %s %s", name, dir)
	}

	remove(spec.BuildDir, "build directory")
	remove(filepath.Join(spec.Dir, domain.StateDirName), "build info store")

	return errs
}
