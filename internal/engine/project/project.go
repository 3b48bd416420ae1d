// Package project implements the build project that plugins are applied to.
package project

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/dominikbraun/graph"
	"go.trai.ch/droidpack/internal/core/domain"
	"go.trai.ch/droidpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultJavadocTool is the executable used when the project does not name one.
const DefaultJavadocTool = "javadoc"

// Project is the task registry of one loaded project. It implements ports.ProjectHost.
type Project struct {
	spec   *domain.ProjectSpec
	logger ports.HostLogger

	mu         sync.RWMutex
	extensions map[string]any
	tasks      map[string]*domain.Task
	graph      graph.Graph[string, *domain.Task]
	artifacts  map[string][]string
	afterEval  []func(context.Context, ports.ProjectHost) error
	evaluated  bool
}

var _ ports.ProjectHost = (*Project)(nil)

func taskHash(t *domain.Task) string {
	return t.Name
}

// New creates a project from a loaded spec. The android configuration, when
// present, is registered as the "android" extension.
func New(spec *domain.ProjectSpec, logger ports.HostLogger) *Project {
	p := &Project{
		spec:       spec,
		logger:     logger,
		extensions: make(map[string]any),
		tasks:      make(map[string]*domain.Task),
		graph:      graph.New(taskHash, graph.Directed(), graph.PreventCycles()),
		artifacts:  make(map[string][]string),
	}
	if spec.Android != nil {
		p.extensions[domain.AndroidExtensionName] = spec.Android
	}
	return p
}

// Name returns the project name.
func (p *Project) Name() string { return p.spec.Name }

// Dir returns the project directory.
func (p *Project) Dir() string { return p.spec.Dir }

// BuildDir returns the build output directory.
func (p *Project) BuildDir() string { return p.spec.BuildDir }

// Logger returns the host logger.
func (p *Project) Logger() ports.HostLogger { return p.logger }

// Extension returns the extension registered under name.
func (p *Project) Extension(name string) (any, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ext, ok := p.extensions[name]
	return ext, ok
}

// AddExtension registers value under name, replacing any previous value.
func (p *Project) AddExtension(name string, value any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.extensions[name] = value
}

// RegisterTask creates a task with the defaults for its kind, lets configure
// adjust it and adds it to the registry. Dependencies set by configure are
// wired as if DependsOn had been called.
func (p *Project) RegisterTask(
	name string,
	kind domain.TaskKind,
	configure func(*domain.Task) error,
) (*domain.Task, error) {
	if err := domain.ValidateTaskName(name); err != nil {
		return nil, err
	}

	task, err := p.newTask(name, kind)
	if err != nil {
		return nil, err
	}

	if configure != nil {
		if err := configure(task); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "task configuration failed"), "task", name)
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.tasks[name]; exists {
		return nil, zerr.With(domain.ErrTaskAlreadyExists, "task", name)
	}

	deps := task.DependsOn
	task.DependsOn = nil
	for _, dep := range deps {
		if _, ok := p.tasks[dep]; !ok {
			return nil, zerr.With(zerr.With(domain.ErrTaskNotFound, "task", dep), "required_by", name)
		}
	}

	if err := p.graph.AddVertex(task); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to add task to graph"), "task", name)
	}
	p.tasks[name] = task

	for _, dep := range deps {
		if err := p.addEdgeLocked(task, dep); err != nil {
			return nil, err
		}
	}

	return task, nil
}

func (p *Project) newTask(name string, kind domain.TaskKind) (*domain.Task, error) {
	task := &domain.Task{Name: name, Kind: kind}

	switch kind {
	case domain.TaskKindArchive:
		task.Archive = &domain.ArchiveSpec{
			BaseName:       p.spec.Name,
			Version:        p.spec.Version,
			Extension:      "jar",
			DestinationDir: domain.DefaultLibsPath(p.spec.BuildDir),
		}
	case domain.TaskKindJavadoc:
		tool := p.spec.JavadocTool
		if tool == "" {
			tool = DefaultJavadocTool
		}
		doclet := p.spec.Doclet
		if doclet == "" {
			doclet = domain.DocletStandard
		}
		task.Javadoc = &domain.JavadocSpec{
			Tool:           tool,
			DestinationDir: domain.DefaultJavadocPath(p.spec.BuildDir),
			FailOnError:    true,
			Options:        domain.NewJavadocOptions(doclet),
		}
	default:
		return nil, zerr.With(zerr.With(domain.ErrUnknownTaskKind, "kind", string(kind)), "task", name)
	}

	return task, nil
}

// DependsOn declares that task runs after dependency. Declaring the same
// dependency twice is a no-op; a dependency that closes a cycle is rejected.
func (p *Project) DependsOn(task, dependency string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	t, ok := p.tasks[task]
	if !ok {
		return zerr.With(domain.ErrTaskNotFound, "task", task)
	}
	if _, ok := p.tasks[dependency]; !ok {
		return zerr.With(zerr.With(domain.ErrTaskNotFound, "task", dependency), "required_by", task)
	}

	return p.addEdgeLocked(t, dependency)
}

func (p *Project) addEdgeLocked(task *domain.Task, dependency string) error {
	if task.Name == dependency {
		return zerr.With(domain.ErrCycleDetected, "task", task.Name)
	}

	err := p.graph.AddEdge(dependency, task.Name)
	switch {
	case errors.Is(err, graph.ErrEdgeAlreadyExists):
		return nil
	case errors.Is(err, graph.ErrEdgeCreatesCycle):
		return zerr.With(zerr.With(domain.ErrCycleDetected, "task", task.Name), "dependency", dependency)
	case err != nil:
		return zerr.With(zerr.Wrap(err, "failed to add dependency"), "task", task.Name)
	}

	task.DependsOn = append(task.DependsOn, dependency)
	return nil
}

// AddArtifact appends the output of task to bucket. The artifact file is
// resolved when the bucket is read, so later task configuration is honored.
func (p *Project) AddArtifact(bucket, task string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.tasks[task]; !ok {
		return zerr.With(domain.ErrTaskNotFound, "task", task)
	}
	if slices.Contains(p.artifacts[bucket], task) {
		return nil
	}
	p.artifacts[bucket] = append(p.artifacts[bucket], task)
	return nil
}

// AfterEvaluate schedules fn to run during Evaluate. Callbacks registered after
// evaluation are never run; the host logs a warning for them.
func (p *Project) AfterEvaluate(fn func(ctx context.Context, host ports.ProjectHost) error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.evaluated {
		if p.logger != nil {
			p.logger.Log(context.Background(), slog.LevelWarn,
				"afterEvaluate callback registered after evaluation is ignored", "project", p.spec.Name)
		}
		return
	}
	p.afterEval = append(p.afterEval, fn)
}

// Evaluate delivers the configuration-ready signal: every AfterEvaluate callback
// runs once, in registration order. It stops at the first failing callback.
// A second call returns ErrAlreadyEvaluated.
func (p *Project) Evaluate(ctx context.Context) error {
	p.mu.Lock()
	if p.evaluated {
		p.mu.Unlock()
		return zerr.With(domain.ErrAlreadyEvaluated, "project", p.spec.Name)
	}
	p.evaluated = true
	callbacks := p.afterEval
	p.afterEval = nil
	p.mu.Unlock()

	for _, fn := range callbacks {
		if err := fn(ctx, p); err != nil {
			return zerr.With(zerr.Wrap(err, "project evaluation failed"), "project", p.spec.Name)
		}
	}
	return nil
}

// Evaluated reports whether Evaluate has been called.
func (p *Project) Evaluated() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.evaluated
}

// Task returns the named task.
func (p *Project) Task(name string) (*domain.Task, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	t, ok := p.tasks[name]
	return t, ok
}

// Tasks returns all registered tasks sorted by name.
func (p *Project) Tasks() []*domain.Task {
	p.mu.RLock()
	defer p.mu.RUnlock()

	tasks := make([]*domain.Task, 0, len(p.tasks))
	for _, t := range p.tasks {
		tasks = append(tasks, t)
	}
	slices.SortFunc(tasks, func(a, b *domain.Task) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return tasks
}

// Buckets returns the names of all non-empty artifact buckets, sorted.
func (p *Project) Buckets() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	buckets := make([]string, 0, len(p.artifacts))
	for b := range p.artifacts {
		buckets = append(buckets, b)
	}
	slices.Sort(buckets)
	return buckets
}

// Artifacts returns the artifacts of bucket in insertion order.
func (p *Project) Artifacts(bucket string) []domain.Artifact {
	p.mu.RLock()
	defer p.mu.RUnlock()

	names := p.artifacts[bucket]
	artifacts := make([]domain.Artifact, 0, len(names))
	for _, name := range names {
		t := p.tasks[name]
		a := domain.Artifact{Bucket: bucket, Task: name}
		if outputs := t.Outputs(); len(outputs) > 0 {
			a.File = outputs[0]
		}
		if t.Archive != nil {
			a.Classifier = t.Archive.Classifier
		}
		artifacts = append(artifacts, a)
	}
	return artifacts
}

// Plan returns the tasks needed to build targets in execution order: every task
// comes after its dependencies, and tasks that become ready together are ordered by name.
func (p *Project) Plan(targets []string) ([]*domain.Task, error) {
	if len(targets) == 0 {
		return nil, domain.ErrNoTargetsSpecified
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.evaluated {
		return nil, zerr.With(domain.ErrNotEvaluated, "project", p.spec.Name)
	}

	needed := make(map[string]bool)
	var visit func(name string)
	visit = func(name string) {
		if needed[name] {
			return
		}
		needed[name] = true
		for _, dep := range p.tasks[name].DependsOn {
			visit(dep)
		}
	}
	for _, target := range targets {
		if _, ok := p.tasks[target]; !ok {
			return nil, zerr.With(domain.ErrTaskNotFound, "task", target)
		}
		visit(target)
	}

	order, err := graph.StableTopologicalSort(p.graph, func(a, b string) bool { return a < b })
	if err != nil {
		return nil, zerr.Wrap(err, "failed to order tasks")
	}

	plan := make([]*domain.Task, 0, len(needed))
	for _, name := range order {
		if needed[name] {
			plan = append(plan, p.tasks[name])
		}
	}
	return plan, nil
}
