// Package scheduler runs planned tasks with bounded parallelism and skips
// tasks whose inputs and outputs are unchanged since their last run.
package scheduler

import (
	"context"
	"errors"
	"maps"
	"runtime"
	"sync"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/droidpack/internal/core/domain"
	"go.trai.ch/droidpack/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Planner orders the tasks of a project.
type Planner interface {
	// Plan returns the targets and their transitive dependencies in execution order.
	Plan(targets []string) ([]*domain.Task, error)
	// Dir returns the project directory, the root of the build info store.
	Dir() string
}

// Options configure a single Run.
type Options struct {
	// NoCache forces every task to execute.
	NoCache bool
	// Parallelism bounds the number of tasks running at once. Zero means one per CPU.
	Parallelism int
}

// Scheduler manages the execution of planned tasks.
type Scheduler struct {
	archiver ports.Archiver
	docTool  ports.DocTool
	store    ports.BuildInfoStore
	hasher   ports.Hasher
	tracer   ports.Tracer
	logger   ports.Logger
	clock    clockwork.Clock

	mu         sync.RWMutex
	taskStatus map[string]domain.TaskStatus
}

// NewScheduler creates a new Scheduler with the given dependencies.
func NewScheduler(
	archiver ports.Archiver,
	docTool ports.DocTool,
	store ports.BuildInfoStore,
	hasher ports.Hasher,
	tracer ports.Tracer,
	logger ports.Logger,
	clock clockwork.Clock,
) *Scheduler {
	return &Scheduler{
		archiver:   archiver,
		docTool:    docTool,
		store:      store,
		hasher:     hasher,
		tracer:     tracer,
		logger:     logger,
		clock:      clock,
		taskStatus: make(map[string]domain.TaskStatus),
	}
}

// Statuses returns the status of every task of the last Run.
func (s *Scheduler) Statuses() map[string]domain.TaskStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.taskStatus)
}

func (s *Scheduler) initTaskStatuses(plan []*domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.taskStatus)
	for _, task := range plan {
		s.taskStatus[task.Name] = domain.TaskStatusPending
	}
}

func (s *Scheduler) updateStatus(name string, status domain.TaskStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskStatus[name] = status
}

func (s *Scheduler) status(name string) domain.TaskStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.taskStatus[name]
}

// Run executes targets and their dependencies. A task starts once all of its
// dependencies have completed or were up to date. A failed task does not stop
// independent tasks, but its dependents stay pending. All failures are joined
// into the returned error.
func (s *Scheduler) Run(ctx context.Context, project Planner, targets []string, opts Options) error {
	plan, err := project.Plan(targets)
	if err != nil {
		return err
	}

	names := make([]string, len(plan))
	for i, task := range plan {
		names[i] = task.Name
	}

	ctx, span := s.tracer.Start(ctx, "build")
	defer span.End()
	s.tracer.EmitPlan(ctx, names)
	s.initTaskStatuses(plan)

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	done := make(map[string]chan struct{}, len(plan))
	for _, task := range plan {
		done[task.Name] = make(chan struct{})
	}

	// Tasks are started in plan order, so a task holding a slot only waits on
	// tasks that were started before it.
	errs := make([]error, len(plan)+1)
	var g errgroup.Group
	g.SetLimit(parallelism)
	for i, task := range plan {
		g.Go(func() error {
			defer close(done[task.Name])
			if !s.waitForDependencies(ctx, task, done) {
				return nil
			}
			errs[i] = s.executeTask(ctx, project.Dir(), task, opts.NoCache)
			return nil
		})
	}
	_ = g.Wait()

	errs[len(plan)] = ctx.Err()
	if err := errors.Join(errs...); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// waitForDependencies blocks until every dependency of task is finished and
// reports whether all of them succeeded.
func (s *Scheduler) waitForDependencies(ctx context.Context, task *domain.Task, done map[string]chan struct{}) bool {
	for _, dep := range task.DependsOn {
		select {
		case <-done[dep]:
		case <-ctx.Done():
			return false
		}
		switch s.status(dep) {
		case domain.TaskStatusCompleted, domain.TaskStatusUpToDate:
		default:
			return false
		}
	}
	return ctx.Err() == nil
}

func (s *Scheduler) executeTask(ctx context.Context, root string, task *domain.Task, noCache bool) error {
	ctx, span := s.tracer.Start(ctx, task.Name)
	defer span.End()
	span.SetAttribute(domain.AttrTaskKind, string(task.Kind))
	s.updateStatus(task.Name, domain.TaskStatusRunning)

	hash, upToDate, err := s.checkTaskCache(root, task, noCache)
	if err != nil {
		return s.fail(span, task, err)
	}
	span.SetAttribute(domain.AttrTaskInputHash, hash)

	if upToDate {
		s.logger.Verbose("> Task :%s UP-TO-DATE", task.Name)
		s.finish(span, task, domain.TaskStatusUpToDate)
		return nil
	}

	s.logger.Info("> Task :%s", task.Name)
	if err := s.dispatch(ctx, task); err != nil {
		if task.Kind == domain.TaskKindJavadoc && !task.Javadoc.FailOnError {
			s.logger.Warning("%s failed, continuing because failOnError is disabled: %v", task.Name, err)
			s.finish(span, task, domain.TaskStatusCompleted)
			return nil
		}
		return s.fail(span, task, err)
	}

	s.recordBuildInfo(root, task, hash)
	s.finish(span, task, domain.TaskStatusCompleted)
	return nil
}

func (s *Scheduler) dispatch(ctx context.Context, task *domain.Task) error {
	switch task.Kind {
	case domain.TaskKindArchive:
		return s.archiver.Archive(ctx, task.Archive)
	case domain.TaskKindJavadoc:
		return s.docTool.Generate(ctx, task.Javadoc)
	default:
		return zerr.With(domain.ErrUnknownTaskKind, "kind", string(task.Kind))
	}
}

func (s *Scheduler) finish(span ports.Span, task *domain.Task, status domain.TaskStatus) {
	s.updateStatus(task.Name, status)
	span.SetAttribute(domain.AttrTaskStatus, string(status))
}

func (s *Scheduler) fail(span ports.Span, task *domain.Task, err error) error {
	span.RecordError(err)
	s.finish(span, task, domain.TaskStatusFailed)
	return zerr.With(zerr.Wrap(err, domain.ErrTaskExecutionFailed.Error()), "task", task.Name)
}

// checkTaskCache computes the input hash and reports whether the stored build
// info matches it and the outputs are unchanged.
func (s *Scheduler) checkTaskCache(root string, task *domain.Task, noCache bool) (string, bool, error) {
	hash, err := s.hasher.ComputeInputHash(task)
	if err != nil {
		return "", false, err
	}

	if noCache {
		return hash, false, nil
	}

	info, err := s.store.Get(root, task.Name)
	if err != nil {
		return hash, false, err
	}
	if info == nil || info.InputHash != hash {
		return hash, false, nil
	}

	outputHash, err := s.hasher.ComputeOutputHash(task)
	if err != nil {
		// Missing outputs are a cache miss.
		return hash, false, nil
	}

	return hash, info.OutputHash == outputHash, nil
}

// recordBuildInfo stores the fingerprints of a successful run. Failing to do
// so only costs a rebuild next time, so it is logged and not returned.
func (s *Scheduler) recordBuildInfo(root string, task *domain.Task, inputHash string) {
	outputHash, err := s.hasher.ComputeOutputHash(task)
	if err != nil {
		s.logger.Warning("could not fingerprint outputs of %s: %v", task.Name, err)
		return
	}

	err = s.store.Put(root, domain.BuildInfo{
		TaskName:   task.Name,
		InputHash:  inputHash,
		OutputHash: outputHash,
		Timestamp:  s.clock.Now(),
	})
	if err != nil {
		s.logger.Warning("could not record build info of %s: %v", task.Name, err)
	}
}
