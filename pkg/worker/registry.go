package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/startino/reletino/pkg/domain"
)

//go:generate moq -out mocks/project_store.go -pkg mocks -skip-ensure -fmt goimports . ProjectStore

// ErrNotRunning indicates a stop request for a project with no live worker
var ErrNotRunning = errors.New("project is not running")

// ProjectStore is the slice of the store the registry needs
type ProjectStore interface {
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	GetRunningProjects(ctx context.Context) ([]*domain.Project, error)
	SetProjectRunning(ctx context.Context, id string, running bool) error
}

// Factory builds a worker for a project
type Factory func(project domain.Project) *Worker

// Status is one row of the registry's live view
type Status struct {
	ProjectID string `json:"project_id"`
	State     State  `json:"state"`
}

// Registry tracks at most one live worker per project. Start replaces an
// existing worker after stopping it, Stop tears one down, Resume brings back
// everything marked running in the store.
type Registry struct {
	store   ProjectStore
	factory Factory
	baseCtx context.Context // lifetime for worker run loops

	mu      sync.Mutex
	workers map[string]*Worker
}

// NewRegistry creates a registry. baseCtx bounds the lifetime of every
// worker it starts; canceling it shuts all workers down without clearing
// their running flags.
func NewRegistry(baseCtx context.Context, st ProjectStore, factory Factory) *Registry {
	return &Registry{
		store:   st,
		factory: factory,
		baseCtx: baseCtx,
		workers: make(map[string]*Worker),
	}
}

// Start launches a worker for the project. A live worker for the same
// project is stopped first, start-on-started is a restart.
func (r *Registry) Start(ctx context.Context, projectID string) error {
	project, err := r.store.GetProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("load project %s: %w", projectID, err)
	}

	// held across the check-stop-insert sequence so concurrent starts for
	// the same project cannot both launch a worker
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing := r.workers[projectID]; existing != nil {
		lgr.Printf("[INFO] restarting worker for project %s", projectID)
		if err := existing.Stop(ctx); err != nil {
			return fmt.Errorf("stop existing worker for project %s: %w", projectID, err)
		}
	}

	if err := r.store.SetProjectRunning(ctx, projectID, true); err != nil {
		return fmt.Errorf("mark project %s running: %w", projectID, err)
	}

	w := r.factory(*project)
	r.workers[projectID] = w
	go w.Run(r.baseCtx)
	return nil
}

// Stop halts the project's worker and removes it from the registry
func (r *Registry) Stop(ctx context.Context, projectID string) error {
	r.mu.Lock()
	w := r.workers[projectID]
	r.mu.Unlock()

	if w == nil {
		return ErrNotRunning
	}
	if err := w.Stop(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	// the map may have been repointed by a concurrent restart
	if r.workers[projectID] == w {
		delete(r.workers, projectID)
	}
	r.mu.Unlock()
	return nil
}

// Statuses returns the live view of all registered workers
func (r *Registry) Statuses() []Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]Status, 0, len(r.workers))
	for id, w := range r.workers {
		res = append(res, Status{ProjectID: id, State: w.State()})
	}
	return res
}

// Resume starts workers for every project marked running in the store,
// called once on boot
func (r *Registry) Resume(ctx context.Context) error {
	projects, err := r.store.GetRunningProjects(ctx)
	if err != nil {
		return fmt.Errorf("load running projects: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, p := range projects {
		g.Go(func() error {
			if err := r.Start(ctx, p.ID); err != nil {
				return fmt.Errorf("resume project %s: %w", p.ID, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if len(projects) > 0 {
		lgr.Printf("[INFO] resumed %d project(s)", len(projects))
	}
	return nil
}

// StopAll shuts every worker down without clearing running flags, the
// projects resume on the next boot. Used on process shutdown.
func (r *Registry) StopAll(ctx context.Context) {
	r.mu.Lock()
	workers := make([]*Worker, 0, len(r.workers))
	for _, w := range r.workers {
		workers = append(workers, w)
	}
	r.workers = make(map[string]*Worker)
	r.mu.Unlock()

	var wg sync.WaitGroup
	for _, w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := w.Shutdown(ctx); err != nil {
				lgr.Printf("[WARN] worker for project %s did not shut down cleanly: %v", w.Project().ID, err)
			}
		}()
	}
	wg.Wait()
}
