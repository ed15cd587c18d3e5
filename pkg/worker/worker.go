// Package worker runs one evaluation pipeline per started project: it
// consumes the live post stream, pushes each new post through the evaluation
// cascade, persists relevant finds and meters credits.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/startino/reletino/pkg/config"
	"github.com/startino/reletino/pkg/domain"
	"github.com/startino/reletino/pkg/feed"
	"github.com/startino/reletino/pkg/store"
)

//go:generate moq -out mocks/streamer.go -pkg mocks -skip-ensure -fmt goimports . Streamer
//go:generate moq -out mocks/judge.go -pkg mocks -skip-ensure -fmt goimports . Judge
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database

// Streamer provides the live post stream for a set of subreddits
type Streamer interface {
	Stream(ctx context.Context, subreddits []string) <-chan feed.Event
}

// Judge runs the full evaluation cascade for one post
type Judge interface {
	Evaluate(ctx context.Context, post domain.Post, project domain.Project) (*domain.Evaluation, string, error)
}

// Database is the slice of the store a worker needs
type Database interface {
	Seen(ctx context.Context, projectID, postID string) (bool, error)
	MarkSeen(ctx context.Context, projectID, postID string) error
	SaveSubmission(ctx context.Context, sp *domain.SavedPost) error
	DecrementCredits(ctx context.Context, profileID string) (int, error)
	SetProjectRunning(ctx context.Context, id string, running bool) error
}

// State is the worker lifecycle state
type State string

// worker states, a worker moves strictly forward through them
const (
	StateCreated  State = "created"
	StateRunning  State = "running"
	StateStopping State = "stopping"
	StateStopped  State = "stopped"
)

// Worker processes the post stream for a single project. Create with New,
// drive with Run, stop with Stop. A worker is single-use; restarting a
// project means a new Worker.
type Worker struct {
	project domain.Project
	stream  Streamer
	judge   Judge
	db      Database
	cfg     config.WorkerConfig

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc

	done     chan struct{}
	doneOnce sync.Once
}

// New creates a worker for the project
func New(project domain.Project, stream Streamer, judge Judge, db Database, cfg config.WorkerConfig) *Worker {
	return &Worker{
		project: project,
		stream:  stream,
		judge:   judge,
		db:      db,
		cfg:     cfg,
		state:   StateCreated,
		done:    make(chan struct{}),
	}
}

// State returns the current lifecycle state
func (w *Worker) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Project returns the project this worker serves
func (w *Worker) Project() domain.Project { return w.project }

// Done is closed when the worker has fully stopped
func (w *Worker) Done() <-chan struct{} { return w.done }

// Run consumes the stream until the context is canceled, the worker is
// stopped, or the project's credits run out. Blocks; callers run it in a
// goroutine. Parent context cancellation stops the worker without clearing
// the project's running flag, so it resumes on the next boot.
func (w *Worker) Run(ctx context.Context) {
	w.mu.Lock()
	if w.state != StateCreated {
		w.mu.Unlock()
		return
	}
	ctx, w.cancel = context.WithCancel(ctx)
	w.state = StateRunning
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.state = StateStopped
		w.mu.Unlock()
		w.doneOnce.Do(func() { close(w.done) })
		lgr.Printf("[INFO] worker stopped for project %s", w.project.ID)
	}()

	lgr.Printf("[INFO] worker started for project %s, subreddits: %v", w.project.ID, w.project.Subreddits)

	events := w.stream.Stream(ctx, w.project.Subreddits)
	for ev := range events {
		if !ev.IsPost() {
			continue
		}
		if w.process(ctx, *ev.Post) {
			lgr.Printf("[INFO] credits exhausted for project %s, stopping worker", w.project.ID)
			w.exhaust()
		}
	}
}

// process runs one post through the pipeline, reports credit exhaustion.
// The evaluate-persist-meter block retries as a unit; whatever the outcome,
// the post is marked seen so it is never reprocessed.
func (w *Worker) process(ctx context.Context, post domain.Post) (exhausted bool) {
	seen, err := w.db.Seen(ctx, w.project.ID, post.ID)
	if err != nil {
		lgr.Printf("[WARN] seen check failed for post %s, project %s: %v", post.ID, w.project.ID, err)
	} else if seen {
		return false
	}

	retrier := repeater.NewFixed(w.cfg.RetryAttempts, w.cfg.RetryDelay)
	err = retrier.Do(ctx, func() error {
		eval, insights, evalErr := w.judge.Evaluate(ctx, post, w.project)
		if evalErr != nil {
			return evalErr
		}

		if !eval.IsRelevant {
			// rejected posts leave no trace beyond the seen marker
			lgr.Printf("[DEBUG] post %s rejected for project %s by %s tier", post.ID, w.project.ID, eval.Tier)
			return nil
		}

		sp := &domain.SavedPost{
			Post:            post,
			ProjectID:       w.project.ID,
			ProfileID:       w.project.ProfileID,
			IsRelevant:      eval.IsRelevant,
			Reasoning:       eval.Reasoning,
			ProfileInsights: insights,
		}
		if saveErr := w.db.SaveSubmission(ctx, sp); saveErr != nil {
			if errors.Is(saveErr, store.ErrAlreadyExists) {
				// someone else persisted this one first, no credit spent
				lgr.Printf("[DEBUG] post %s already saved for project %s", post.ID, w.project.ID)
				return nil
			}
			return saveErr
		}
		lgr.Printf("[INFO] saved post %s for project %s, relevant: %v, tier: %s",
			post.ID, w.project.ID, eval.IsRelevant, eval.Tier)

		remaining, meterErr := w.db.DecrementCredits(ctx, w.project.ProfileID)
		if meterErr != nil {
			if errors.Is(meterErr, store.ErrNoBalance) {
				// no credit record for this profile, nothing to charge
				lgr.Printf("[WARN] no credit record for profile %s, post %s saved unmetered",
					w.project.ProfileID, post.ID)
				return nil
			}
			return meterErr
		}
		if remaining == 0 {
			exhausted = true
		}
		return nil
	})
	if err != nil {
		lgr.Printf("[WARN] giving up on post %s for project %s after %d attempts: %v",
			post.ID, w.project.ID, w.cfg.RetryAttempts, err)
	}

	if markErr := w.db.MarkSeen(ctx, w.project.ID, post.ID); markErr != nil {
		lgr.Printf("[WARN] mark seen failed for post %s, project %s: %v", post.ID, w.project.ID, markErr)
	}
	return exhausted
}

// exhaust stops the worker from inside the run loop and clears the project's
// running flag so it does not resume on the next boot
func (w *Worker) exhaust() {
	w.mu.Lock()
	if w.state == StateRunning {
		w.state = StateStopping
	}
	cancel := w.cancel
	w.mu.Unlock()

	w.clearRunning()
	if cancel != nil {
		cancel()
	}
}

// Stop halts the worker on user request and clears the project's running
// flag. Safe to call at any state, including more than once. Returns an
// error only when the worker fails to stop within the configured timeout.
func (w *Worker) Stop(ctx context.Context) error {
	if err := w.halt(ctx); err != nil {
		return err
	}
	w.clearRunning()
	return nil
}

// Shutdown halts the worker without touching the running flag, the project
// resumes on the next boot. Used on process shutdown.
func (w *Worker) Shutdown(ctx context.Context) error {
	return w.halt(ctx)
}

// halt cancels the run loop and waits for it to finish, bounded by the
// configured stop timeout
func (w *Worker) halt(ctx context.Context) error {
	w.mu.Lock()
	switch w.state {
	case StateStopped:
		w.mu.Unlock()
		return nil
	case StateCreated:
		// never ran, nothing to wait for
		w.state = StateStopped
		w.mu.Unlock()
		w.doneOnce.Do(func() { close(w.done) })
		return nil
	default:
		w.state = StateStopping
	}
	cancel := w.cancel
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	timeout := w.cfg.StopTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	select {
	case <-w.done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("worker for project %s did not stop within %s", w.project.ID, timeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// clearRunning is best-effort, a failure costs one spurious resume on boot
func (w *Worker) clearRunning() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := w.db.SetProjectRunning(ctx, w.project.ID, false); err != nil {
		lgr.Printf("[WARN] failed to clear running flag for project %s: %v", w.project.ID, err)
	}
}
