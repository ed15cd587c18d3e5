package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/startino/reletino/pkg/domain"
	"github.com/startino/reletino/pkg/store"
	"github.com/startino/reletino/pkg/worker/mocks"
)

// projectStoreWithFlags tracks running flags in memory
func projectStoreWithFlags(projects ...*domain.Project) (*mocks.ProjectStoreMock, *sync.Map) {
	byID := map[string]*domain.Project{}
	for _, p := range projects {
		byID[p.ID] = p
	}
	flags := &sync.Map{}

	return &mocks.ProjectStoreMock{
		GetProjectFunc: func(_ context.Context, id string) (*domain.Project, error) {
			p, ok := byID[id]
			if !ok {
				return nil, store.ErrNotFound
			}
			return p, nil
		},
		GetRunningProjectsFunc: func(context.Context) ([]*domain.Project, error) {
			var running []*domain.Project
			for _, p := range byID {
				if p.Running {
					running = append(running, p)
				}
			}
			return running, nil
		},
		SetProjectRunningFunc: func(_ context.Context, id string, running bool) error {
			flags.Store(id, running)
			return nil
		},
	}, flags
}

func testFactory(db Database) Factory {
	return func(project domain.Project) *Worker {
		stream := &mocks.StreamerMock{StreamFunc: eventStream()}
		return New(project, stream, relevantJudge(), db, testWorkerConfig())
	}
}

func TestRegistry_StartStop(t *testing.T) {
	ps, flags := projectStoreWithFlags(&domain.Project{ID: "proj-1", ProfileID: "prof-1"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg := NewRegistry(ctx, ps, testFactory(defaultDB()))

	require.NoError(t, reg.Start(ctx, "proj-1"))
	running, _ := flags.Load("proj-1")
	assert.Equal(t, true, running)

	require.Eventually(t, func() bool {
		statuses := reg.Statuses()
		return len(statuses) == 1 && statuses[0].State == StateRunning
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, reg.Stop(ctx, "proj-1"))
	assert.Empty(t, reg.Statuses())

	// stop after stop reports not running
	assert.Equal(t, ErrNotRunning, reg.Stop(ctx, "proj-1"))
}

func TestRegistry_StartUnknownProject(t *testing.T) {
	ps, _ := projectStoreWithFlags()
	reg := NewRegistry(context.Background(), ps, testFactory(defaultDB()))

	err := reg.Start(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrNotFound))
	assert.Empty(t, reg.Statuses())
}

func TestRegistry_RestartReplacesWorker(t *testing.T) {
	ps, _ := projectStoreWithFlags(&domain.Project{ID: "proj-1", ProfileID: "prof-1"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var created []*Worker
	db := defaultDB()
	factory := func(project domain.Project) *Worker {
		w := New(project, &mocks.StreamerMock{StreamFunc: eventStream()}, relevantJudge(), db, testWorkerConfig())
		mu.Lock()
		created = append(created, w)
		mu.Unlock()
		return w
	}
	reg := NewRegistry(ctx, ps, factory)

	require.NoError(t, reg.Start(ctx, "proj-1"))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(created) == 1 && created[0].State() == StateRunning
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, reg.Start(ctx, "proj-1"))

	mu.Lock()
	require.Len(t, created, 2)
	first, second := created[0], created[1]
	mu.Unlock()

	// the first worker stopped before the second took over
	assert.Equal(t, StateStopped, first.State())
	require.Eventually(t, func() bool { return second.State() == StateRunning }, time.Second, 5*time.Millisecond)
	assert.Len(t, reg.Statuses(), 1)
}

func TestRegistry_ConcurrentStartSingleWorker(t *testing.T) {
	ps, _ := projectStoreWithFlags(&domain.Project{ID: "proj-1", ProfileID: "prof-1"})
	origSet := ps.SetProjectRunningFunc
	ps.SetProjectRunningFunc = func(ctx context.Context, id string, running bool) error {
		time.Sleep(10 * time.Millisecond) // widen the start window
		return origSet(ctx, id, running)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var created []*Worker
	db := defaultDB()
	factory := func(project domain.Project) *Worker {
		w := New(project, &mocks.StreamerMock{StreamFunc: eventStream()}, relevantJudge(), db, testWorkerConfig())
		mu.Lock()
		created = append(created, w)
		mu.Unlock()
		return w
	}
	reg := NewRegistry(ctx, ps, factory)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, reg.Start(ctx, "proj-1"))
		}()
	}
	wg.Wait()

	require.Len(t, reg.Statuses(), 1)

	// serialized starts leave exactly one worker alive, the rest stopped
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		live := 0
		for _, w := range created {
			if s := w.State(); s == StateRunning || s == StateCreated {
				live++
			}
		}
		return live == 1
	}, time.Second, 5*time.Millisecond)
}

func TestRegistry_Resume(t *testing.T) {
	ps, _ := projectStoreWithFlags(
		&domain.Project{ID: "proj-1", ProfileID: "prof-1", Running: true},
		&domain.Project{ID: "proj-2", ProfileID: "prof-2", Running: false},
		&domain.Project{ID: "proj-3", ProfileID: "prof-1", Running: true},
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg := NewRegistry(ctx, ps, testFactory(defaultDB()))
	require.NoError(t, reg.Resume(ctx))

	statuses := reg.Statuses()
	require.Len(t, statuses, 2)
	ids := []string{statuses[0].ProjectID, statuses[1].ProjectID}
	assert.ElementsMatch(t, []string{"proj-1", "proj-3"}, ids)
}

func TestRegistry_StopAllKeepsFlags(t *testing.T) {
	ps, flags := projectStoreWithFlags(
		&domain.Project{ID: "proj-1", ProfileID: "prof-1"},
		&domain.Project{ID: "proj-2", ProfileID: "prof-2"},
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg := NewRegistry(ctx, ps, testFactory(defaultDB()))
	require.NoError(t, reg.Start(ctx, "proj-1"))
	require.NoError(t, reg.Start(ctx, "proj-2"))

	require.Eventually(t, func() bool {
		for _, s := range reg.Statuses() {
			if s.State != StateRunning {
				return false
			}
		}
		return len(reg.Statuses()) == 2
	}, time.Second, 5*time.Millisecond)

	reg.StopAll(ctx)
	assert.Empty(t, reg.Statuses())

	// shutdown leaves both flags as Start set them
	for _, id := range []string{"proj-1", "proj-2"} {
		v, _ := flags.Load(id)
		assert.Equal(t, true, v, id)
	}
}
