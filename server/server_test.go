package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/startino/reletino/pkg/domain"
	"github.com/startino/reletino/pkg/store"
	"github.com/startino/reletino/pkg/worker"
	"github.com/startino/reletino/server/mocks"
)

func testServer(db Database, registry Registry) *Server {
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return ":0", 30 * time.Second },
	}
	return New(cfg, db, registry, "test-version", false)
}

func defaultDB() *mocks.DatabaseMock {
	return &mocks.DatabaseMock{
		GetProjectFunc: func(_ context.Context, id string) (*domain.Project, error) {
			if id != "proj-1" {
				return nil, store.ErrNotFound
			}
			return &domain.Project{ID: "proj-1", ProfileID: "prof-1", Title: "leads"}, nil
		},
		GetSubmissionsFunc: func(context.Context, string, int) ([]*domain.SavedPost, error) {
			return []*domain.SavedPost{
				{Post: domain.Post{ID: "p1", Title: "first"}, ProjectID: "proj-1", IsRelevant: true},
			}, nil
		},
		GetCreditsFunc: func(context.Context, string) (int, error) { return 42, nil },
	}
}

func TestServer_StatusHandler(t *testing.T) {
	registry := &mocks.RegistryMock{
		StatusesFunc: func() []worker.Status {
			return []worker.Status{{ProjectID: "proj-1", State: worker.StateRunning}}
		},
	}
	srv := testServer(defaultDB(), registry)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status  string          `json:"status"`
		Version string          `json:"version"`
		Workers []worker.Status `json:"workers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "test-version", resp.Version)
	require.Len(t, resp.Workers, 1)
	assert.Equal(t, "proj-1", resp.Workers[0].ProjectID)
	assert.Equal(t, worker.StateRunning, resp.Workers[0].State)
}

func TestServer_StartHandler(t *testing.T) {
	tests := []struct {
		name     string
		startErr error
		wantCode int
	}{
		{name: "started", startErr: nil, wantCode: http.StatusOK},
		{name: "unknown project", startErr: store.ErrNotFound, wantCode: http.StatusNotFound},
		{name: "internal failure", startErr: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := &mocks.RegistryMock{
				StartFunc: func(_ context.Context, projectID string) error {
					assert.Equal(t, "proj-1", projectID)
					return tt.startErr
				},
			}
			srv := testServer(defaultDB(), registry)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/proj-1/start", http.NoBody)
			rec := httptest.NewRecorder()
			srv.router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Len(t, registry.StartCalls(), 1)
		})
	}
}

func TestServer_StopHandler(t *testing.T) {
	tests := []struct {
		name     string
		stopErr  error
		wantCode int
	}{
		{name: "stopped", stopErr: nil, wantCode: http.StatusOK},
		{name: "not running", stopErr: worker.ErrNotRunning, wantCode: http.StatusConflict},
		{name: "internal failure", stopErr: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := &mocks.RegistryMock{
				StopFunc: func(_ context.Context, projectID string) error {
					assert.Equal(t, "proj-1", projectID)
					return tt.stopErr
				},
			}
			srv := testServer(defaultDB(), registry)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/proj-1/stop", http.NoBody)
			rec := httptest.NewRecorder()
			srv.router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestServer_SubmissionsHandler(t *testing.T) {
	db := defaultDB()
	srv := testServer(db, &mocks.RegistryMock{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/proj-1/submissions?limit=5", http.NoBody)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"p1"`)

	require.Len(t, db.GetSubmissionsCalls(), 1)
	assert.Equal(t, "proj-1", db.GetSubmissionsCalls()[0].ProjectID)
	assert.Equal(t, 5, db.GetSubmissionsCalls()[0].Limit)
}

func TestServer_SubmissionsHandlerErrors(t *testing.T) {
	t.Run("unknown project", func(t *testing.T) {
		srv := testServer(defaultDB(), &mocks.RegistryMock{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/nope/submissions", http.NoBody)
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad limit", func(t *testing.T) {
		srv := testServer(defaultDB(), &mocks.RegistryMock{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/proj-1/submissions?limit=zero", http.NoBody)
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		db := defaultDB()
		db.GetSubmissionsFunc = func(context.Context, string, int) ([]*domain.SavedPost, error) {
			return nil, errors.New("db gone")
		}
		srv := testServer(db, &mocks.RegistryMock{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/proj-1/submissions", http.NoBody)
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestServer_CreditsHandler(t *testing.T) {
	db := defaultDB()
	srv := testServer(db, &mocks.RegistryMock{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/proj-1/credits", http.NoBody)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ProjectID string `json:"project_id"`
		Credits   int    `json:"credits"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 42, resp.Credits)

	// the balance is read for the owning account, not the project id
	require.Len(t, db.GetCreditsCalls(), 1)
	assert.Equal(t, "prof-1", db.GetCreditsCalls()[0].ProfileID)
}

func TestServer_CreditsHandlerNoBalance(t *testing.T) {
	db := defaultDB()
	db.GetCreditsFunc = func(context.Context, string) (int, error) { return 0, store.ErrNoBalance }
	srv := testServer(db, &mocks.RegistryMock{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/proj-1/credits", http.NoBody)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Ping(t *testing.T) {
	srv := testServer(defaultDB(), &mocks.RegistryMock{})

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestServer_RunAndShutdown(t *testing.T) {
	srv := testServer(defaultDB(), &mocks.RegistryMock{
		StatusesFunc: func() []worker.Status { return nil },
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// let the listener come up, then shut down
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
