// Package server exposes the control surface: start and stop project
// workers, inspect their live state and read back saved submissions.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/startino/reletino/pkg/domain"
	"github.com/startino/reletino/pkg/store"
	"github.com/startino/reletino/pkg/worker"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/registry.go -pkg mocks -skip-ensure -fmt goimports . Registry

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	db       Database
	registry Registry
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for server operations
type Database interface {
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	GetSubmissions(ctx context.Context, projectID string, limit int) ([]*domain.SavedPost, error)
	GetCredits(ctx context.Context, profileID string) (int, error)
}

// Registry interface for worker lifecycle operations
type Registry interface {
	Start(ctx context.Context, projectID string) error
	Stop(ctx context.Context, projectID string) error
	Statuses() []worker.Status
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, registry Registry, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		db:       db,
		registry: registry,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("reletino", "startino", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /projects/{id}/start", s.startHandler)
		r.HandleFunc("POST /projects/{id}/stop", s.stopHandler)
		r.HandleFunc("GET /projects/{id}/submissions", s.submissionsHandler)
		r.HandleFunc("GET /projects/{id}/credits", s.creditsHandler)
	})
}

// statusHandler returns server status and the live worker view
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"workers": s.registry.Statuses(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// startHandler launches a worker for the project, restarting a live one
func (s *Server) startHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.registry.Start(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RenderError(w, r, fmt.Errorf("project %s not found", id), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] start project %s: %v", id, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"project_id": id, "status": "started"})
}

// stopHandler halts the project's worker
func (s *Server) stopHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.registry.Stop(r.Context(), id); err != nil {
		if errors.Is(err, worker.ErrNotRunning) {
			RenderError(w, r, fmt.Errorf("project %s is not running", id), http.StatusConflict)
			return
		}
		lgr.Printf("[ERROR] stop project %s: %v", id, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"project_id": id, "status": "stopped"})
}

// submissionsHandler returns saved posts for a project, newest first
func (s *Server) submissionsHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.db.GetProject(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RenderError(w, r, fmt.Errorf("project %s not found", id), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] load project %s: %v", id, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			RenderError(w, r, fmt.Errorf("invalid limit %q", v), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	submissions, err := s.db.GetSubmissions(r.Context(), id, limit)
	if err != nil {
		lgr.Printf("[ERROR] get submissions for project %s: %v", id, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{"project_id": id, "submissions": submissions})
}

// creditsHandler returns the remaining balance for the project's account
func (s *Server) creditsHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	project, err := s.db.GetProject(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RenderError(w, r, fmt.Errorf("project %s not found", id), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] load project %s: %v", id, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	credits, err := s.db.GetCredits(r.Context(), project.ProfileID)
	if err != nil {
		if errors.Is(err, store.ErrNoBalance) {
			RenderError(w, r, fmt.Errorf("no balance for project %s", id), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] get credits for project %s: %v", id, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{"project_id": id, "credits": credits})
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
