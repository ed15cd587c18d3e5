package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/startino/reletino/pkg/domain"
)

// CreateProject inserts a new project
func (s *Store) CreateProject(ctx context.Context, p *domain.Project) error {
	row := &projectSQL{
		ID:         p.ID,
		ProfileID:  p.ProfileID,
		Title:      p.Title,
		Prompt:     p.Prompt,
		Subreddits: p.Subreddits,
		Running:    p.Running,
	}
	query := `
		INSERT INTO projects (id, profile_id, title, prompt, subreddits, running)
		VALUES (:id, :profile_id, :title, :prompt, :subreddits, :running)
	`
	if _, err := s.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetProject retrieves a project by id
func (s *Store) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	var row projectSQL
	err := s.db.GetContext(ctx, &row, "SELECT * FROM projects WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return row.toDomain(), nil
}

// GetRunningProjects retrieves projects marked running, used to resume
// workers on boot
func (s *Store) GetRunningProjects(ctx context.Context) ([]*domain.Project, error) {
	var rows []projectSQL
	err := s.db.SelectContext(ctx, &rows, "SELECT * FROM projects WHERE running = 1 ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("get running projects: %w", err)
	}

	result := make([]*domain.Project, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toDomain())
	}
	return result, nil
}

// SetProjectRunning updates the running flag of a project
func (s *Store) SetProjectRunning(ctx context.Context, id string, running bool) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE projects SET running = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?", running, id)
	if err != nil {
		return fmt.Errorf("update project running: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
