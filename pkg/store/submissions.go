package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/startino/reletino/pkg/domain"
)

// SaveSubmission persists a saved post for a project. The gateway checks for
// an existing record with the same canonical url within the project before
// inserting; ErrAlreadyExists is returned on a hit and nothing is written.
// The unique index on (project_id, url) backstops the racy pre-check, and a
// constraint violation maps to ErrAlreadyExists as well.
func (s *Store) SaveSubmission(ctx context.Context, sp *domain.SavedPost) error {
	exists, err := s.submissionExists(ctx, sp.ProjectID, sp.URL)
	if err != nil {
		return fmt.Errorf("check submission exists: %w", err)
	}
	if exists {
		return ErrAlreadyExists
	}

	row := &submissionSQL{
		ProjectID:       sp.ProjectID,
		ProfileID:       sp.ProfileID,
		PostID:          sp.Post.ID,
		Subreddit:       sp.Subreddit,
		Title:           sp.Title,
		SelfText:        sp.SelfText,
		Author:          sp.Author,
		URL:             sp.URL,
		IsRelevant:      sp.IsRelevant,
		Reasoning:       sp.Reasoning,
		ProfileInsights: sp.ProfileInsights,
	}
	if !sp.Post.CreatedAt.IsZero() {
		created := sp.Post.CreatedAt
		row.PostCreatedAt = &created
	}

	query := `
		INSERT INTO submissions (
			project_id, profile_id, post_id, subreddit, title, selftext,
			author, url, post_created_at, is_relevant, reasoning, profile_insights
		) VALUES (
			:project_id, :profile_id, :post_id, :subreddit, :title, :selftext,
			:author, :url, :post_created_at, :is_relevant, :reasoning, :profile_insights
		)
	`
	if _, err := s.db.NamedExecContext(ctx, query, row); err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("insert submission: %w", err)
	}

	return nil
}

// submissionExists checks for a record with the same url within the project
func (s *Store) submissionExists(ctx context.Context, projectID, url string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM submissions WHERE project_id = ? AND url = ?)",
		projectID, url)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// GetSubmission retrieves a saved post by project and url
func (s *Store) GetSubmission(ctx context.Context, projectID, url string) (*domain.SavedPost, error) {
	var row submissionSQL
	err := s.db.GetContext(ctx, &row,
		"SELECT * FROM submissions WHERE project_id = ? AND url = ?", projectID, url)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return row.toDomain(), nil
}

// GetSubmissions retrieves saved posts for a project, newest first
func (s *Store) GetSubmissions(ctx context.Context, projectID string, limit int) ([]*domain.SavedPost, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []submissionSQL
	query := `
		SELECT * FROM submissions
		WHERE project_id = ?
		ORDER BY saved_at DESC, id DESC
		LIMIT ?
	`
	if err := s.db.SelectContext(ctx, &rows, query, projectID, limit); err != nil {
		return nil, fmt.Errorf("get submissions: %w", err)
	}

	result := make([]*domain.SavedPost, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toDomain())
	}
	return result, nil
}

// isUniqueViolation checks if an error is a SQLite unique constraint error
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "SQLITE_CONSTRAINT")
}
