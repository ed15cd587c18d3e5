package store

import (
	"context"
	"fmt"
)

// Seen reports whether a post already completed the pipeline for a project
func (s *Store) Seen(ctx context.Context, projectID, postID string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM seen_posts WHERE project_id = ? AND post_id = ?)",
		projectID, postID)
	if err != nil {
		return false, fmt.Errorf("check seen: %w", err)
	}
	return exists, nil
}

// MarkSeen records a dedup marker for a (project, post) pair. Markers are
// written after an item completes the pipeline regardless of relevance and
// are never deleted; idempotency of the submission insert is the real
// backstop, so a lost marker only costs a re-evaluation.
func (s *Store) MarkSeen(ctx context.Context, projectID, postID string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO seen_posts (project_id, post_id) VALUES (?, ?)",
		projectID, postID)
	if err != nil {
		return fmt.Errorf("mark seen: %w", err)
	}
	return nil
}
