package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// GetProfileInsights returns cached insights for an author, ErrNotFound on miss
func (s *Store) GetProfileInsights(ctx context.Context, author string) (string, error) {
	var insights string
	err := s.db.GetContext(ctx, &insights, "SELECT insights FROM profiles WHERE author = ?", author)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get profile insights: %w", err)
	}
	return insights, nil
}

// SaveProfileInsights caches generated insights keyed by author. The first
// write wins, insights are generated at most once per author.
func (s *Store) SaveProfileInsights(ctx context.Context, author, insights string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO profiles (author, insights) VALUES (?, ?)", author, insights)
	if err != nil {
		return fmt.Errorf("save profile insights: %w", err)
	}
	return nil
}
