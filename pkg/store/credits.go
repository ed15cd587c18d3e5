package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// DecrementCredits atomically decrements the account's credit balance by one
// and returns the remaining balance. The decrement is a single server-side
// statement guarded by credits > 0, so the balance never goes negative under
// concurrent workers sharing the account. A missing balance record yields
// ErrNoBalance; a balance already at zero returns 0 without an error, which
// callers treat as exhaustion.
func (s *Store) DecrementCredits(ctx context.Context, profileID string) (remaining int, err error) {
	err = s.db.GetContext(ctx, &remaining, `
		UPDATE usage SET credits = credits - 1, updated_at = CURRENT_TIMESTAMP
		WHERE profile_id = ? AND credits > 0
		RETURNING credits
	`, profileID)

	if err == nil {
		return remaining, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("decrement credits: %w", err)
	}

	// nothing updated: either the account has no balance record or the
	// balance is already exhausted
	var exists bool
	if err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM usage WHERE profile_id = ?)", profileID); err != nil {
		return 0, fmt.Errorf("check balance exists: %w", err)
	}
	if !exists {
		return 0, ErrNoBalance
	}
	return 0, nil
}

// GetCredits returns the current balance for an account
func (s *Store) GetCredits(ctx context.Context, profileID string) (int, error) {
	var credits int
	err := s.db.GetContext(ctx, &credits, "SELECT credits FROM usage WHERE profile_id = ?", profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNoBalance
		}
		return 0, fmt.Errorf("get credits: %w", err)
	}
	return credits, nil
}

// SetCredits creates or replaces the balance record for an account
func (s *Store) SetCredits(ctx context.Context, profileID string, credits int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO usage (profile_id, credits) VALUES (?, ?)
		ON CONFLICT(profile_id) DO UPDATE SET credits = excluded.credits, updated_at = CURRENT_TIMESTAMP
	`, profileID, credits)
	if err != nil {
		return fmt.Errorf("set credits: %w", err)
	}
	return nil
}
