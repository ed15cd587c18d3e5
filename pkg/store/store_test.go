package store

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/startino/reletino/pkg/domain"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "reletino-test-*.db")
	require.NoError(t, err)
	tmpFile.Close()
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	s, err := New(context.Background(), Config{DSN: "file:" + tmpFile.Name() + "?mode=rwc"})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func createTestProject(t *testing.T, s *Store, id, profileID string) *domain.Project {
	t.Helper()

	p := &domain.Project{
		ID:         id,
		ProfileID:  profileID,
		Title:      "Test Project",
		Prompt:     "looking for people asking about CRM tools",
		Subreddits: []string{"smallbusiness", "sales"},
	}
	require.NoError(t, s.CreateProject(context.Background(), p))
	return p
}

func TestStore_InitSchema(t *testing.T) {
	s := setupTestStore(t)

	var count int
	err := s.db.Get(&count, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name IN ('projects', 'submissions', 'usage', 'seen_posts', 'profiles')
	`)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestStore_NewWithDefaults(t *testing.T) {
	s, err := New(context.Background(), Config{})
	require.NoError(t, err)
	defer func() {
		s.Close()
		os.Remove("reletino.db")
	}()

	assert.NoError(t, s.Ping(context.Background()))
}

func TestStore_ProjectLifecycle(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	created := createTestProject(t, s, "p1", "acct1")

	got, err := s.GetProject(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.ProfileID, got.ProfileID)
	assert.Equal(t, created.Prompt, got.Prompt)
	assert.Equal(t, []string{"smallbusiness", "sales"}, got.Subreddits)
	assert.False(t, got.Running)

	require.NoError(t, s.SetProjectRunning(ctx, "p1", true))
	got, err = s.GetProject(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, got.Running)

	running, err := s.GetRunningProjects(ctx)
	require.NoError(t, err)
	require.Len(t, running, 1)
	assert.Equal(t, "p1", running[0].ID)

	require.NoError(t, s.SetProjectRunning(ctx, "p1", false))
	running, err = s.GetRunningProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, running)
}

func TestStore_GetProjectNotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.GetProject(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.SetProjectRunning(context.Background(), "missing", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_SaveSubmission(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	createTestProject(t, s, "p1", "acct1")

	sp := &domain.SavedPost{
		Post: domain.Post{
			ID:        "abc123",
			Subreddit: "smallbusiness",
			Title:     "Best CRM for a 3-person team?",
			SelfText:  "We are drowning in spreadsheets",
			Author:    "tired_founder",
			URL:       "https://example.com/r/smallbusiness/abc123",
		},
		ProjectID:       "p1",
		ProfileID:       "acct1",
		IsRelevant:      true,
		Reasoning:       "author explicitly asks for CRM recommendations",
		ProfileInsights: "active in founder communities",
	}

	require.NoError(t, s.SaveSubmission(ctx, sp))

	got, err := s.GetSubmission(ctx, "p1", sp.URL)
	require.NoError(t, err)
	assert.Equal(t, "abc123", got.Post.ID)
	assert.True(t, got.IsRelevant)
	assert.Equal(t, sp.Reasoning, got.Reasoning)
	assert.Equal(t, sp.ProfileInsights, got.ProfileInsights)
}

func TestStore_SaveSubmissionDuplicate(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	createTestProject(t, s, "p1", "acct1")
	createTestProject(t, s, "p2", "acct1")

	sp := &domain.SavedPost{
		Post:       domain.Post{ID: "x1", URL: "https://x/1", Title: "t", Author: "a"},
		ProjectID:  "p1",
		ProfileID:  "acct1",
		IsRelevant: true,
		Reasoning:  "r",
	}
	require.NoError(t, s.SaveSubmission(ctx, sp))

	// same url within the same project reports already exists, no insert
	dup := *sp
	dup.Reasoning = "different reasoning"
	err := s.SaveSubmission(ctx, &dup)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	got, err := s.GetSubmission(ctx, "p1", "https://x/1")
	require.NoError(t, err)
	assert.Equal(t, "r", got.Reasoning, "original record must be untouched")

	// same url in another project is a separate record
	other := *sp
	other.ProjectID = "p2"
	assert.NoError(t, s.SaveSubmission(ctx, &other))
}

func TestStore_SaveSubmissionConcurrent(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	createTestProject(t, s, "p1", "acct1")

	const writers = 10
	results := make(chan error, writers)
	for i := 0; i < writers; i++ {
		go func() {
			sp := &domain.SavedPost{
				Post:      domain.Post{ID: "x1", URL: "https://x/1", Title: "t", Author: "a"},
				ProjectID: "p1",
				ProfileID: "acct1",
			}
			results <- s.SaveSubmission(ctx, sp)
		}()
	}

	var saved, duplicates int
	for i := 0; i < writers; i++ {
		err := <-results
		switch {
		case err == nil:
			saved++
		default:
			require.ErrorIs(t, err, ErrAlreadyExists)
			duplicates++
		}
	}

	assert.Equal(t, 1, saved, "exactly one writer wins")
	assert.Equal(t, writers-1, duplicates)

	var count int
	require.NoError(t, s.db.Get(&count, "SELECT COUNT(*) FROM submissions WHERE project_id = 'p1'"))
	assert.Equal(t, 1, count)
}

func TestStore_GetSubmissions(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	createTestProject(t, s, "p1", "acct1")

	for _, id := range []string{"a", "b", "c"} {
		sp := &domain.SavedPost{
			Post:      domain.Post{ID: id, URL: "https://x/" + id},
			ProjectID: "p1",
			ProfileID: "acct1",
		}
		require.NoError(t, s.SaveSubmission(ctx, sp))
	}

	subs, err := s.GetSubmissions(ctx, "p1", 2)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "c", subs[0].Post.ID, "newest first")

	subs, err = s.GetSubmissions(ctx, "p1", 0)
	require.NoError(t, err)
	assert.Len(t, subs, 3, "zero limit falls back to default")
}

func TestStore_DecrementCredits(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetCredits(ctx, "acct1", 3))

	for _, want := range []int{2, 1, 0} {
		remaining, err := s.DecrementCredits(ctx, "acct1")
		require.NoError(t, err)
		assert.Equal(t, want, remaining)
	}

	// further decrements report exhaustion without going negative
	remaining, err := s.DecrementCredits(ctx, "acct1")
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)

	credits, err := s.GetCredits(ctx, "acct1")
	require.NoError(t, err)
	assert.Equal(t, 0, credits)
}

func TestStore_DecrementCreditsNoBalance(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.DecrementCredits(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNoBalance)

	_, err = s.GetCredits(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNoBalance)
}

func TestStore_DecrementCreditsConcurrent(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	const balance = 5
	const callers = 20
	require.NoError(t, s.SetCredits(ctx, "acct1", balance))

	type result struct {
		remaining int
		err       error
	}
	results := make(chan result, callers)
	for i := 0; i < callers; i++ {
		go func() {
			remaining, err := s.DecrementCredits(ctx, "acct1")
			results <- result{remaining, err}
		}()
	}

	for i := 0; i < callers; i++ {
		r := <-results
		require.NoError(t, r.err)
		assert.GreaterOrEqual(t, r.remaining, 0)
	}

	credits, err := s.GetCredits(ctx, "acct1")
	require.NoError(t, err)
	assert.Equal(t, 0, credits, "balance fully consumed, never negative")
}

func TestStore_SeenMarkers(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	seen, err := s.Seen(ctx, "p1", "post1")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, s.MarkSeen(ctx, "p1", "post1"))

	seen, err = s.Seen(ctx, "p1", "post1")
	require.NoError(t, err)
	assert.True(t, seen)

	// marker is scoped to the project
	seen, err = s.Seen(ctx, "p2", "post1")
	require.NoError(t, err)
	assert.False(t, seen)

	// marking twice is fine
	assert.NoError(t, s.MarkSeen(ctx, "p1", "post1"))
}

func TestStore_ProfileInsightsCache(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.GetProfileInsights(ctx, "someone")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.SaveProfileInsights(ctx, "someone", "runs a small agency"))

	insights, err := s.GetProfileInsights(ctx, "someone")
	require.NoError(t, err)
	assert.Equal(t, "runs a small agency", insights)

	// first write wins
	require.NoError(t, s.SaveProfileInsights(ctx, "someone", "other text"))
	insights, err = s.GetProfileInsights(ctx, "someone")
	require.NoError(t, err)
	assert.Equal(t, "runs a small agency", insights)
}

func TestStore_InTransaction(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	err := s.InTransaction(ctx, func(tx *sqlx.Tx) error {
		_, execErr := tx.ExecContext(ctx, "INSERT INTO usage (profile_id, credits) VALUES (?, ?)", "prof-tx", 5)
		return execErr
	})
	require.NoError(t, err)

	credits, err := s.GetCredits(ctx, "prof-tx")
	require.NoError(t, err)
	assert.Equal(t, 5, credits)

	// a failing function rolls everything back
	err = s.InTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, execErr := tx.ExecContext(ctx, "UPDATE usage SET credits = 0 WHERE profile_id = ?", "prof-tx"); execErr != nil {
			return execErr
		}
		return errors.New("abort")
	})
	require.Error(t, err)

	credits, err = s.GetCredits(ctx, "prof-tx")
	require.NoError(t, err)
	assert.Equal(t, 5, credits)
}
