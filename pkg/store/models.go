package store

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/startino/reletino/pkg/domain"
)

// projectSQL represents a project row
type projectSQL struct {
	ID         string        `db:"id"`
	ProfileID  string        `db:"profile_id"`
	Title      string        `db:"title"`
	Prompt     string        `db:"prompt"`
	Subreddits stringListSQL `db:"subreddits"`
	Running    bool          `db:"running"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
}

func (p *projectSQL) toDomain() *domain.Project {
	return &domain.Project{
		ID:         p.ID,
		ProfileID:  p.ProfileID,
		Title:      p.Title,
		Prompt:     p.Prompt,
		Subreddits: p.Subreddits,
		Running:    p.Running,
	}
}

// submissionSQL represents a saved post row
type submissionSQL struct {
	ID              int64      `db:"id"`
	ProjectID       string     `db:"project_id"`
	ProfileID       string     `db:"profile_id"`
	PostID          string     `db:"post_id"`
	Subreddit       string     `db:"subreddit"`
	Title           string     `db:"title"`
	SelfText        string     `db:"selftext"`
	Author          string     `db:"author"`
	URL             string     `db:"url"`
	PostCreatedAt   *time.Time `db:"post_created_at"`
	IsRelevant      bool       `db:"is_relevant"`
	Reasoning       string     `db:"reasoning"`
	ProfileInsights string     `db:"profile_insights"`
	SavedAt         time.Time  `db:"saved_at"`
}

func (s *submissionSQL) toDomain() *domain.SavedPost {
	sp := &domain.SavedPost{
		Post: domain.Post{
			ID:        s.PostID,
			Subreddit: s.Subreddit,
			Title:     s.Title,
			SelfText:  s.SelfText,
			Author:    s.Author,
			URL:       s.URL,
		},
		ProjectID:       s.ProjectID,
		ProfileID:       s.ProfileID,
		IsRelevant:      s.IsRelevant,
		Reasoning:       s.Reasoning,
		ProfileInsights: s.ProfileInsights,
		SavedAt:         s.SavedAt,
	}
	if s.PostCreatedAt != nil {
		sp.CreatedAt = *s.PostCreatedAt
	}
	return sp
}

// stringListSQL is a JSON array of strings for SQL operations
type stringListSQL []string

// Value implements driver.Valuer for database storage
func (l stringListSQL) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for database retrieval
func (l *stringListSQL) Scan(value interface{}) error {
	if value == nil {
		*l = stringListSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*l = stringListSQL{}
		return nil
	}

	return json.Unmarshal(data, l)
}
