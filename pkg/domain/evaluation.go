package domain

import "time"

// Tier identifies which evaluator produced an evaluation
type Tier string

// evaluation tiers, cheap to expensive
const (
	TierJunior Tier = "junior"
	TierSenior Tier = "senior"
)

// Evaluation is the outcome of a completed evaluator call. A processing
// failure is represented by the absence of an Evaluation, never by
// IsRelevant=false - Reasoning is always populated on a completed tier.
type Evaluation struct {
	IsRelevant bool
	Reasoning  string
	Tier       Tier
}

// SavedPost is the persisted record for a post that went through the
// cascade: post fields plus the final evaluation and owning ids
type SavedPost struct {
	Post
	ProjectID       string
	ProfileID       string
	IsRelevant      bool
	Reasoning       string
	ProfileInsights string
	SavedAt         time.Time
}
