// Package cascade orchestrates the two-tier relevance evaluation: a cheap
// junior pass filters out the obviously irrelevant, the surviving posts get
// profile enrichment and similarity examples before the senior verdict.
package cascade

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/startino/reletino/pkg/config"
	"github.com/startino/reletino/pkg/domain"
	"github.com/startino/reletino/pkg/llm"
	"github.com/startino/reletino/pkg/profile"
)

//go:generate moq -out mocks/evaluator.go -pkg mocks -skip-ensure -fmt goimports . Evaluator
//go:generate moq -out mocks/profile_analyzer.go -pkg mocks -skip-ensure -fmt goimports . ProfileAnalyzer
//go:generate moq -out mocks/example_source.go -pkg mocks -skip-ensure -fmt goimports . ExampleSource

// Evaluator runs a single tier call
type Evaluator interface {
	Evaluate(ctx context.Context, req llm.Request) (*domain.Evaluation, error)
}

// ProfileAnalyzer produces insights about a post author
type ProfileAnalyzer interface {
	Analyze(ctx context.Context, author string) (string, error)
}

// ExampleSource retrieves formatted similarity examples for a post
type ExampleSource interface {
	Enabled() bool
	Retrieve(ctx context.Context, projectID, query string) (string, error)
}

// Cascade evaluates posts through the junior and senior tiers. Enrichment
// failures are never fatal, only a tier exhausting its retries is.
type Cascade struct {
	junior   Evaluator
	senior   Evaluator
	profiles ProfileAnalyzer // nil disables enrichment
	examples ExampleSource   // nil disables example retrieval
	cfg      config.WorkerConfig
}

// New creates a cascade. Pass nil profiles or examples to disable that
// enrichment stage.
func New(junior, senior Evaluator, profiles ProfileAnalyzer, examples ExampleSource, cfg config.WorkerConfig) *Cascade {
	return &Cascade{junior: junior, senior: senior, profiles: profiles, examples: examples, cfg: cfg}
}

// Evaluate runs the full cascade for one post. Returns the final evaluation
// and the profile insights that informed it (empty when enrichment was
// skipped or unavailable). A junior rejection is final and skips enrichment
// and the senior tier entirely.
func (c *Cascade) Evaluate(ctx context.Context, post domain.Post, project domain.Project) (*domain.Evaluation, string, error) {
	examples := c.retrieveExamples(ctx, post, project)

	juniorEval, err := c.callTier(ctx, c.junior, llm.Request{
		Post:          post,
		ProjectPrompt: project.Prompt,
		Examples:      examples,
	})
	if err != nil {
		return nil, "", fmt.Errorf("junior tier for post %s: %w", post.ID, err)
	}
	if !juniorEval.IsRelevant {
		return juniorEval, "", nil
	}

	insights := c.analyzeAuthor(ctx, post.Author)

	seniorEval, err := c.callTier(ctx, c.senior, llm.Request{
		Post:            post,
		ProjectPrompt:   project.Prompt,
		ProfileInsights: insights,
		Examples:        examples,
	})
	if err != nil {
		return nil, "", fmt.Errorf("senior tier for post %s: %w", post.ID, err)
	}
	return seniorEval, insights, nil
}

// callTier runs one evaluator with the configured fixed retry policy
func (c *Cascade) callTier(ctx context.Context, ev Evaluator, req llm.Request) (*domain.Evaluation, error) {
	var eval *domain.Evaluation
	retrier := repeater.NewFixed(c.cfg.RetryAttempts, c.cfg.RetryDelay)
	err := retrier.Do(ctx, func() error {
		var evalErr error
		eval, evalErr = ev.Evaluate(ctx, req)
		return evalErr
	})
	if err != nil {
		return nil, err
	}
	return eval, nil
}

// retrieveExamples is best-effort, any failure degrades to no examples
func (c *Cascade) retrieveExamples(ctx context.Context, post domain.Post, project domain.Project) string {
	if c.examples == nil || !c.examples.Enabled() {
		return ""
	}
	examples, err := c.examples.Retrieve(ctx, project.ID, llm.PostToXML(post))
	if err != nil {
		lgr.Printf("[WARN] example retrieval failed for post %s: %v", post.ID, err)
		return ""
	}
	return examples
}

// analyzeAuthor is best-effort, unavailable profiles degrade to no insights
func (c *Cascade) analyzeAuthor(ctx context.Context, author string) string {
	if c.profiles == nil {
		return ""
	}
	insights, err := c.profiles.Analyze(ctx, author)
	if err != nil {
		if !errors.Is(err, profile.ErrUnavailable) {
			lgr.Printf("[WARN] profile analysis failed for %s: %v", author, err)
		}
		return ""
	}
	return insights
}
