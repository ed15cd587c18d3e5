// Package profile builds short natural-language insights about a post author
// from their public history, used to enrich the senior evaluation tier.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"github.com/startino/reletino/pkg/config"
	"github.com/startino/reletino/pkg/store"
)

//go:generate moq -out mocks/insight_store.go -pkg mocks -skip-ensure -fmt goimports . InsightStore

// ErrUnavailable indicates the author profile cannot be fetched, suspended
// or deleted accounts mostly. Callers degrade to evaluation without insights.
var ErrUnavailable = errors.New("profile unavailable")

// InsightStore caches generated insights keyed by author
type InsightStore interface {
	GetProfileInsights(ctx context.Context, author string) (string, error)
	SaveProfileInsights(ctx context.Context, author, insights string) error
}

// Analyzer fetches an author's public history and distills it into insights
// with a single LLM call. Results are cached, one generation per author.
type Analyzer struct {
	client     *openai.Client
	cfg        config.ProfileConfig
	store      InsightStore
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewAnalyzer creates a profile analyzer. baseURL and userAgent come from
// the stream configuration so profile fetches look like listing polls.
func NewAnalyzer(client *openai.Client, cfg config.ProfileConfig, st InsightStore, baseURL, userAgent string) *Analyzer {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Analyzer{
		client:     client,
		cfg:        cfg,
		store:      st,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

const insightSystemPrompt = `You are an expert at analyzing a person's public posting history.
Given a list of recent posts and comments by one author, produce a short set of insights about them:
what they do, what they care about, what they might be looking for, and anything that hints at
purchasing intent or professional context. Be factual and concise, use short bullet points,
and never invent details that are not supported by the history.`

// Analyze returns insights for the author, generating and caching them on
// first sight. Returns ErrUnavailable when the profile cannot be fetched.
func (a *Analyzer) Analyze(ctx context.Context, author string) (string, error) {
	// cache first, insight generation is the expensive path
	insights, err := a.store.GetProfileInsights(ctx, author)
	if err == nil {
		return insights, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("read cached insights for %s: %w", author, err)
	}

	history, err := a.fetchHistory(ctx, author)
	if err != nil {
		return "", err
	}
	if history == "" {
		return "", ErrUnavailable
	}

	insights, err = a.generate(ctx, author, history)
	if err != nil {
		return "", err
	}

	if err := a.store.SaveProfileInsights(ctx, author, insights); err != nil {
		// cache failure is not worth losing the insights over
		lgr.Printf("[WARN] failed to cache insights for %s: %v", author, err)
	}
	return insights, nil
}

// overviewResponse mirrors the author overview listing
type overviewResponse struct {
	Data struct {
		Children []struct {
			Kind string `json:"kind"`
			Data struct {
				Subreddit string `json:"subreddit"`
				Title     string `json:"title"`
				SelfText  string `json:"selftext"`
				Body      string `json:"body"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// fetchHistory pulls the author's recent posts and comments and renders them
// as plain text for the insight prompt
func (a *Analyzer) fetchHistory(ctx context.Context, author string) (string, error) {
	reqURL := fmt.Sprintf("%s/user/%s/overview.json?limit=%d", a.baseURL, url.PathEscape(author), a.cfg.MaxItems)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create overview request: %w", err)
	}
	req.Header.Set("User-Agent", a.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch overview for %s: %w", author, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden, http.StatusNotFound:
		return "", fmt.Errorf("overview for %s: %w", author, ErrUnavailable)
	default:
		return "", fmt.Errorf("overview for %s returned status %d", author, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return "", fmt.Errorf("read overview for %s: %w", author, err)
	}

	var overview overviewResponse
	if err := json.Unmarshal(body, &overview); err != nil {
		return "", fmt.Errorf("parse overview for %s: %w", author, err)
	}

	var sb strings.Builder
	for _, child := range overview.Data.Children {
		switch child.Kind {
		case "t3":
			sb.WriteString(fmt.Sprintf("Post in r/%s: %s\n", child.Data.Subreddit, child.Data.Title))
			if child.Data.SelfText != "" {
				sb.WriteString(child.Data.SelfText + "\n")
			}
		case "t1":
			sb.WriteString(fmt.Sprintf("Comment in r/%s: %s\n", child.Data.Subreddit, child.Data.Body))
		default:
			continue
		}
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}

// generate distills the rendered history into insights
func (a *Analyzer) generate(ctx context.Context, author, history string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.cfg.Model,
		Temperature: float32(a.cfg.Temperature),
		MaxTokens:   a.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: insightSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Recent history of u/%s:\n\n%s", author, history)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("generate insights for %s: %w", author, err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("empty insights response for %s", author)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
