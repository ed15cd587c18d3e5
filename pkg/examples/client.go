// Package examples retrieves previously judged posts similar to the one
// under evaluation, used as few-shot context for the senior tier.
package examples

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/startino/reletino/pkg/config"
)

// Example is one previously judged post with the answer we consider optimal
type Example struct {
	Content string `json:"content"`
	Optimal string `json:"optimal"`
}

// Client talks to the example retrieval service. Retrieval is strictly
// best-effort context for the senior tier; callers treat failures as an
// empty result.
type Client struct {
	endpoint   string
	apiKey     string
	count      int
	httpClient *http.Client
}

// New creates an example retrieval client. An empty endpoint produces a
// disabled client.
func New(cfg config.ExamplesConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	count := cfg.Count
	if count == 0 {
		count = 3
	}
	return &Client{
		endpoint:   strings.TrimSuffix(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		count:      count,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether retrieval is configured
func (c *Client) Enabled() bool { return c.endpoint != "" }

// Retrieve fetches examples similar to the query for the given project and
// returns them formatted for prompt inclusion. No matches yields an empty
// string with no error.
func (c *Client) Retrieve(ctx context.Context, projectID, query string) (string, error) {
	if !c.Enabled() {
		return "", nil
	}

	reqURL := fmt.Sprintf("%s/examples?%s", c.endpoint, url.Values{
		"project": []string{projectID},
		"query":   []string{query},
		"k":       []string{strconv.Itoa(c.count)},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create examples request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch examples: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("examples service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1024*1024))
	if err != nil {
		return "", fmt.Errorf("read examples response: %w", err)
	}

	var result struct {
		Examples []Example `json:"examples"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("parse examples response: %w", err)
	}

	return Format(result.Examples), nil
}

// Format renders examples as the XML-ish block the evaluators expect.
// An empty slice renders to an empty string.
func Format(examples []Example) string {
	if len(examples) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, ex := range examples {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("<example>")
		sb.WriteString("<content>" + ex.Content + "</content>")
		sb.WriteString("<optimal>" + ex.Optimal + "</optimal>")
		sb.WriteString("</example>")
	}
	return sb.String()
}
