package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/startino/reletino/pkg/domain"
)

// kindPost is the listing child kind for a regular post
const kindPost = "t3"

// seenWindow caps the number of fullnames remembered across polls
const seenWindow = 500

// Event is a single element of the live stream. Kind carries the raw listing
// child kind; Post is nil for non-post kinds and consumers are expected to
// skip those.
type Event struct {
	Kind string
	Post *domain.Post
}

// IsPost reports whether the event carries a post
func (e Event) IsPost() bool { return e.Kind == kindPost && e.Post != nil }

// Config holds stream client configuration
type Config struct {
	BaseURL      string
	UserAgent    string
	PollInterval time.Duration
	PageSize     int
	Timeout      time.Duration
}

// Client polls public JSON listings and turns them into a live post stream.
// One Stream call serves one worker; the stream is live and non-restartable,
// the channel closes when the context is canceled.
type Client struct {
	baseURL      string
	userAgent    string
	pollInterval time.Duration
	pageSize     int
	httpClient   *http.Client
	sanitizer    *bluemonday.Policy
}

// NewClient creates a stream client
func NewClient(cfg Config) *Client {
	if cfg.PollInterval == 0 {
		cfg.PollInterval = 15 * time.Second
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = 100
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "reletino/1.0"
	}

	return &Client{
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent:    cfg.UserAgent,
		pollInterval: cfg.PollInterval,
		pageSize:     cfg.PageSize,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		sanitizer:    bluemonday.StrictPolicy(),
	}
}

// Stream starts polling the /new listing for the given subreddits and emits
// events on the returned channel, oldest first within each poll. Poll errors
// are logged and retried on the next interval; the stream never terminates
// on its own, only on context cancellation.
func (c *Client) Stream(ctx context.Context, subreddits []string) <-chan Event {
	out := make(chan Event)

	go func() {
		defer close(out)

		seen := newSeenSet(seenWindow)
		url := fmt.Sprintf("%s/r/%s/new.json?limit=%d", c.baseURL, strings.Join(subreddits, "+"), c.pageSize)

		ticker := time.NewTicker(c.pollInterval)
		defer ticker.Stop()

		for {
			events, err := c.poll(ctx, url)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				lgr.Printf("[WARN] poll %s failed: %v", url, err)
			}

			for _, ev := range events {
				if ev.IsPost() && !seen.add(ev.Post.Fullname) {
					continue // already emitted on a previous poll
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// poll fetches one page of the listing and converts it to events
func (c *Client) poll(ctx context.Context, url string) ([]Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	addBrowserHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read listing body: %w", err)
	}

	return c.parseListing(body)
}

// listing wire format, the subset the stream needs
type listingResponse struct {
	Kind string `json:"kind"`
	Data struct {
		Children []listingChild `json:"children"`
	} `json:"data"`
}

type listingChild struct {
	Kind string   `json:"kind"`
	Data postJSON `json:"data"`
}

type postJSON struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Subreddit    string  `json:"subreddit"`
	Title        string  `json:"title"`
	SelfText     string  `json:"selftext"`
	SelfTextHTML string  `json:"selftext_html"`
	Author       string  `json:"author"`
	CreatedUTC   float64 `json:"created_utc"`
	URL          string  `json:"url"`
	Permalink    string  `json:"permalink"`
}

// parseListing converts a listing page into events, oldest first. Listing
// pages are newest first, so the order is reversed for emission.
func (c *Client) parseListing(body []byte) ([]Event, error) {
	var listing listingResponse
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("parse listing: %w", err)
	}

	events := make([]Event, 0, len(listing.Data.Children))
	for i := len(listing.Data.Children) - 1; i >= 0; i-- {
		child := listing.Data.Children[i]
		if child.Kind != kindPost {
			events = append(events, Event{Kind: child.Kind})
			continue
		}
		events = append(events, Event{Kind: child.Kind, Post: c.toPost(child.Data)})
	}
	return events, nil
}

// toPost builds a domain post from the wire format, sanitizing text fields
func (c *Client) toPost(p postJSON) *domain.Post {
	selfText := p.SelfText
	if selfText == "" && p.SelfTextHTML != "" {
		selfText = html.UnescapeString(p.SelfTextHTML)
	}

	url := p.URL
	if url == "" && p.Permalink != "" {
		url = c.baseURL + p.Permalink
	}

	return &domain.Post{
		ID:        p.ID,
		Fullname:  p.Name,
		Subreddit: p.Subreddit,
		Title:     c.sanitize(p.Title),
		SelfText:  c.sanitize(selfText),
		Author:    p.Author,
		URL:       url,
		CreatedAt: time.Unix(int64(p.CreatedUTC), 0).UTC(),
	}
}

// sanitize strips any markup from user-supplied text before it reaches the
// store or the evaluators
func (c *Client) sanitize(text string) string {
	return strings.TrimSpace(html.UnescapeString(c.sanitizer.Sanitize(text)))
}

// seenSet is a bounded set of fullnames used to suppress re-emission of
// posts that appear on consecutive listing pages
type seenSet struct {
	members map[string]struct{}
	order   []string
	limit   int
}

func newSeenSet(limit int) *seenSet {
	return &seenSet{members: make(map[string]struct{}, limit), limit: limit}
}

// add returns false if the fullname was already present, evicting the oldest
// entry when the window is full
func (s *seenSet) add(fullname string) bool {
	if _, ok := s.members[fullname]; ok {
		return false
	}
	s.members[fullname] = struct{}{}
	s.order = append(s.order, fullname)
	if len(s.order) > s.limit {
		delete(s.members, s.order[0])
		s.order = s.order[1:]
	}
	return true
}
