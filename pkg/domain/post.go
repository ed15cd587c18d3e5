package domain

import "time"

// Post represents a single submission pulled from the live stream.
// Posts are read-only to the rest of the system; the stream client
// builds them once and nothing mutates them afterwards.
type Post struct {
	ID        string // site-local id, e.g. "1abcd2"
	Fullname  string // kind-prefixed id, e.g. "t3_1abcd2"
	Subreddit string
	Title     string
	SelfText  string
	Author    string
	URL       string
	CreatedAt time.Time
}
