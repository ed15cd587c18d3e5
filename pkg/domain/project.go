package domain

// Project holds the configuration a stream worker runs with
type Project struct {
	ID         string
	ProfileID  string // owning account
	Title      string
	Prompt     string // full project context used by the evaluators
	Subreddits []string
	Running    bool
}
