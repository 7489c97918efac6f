package github

import (
	"context"
	"time"
)

// Repo is the transient repository record fetched from the GitHub listing.
// It lives for a single aggregation request and is never persisted.
type Repo struct {
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Topics      []string  `json:"topics"`
	Language    *string   `json:"language"`
	Fork        bool      `json:"fork"`
	Stars       int       `json:"stargazers_count"`
	Homepage    *string   `json:"homepage"`
	HTMLURL     string    `json:"html_url"`
	PushedAt    time.Time `json:"pushed_at"`
}

// Fetcher lists the 100 most recently updated repositories for a user.
// A returned error means the upstream was unavailable; the caller decides
// how to degrade.
type Fetcher interface {
	ListByUser(ctx context.Context, username string) ([]Repo, error)
}
