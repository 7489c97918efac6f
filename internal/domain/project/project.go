package project

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

type Source string

const (
	// SourceFreelance marks curated records entered directly into the store.
	SourceFreelance Source = "freelance"
	// SourceGithub marks ephemeral views computed from the GitHub listing.
	// They are never persisted.
	SourceGithub Source = "github"
)

type Project struct {
	ID           uuid.UUID `json:"id,omitempty"`
	Title        string    `json:"title"`
	Source       Source    `json:"source"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	LiveURL      string    `json:"live_url,omitempty"`
	RepoURL      string    `json:"repo_url,omitempty"`
	PlayStoreURL string    `json:"play_store_url,omitempty"`
	Featured     bool      `json:"featured"`

	// Github-sourced views only.
	Stars    int       `json:"stars,omitempty"`
	Relevant bool      `json:"relevant,omitempty"`
	PushedAt time.Time `json:"pushed_at,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

var ErrInvalidSource = errors.New("source must be freelance or github")

func (p *Project) Validate() error {
	switch p.Source {
	case SourceFreelance, SourceGithub:
		return nil
	default:
		return ErrInvalidSource
	}
}

// SortGithubView orders github-sourced views for presentation: relevant
// repositories first, then most recently pushed. The sort is stable so
// exact ties keep the upstream listing order.
func SortGithubView(projects []*Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		if projects[i].Relevant != projects[j].Relevant {
			return projects[i].Relevant
		}
		return projects[i].PushedAt.After(projects[j].PushedAt)
	})
}

type Repository interface {
	// ListCurated returns every freelance project, featured first, then most
	// recently updated. The ordering is part of the API contract.
	ListCurated(ctx context.Context) ([]*Project, error)
	Save(ctx context.Context, p *Project) error
}
