package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Score       string `json:"score"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type Experience struct {
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Achievements []string `json:"achievements"`
}

// Profile is the single owner record. The store does not enforce
// singleton-ness; the repository always reads the most recent row and
// absence is a valid state.
type Profile struct {
	ID             uuid.UUID           `json:"id"`
	Name           string              `json:"name"`
	Headline       string              `json:"headline"`
	Location       string              `json:"location"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	LinkedinURL    string              `json:"linkedin"`
	GithubUsername string              `json:"github_username"`
	Summary        string              `json:"summary"`
	Education      []Education         `json:"education"`
	Experiences    []Experience        `json:"experiences"`
	Skills         map[string][]string `json:"skills"`
	OpenToWork     bool                `json:"open_to_work"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

type Repository interface {
	// Get returns the singleton profile, or apperror.ErrNotFound when no
	// profile has been configured yet.
	Get(ctx context.Context) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}
