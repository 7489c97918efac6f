package post

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	ErrInvalidSlug = errors.New("slug only allows lowercase letters, numbers, and hyphens")
	slugRegex      = regexp.MustCompile(`^[a-z0-9-]+$`)
)

func (p *Post) Validate() error {
	if !slugRegex.MatchString(p.Slug) {
		return ErrInvalidSlug
	}
	return nil
}

type Repository interface {
	// ListPublished returns published posts only, newest first.
	ListPublished(ctx context.Context) ([]*Post, error)
	// FindPublishedBySlug returns apperror.ErrNotFound for missing slugs and
	// for posts that exist but are not published.
	FindPublishedBySlug(ctx context.Context, slug string) (*Post, error)
	Save(ctx context.Context, p *Post) error
}
