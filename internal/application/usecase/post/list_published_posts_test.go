package post

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinakaran-k/portfolio-api/internal/domain/post"
	"github.com/dinakaran-k/portfolio-api/pkg/apperror"
)

type fakePostRepo struct {
	published []*post.Post
}

func (f *fakePostRepo) ListPublished(ctx context.Context) ([]*post.Post, error) {
	return f.published, nil
}

func (f *fakePostRepo) FindPublishedBySlug(ctx context.Context, slug string) (*post.Post, error) {
	for _, p := range f.published {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("post", slug)
}

func (f *fakePostRepo) Save(ctx context.Context, p *post.Post) error {
	f.published = append(f.published, p)
	return nil
}

func TestListPublishedPosts_PassesThroughRepoOrder(t *testing.T) {
	now := time.Now()
	repo := &fakePostRepo{published: []*post.Post{
		{Slug: "newest", CreatedAt: now},
		{Slug: "older", CreatedAt: now.Add(-time.Hour)},
	}}
	uc := NewListPublishedPostsUseCase(repo)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Posts, 2)
	assert.Equal(t, "newest", out.Posts[0].Slug)
	assert.Equal(t, "older", out.Posts[1].Slug)
}

func TestGetPublishedPost_UnknownSlugIsNotFound(t *testing.T) {
	uc := NewGetPublishedPostUseCase(&fakePostRepo{})

	_, err := uc.Execute(context.Background(), GetPublishedPostInput{Slug: "missing"})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetPublishedPost_ReturnsMatch(t *testing.T) {
	repo := &fakePostRepo{published: []*post.Post{{Slug: "hello-world", Title: "Hello"}}}
	uc := NewGetPublishedPostUseCase(repo)

	out, err := uc.Execute(context.Background(), GetPublishedPostInput{Slug: "hello-world"})
	require.NoError(t, err)
	assert.Equal(t, "Hello", out.Post.Title)
}
