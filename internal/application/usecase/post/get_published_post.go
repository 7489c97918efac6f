package post

import (
	"context"

	"github.com/dinakaran-k/portfolio-api/internal/domain/post"
)

type GetPublishedPostUseCase struct {
	postRepo post.Repository
}

func NewGetPublishedPostUseCase(repo post.Repository) *GetPublishedPostUseCase {
	return &GetPublishedPostUseCase{postRepo: repo}
}

type GetPublishedPostInput struct {
	Slug string
}

type GetPublishedPostOutput struct {
	Post *post.Post
}

// Execute treats an unpublished post the same as a missing one: both
// surface as apperror.ErrNotFound.
func (uc *GetPublishedPostUseCase) Execute(ctx context.Context, input GetPublishedPostInput) (*GetPublishedPostOutput, error) {
	p, err := uc.postRepo.FindPublishedBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}
	return &GetPublishedPostOutput{Post: p}, nil
}
