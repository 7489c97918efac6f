package post

import (
	"context"
	"fmt"

	"github.com/dinakaran-k/portfolio-api/internal/domain/post"
)

type ListPublishedPostsUseCase struct {
	postRepo post.Repository
}

func NewListPublishedPostsUseCase(repo post.Repository) *ListPublishedPostsUseCase {
	return &ListPublishedPostsUseCase{postRepo: repo}
}

type ListPublishedPostsOutput struct {
	Posts []*post.Post
}

func (uc *ListPublishedPostsUseCase) Execute(ctx context.Context) (*ListPublishedPostsOutput, error) {
	posts, err := uc.postRepo.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published posts failed: %w", err)
	}
	return &ListPublishedPostsOutput{Posts: posts}, nil
}
