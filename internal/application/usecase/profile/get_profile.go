package profile

import (
	"context"

	"github.com/dinakaran-k/portfolio-api/internal/domain/profile"
)

type GetProfileUseCase struct {
	profileRepo profile.Repository
}

func NewGetProfileUseCase(repo profile.Repository) *GetProfileUseCase {
	return &GetProfileUseCase{profileRepo: repo}
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

// Execute returns apperror.ErrNotFound when no profile exists. Absence
// is a defined state, not an internal failure; the handler maps it to 404.
func (uc *GetProfileUseCase) Execute(ctx context.Context) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Profile: p}, nil
}
