package project

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dinakaran-k/portfolio-api/internal/domain/github"
	"github.com/dinakaran-k/portfolio-api/internal/domain/profile"
	"github.com/dinakaran-k/portfolio-api/internal/domain/project"
	"github.com/dinakaran-k/portfolio-api/pkg/apperror"
	"github.com/dinakaran-k/portfolio-api/pkg/logger"
)

// noDescription is the placeholder for repositories without one.
const noDescription = "No description provided."

// ListProjectsUseCase builds the unified projects view: curated records
// from the store plus an ephemeral list derived from the owner's GitHub
// repositories. The two lists are returned separately, not interleaved.
type ListProjectsUseCase struct {
	projectRepo project.Repository
	profileRepo profile.Repository
	fetcher     github.Fetcher
	classifier  *github.Classifier
	logger      logger.Logger
}

func NewListProjectsUseCase(
	pRepo project.Repository,
	profRepo profile.Repository,
	fetcher github.Fetcher,
	classifier *github.Classifier,
	log logger.Logger,
) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: pRepo,
		profileRepo: profRepo,
		fetcher:     fetcher,
		classifier:  classifier,
		logger:      log,
	}
}

type ListProjectsInput struct {
	IncludeGithub bool
}

type ListProjectsOutput struct {
	FreelanceProjects []*project.Project
	GithubProjects    []*project.Project
}

// Execute never fails because of GitHub. An unreachable upstream, a bad
// status or a malformed payload all degrade to an empty github list with
// the curated list intact; the failure is logged, not propagated. The
// fetch happens once per request, with no retry.
func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	username := ""
	prof, err := uc.profileRepo.Get(ctx)
	switch {
	case err == nil:
		username = prof.GithubUsername
	case errors.Is(err, apperror.ErrNotFound):
		// No profile configured yet, so no external handle either.
	default:
		return nil, fmt.Errorf("read profile for projects view failed: %w", err)
	}

	curated, err := uc.projectRepo.ListCurated(ctx)
	if err != nil {
		return nil, fmt.Errorf("list curated projects failed: %w", err)
	}

	out := &ListProjectsOutput{
		FreelanceProjects: curated,
		GithubProjects:    []*project.Project{},
	}

	if !input.IncludeGithub || username == "" {
		return out, nil
	}

	repos, err := uc.fetcher.ListByUser(ctx, username)
	if err != nil {
		uc.logger.Warn("failed to fetch GitHub projects, serving curated only",
			zap.String("username", username), zap.Error(err))
		return out, nil
	}

	out.GithubProjects = uc.toProjectViews(repos)
	return out, nil
}

// toProjectViews drops forks, maps the rest to project views and orders
// them relevant-first, then most recently pushed.
func (uc *ListProjectsUseCase) toProjectViews(repos []github.Repo) []*project.Project {
	views := make([]*project.Project, 0, len(repos))
	for _, repo := range repos {
		if repo.Fork {
			continue
		}

		description := noDescription
		if repo.Description != nil && *repo.Description != "" {
			description = *repo.Description
		}
		liveURL := ""
		if repo.Homepage != nil {
			liveURL = *repo.Homepage
		}
		technologies := repo.Topics
		if technologies == nil {
			technologies = []string{}
		}

		views = append(views, &project.Project{
			Title:        repo.Name,
			Source:       project.SourceGithub,
			Description:  description,
			Technologies: technologies,
			LiveURL:      liveURL,
			RepoURL:      repo.HTMLURL,
			Featured:     false,
			Stars:        repo.Stars,
			Relevant:     uc.classifier.Relevant(repo),
			PushedAt:     repo.PushedAt,
		})
	}

	project.SortGithubView(views)
	return views
}
