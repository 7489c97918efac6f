package project

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinakaran-k/portfolio-api/internal/domain/github"
	"github.com/dinakaran-k/portfolio-api/internal/domain/profile"
	"github.com/dinakaran-k/portfolio-api/internal/domain/project"
	"github.com/dinakaran-k/portfolio-api/pkg/apperror"
	"github.com/dinakaran-k/portfolio-api/pkg/logger"
)

type fakeProfileRepo struct {
	profile *profile.Profile
}

func (f *fakeProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	if f.profile == nil {
		return nil, apperror.NewNotFound("profile", "singleton")
	}
	return f.profile, nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	f.profile = p
	return nil
}

type fakeProjectRepo struct {
	curated []*project.Project
	err     error
}

func (f *fakeProjectRepo) ListCurated(ctx context.Context) ([]*project.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.curated, nil
}

func (f *fakeProjectRepo) Save(ctx context.Context, p *project.Project) error {
	f.curated = append(f.curated, p)
	return nil
}

type fakeFetcher struct {
	repos []github.Repo
	err   error
	calls int
}

func (f *fakeFetcher) ListByUser(ctx context.Context, username string) ([]github.Repo, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.repos, nil
}

func strPtr(s string) *string { return &s }

func newUseCase(profRepo *fakeProfileRepo, projRepo *fakeProjectRepo, fetcher *fakeFetcher) *ListProjectsUseCase {
	return NewListProjectsUseCase(projRepo, profRepo, fetcher, github.NewMobileClassifier(), logger.NewNopLogger())
}

func ownerProfile() *profile.Profile {
	return &profile.Profile{Name: "Owner", GithubUsername: "owner-handle"}
}

func TestListProjects_ForksAreExcluded(t *testing.T) {
	fetcher := &fakeFetcher{repos: []github.Repo{
		{Name: "kept", Fork: false, PushedAt: time.Now()},
		{Name: "forked", Fork: true, PushedAt: time.Now()},
		{Name: "also-kept", Fork: false, PushedAt: time.Now()},
	}}
	uc := newUseCase(&fakeProfileRepo{profile: ownerProfile()}, &fakeProjectRepo{}, fetcher)

	out, err := uc.Execute(context.Background(), ListProjectsInput{IncludeGithub: true})
	require.NoError(t, err)

	require.Len(t, out.GithubProjects, 2)
	for _, p := range out.GithubProjects {
		assert.NotEqual(t, "forked", p.Title)
	}
}

func TestListProjects_FetchFailureDegrades(t *testing.T) {
	curated := []*project.Project{
		{Title: "Client App", Source: project.SourceFreelance, Featured: true},
	}
	fetcher := &fakeFetcher{err: errors.New("GitHub API error: 503")}
	uc := newUseCase(&fakeProfileRepo{profile: ownerProfile()}, &fakeProjectRepo{curated: curated}, fetcher)

	out, err := uc.Execute(context.Background(), ListProjectsInput{IncludeGithub: true})
	require.NoError(t, err)

	assert.Equal(t, curated, out.FreelanceProjects)
	assert.Empty(t, out.GithubProjects)
	assert.NotNil(t, out.GithubProjects)
	assert.Equal(t, 1, fetcher.calls)
}

func TestListProjects_IncludeGithubFalseSkipsFetch(t *testing.T) {
	fetcher := &fakeFetcher{repos: []github.Repo{{Name: "ignored"}}}
	uc := newUseCase(&fakeProfileRepo{profile: ownerProfile()}, &fakeProjectRepo{}, fetcher)

	out, err := uc.Execute(context.Background(), ListProjectsInput{IncludeGithub: false})
	require.NoError(t, err)

	assert.Empty(t, out.GithubProjects)
	assert.Zero(t, fetcher.calls)
}

func TestListProjects_NoProfileSkipsFetch(t *testing.T) {
	fetcher := &fakeFetcher{}
	uc := newUseCase(&fakeProfileRepo{}, &fakeProjectRepo{}, fetcher)

	out, err := uc.Execute(context.Background(), ListProjectsInput{IncludeGithub: true})
	require.NoError(t, err)

	assert.Empty(t, out.GithubProjects)
	assert.Zero(t, fetcher.calls)
}

func TestListProjects_NoGithubUsernameSkipsFetch(t *testing.T) {
	fetcher := &fakeFetcher{}
	prof := ownerProfile()
	prof.GithubUsername = ""
	uc := newUseCase(&fakeProfileRepo{profile: prof}, &fakeProjectRepo{}, fetcher)

	out, err := uc.Execute(context.Background(), ListProjectsInput{IncludeGithub: true})
	require.NoError(t, err)

	assert.Empty(t, out.GithubProjects)
	assert.Zero(t, fetcher.calls)
}

func TestListProjects_TransformDefaults(t *testing.T) {
	pushed := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{repos: []github.Repo{
		{
			Name:     "bare-repo",
			HTMLURL:  "https://github.com/owner-handle/bare-repo",
			Stars:    7,
			PushedAt: pushed,
		},
	}}
	uc := newUseCase(&fakeProfileRepo{profile: ownerProfile()}, &fakeProjectRepo{}, fetcher)

	out, err := uc.Execute(context.Background(), ListProjectsInput{IncludeGithub: true})
	require.NoError(t, err)
	require.Len(t, out.GithubProjects, 1)

	view := out.GithubProjects[0]
	assert.Equal(t, project.SourceGithub, view.Source)
	assert.Equal(t, "No description provided.", view.Description)
	assert.Equal(t, []string{}, view.Technologies)
	assert.False(t, view.Featured)
	assert.Equal(t, 7, view.Stars)
	assert.Equal(t, pushed, view.PushedAt)
	assert.Equal(t, "https://github.com/owner-handle/bare-repo", view.RepoURL)
}

func TestListProjects_GithubListOrdering(t *testing.T) {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{repos: []github.Repo{
		{Name: "notes-cli", Language: strPtr("Go"), PushedAt: base.Add(72 * time.Hour)},
		{Name: "weather-kt", Language: strPtr("Kotlin"), PushedAt: base},
		{Name: "compose-samples", Description: strPtr("Jetpack Compose demos"), PushedAt: base.Add(24 * time.Hour)},
	}}
	uc := newUseCase(&fakeProfileRepo{profile: ownerProfile()}, &fakeProjectRepo{}, fetcher)

	out, err := uc.Execute(context.Background(), ListProjectsInput{IncludeGithub: true})
	require.NoError(t, err)
	require.Len(t, out.GithubProjects, 3)

	assert.Equal(t, "compose-samples", out.GithubProjects[0].Title)
	assert.Equal(t, "weather-kt", out.GithubProjects[1].Title)
	assert.Equal(t, "notes-cli", out.GithubProjects[2].Title)
}

func TestListProjects_CuratedOrderPreserved(t *testing.T) {
	curated := []*project.Project{
		{Title: "featured-new", Source: project.SourceFreelance, Featured: true},
		{Title: "featured-old", Source: project.SourceFreelance, Featured: true},
		{Title: "plain-new", Source: project.SourceFreelance},
	}
	uc := newUseCase(&fakeProfileRepo{}, &fakeProjectRepo{curated: curated}, &fakeFetcher{})

	out, err := uc.Execute(context.Background(), ListProjectsInput{IncludeGithub: true})
	require.NoError(t, err)

	// The repository owns the ordering contract; the aggregator must not
	// reorder what it was given.
	assert.Equal(t, curated, out.FreelanceProjects)
}
