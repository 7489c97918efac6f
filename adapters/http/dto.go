package http

import (
	"time"

	"github.com/dinakaran-k/portfolio-api/internal/domain/post"
	"github.com/dinakaran-k/portfolio-api/internal/domain/profile"
	"github.com/dinakaran-k/portfolio-api/internal/domain/project"
)

// Profile DTOs

type EducationDTO struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Score       string `json:"score"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type ExperienceDTO struct {
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Achievements []string `json:"achievements"`
}

type ProfileDTO struct {
	Name           string              `json:"name"`
	Headline       string              `json:"headline"`
	Location       string              `json:"location"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	Linkedin       string              `json:"linkedin"`
	GithubUsername string              `json:"githubUsername"`
	Summary        string              `json:"summary"`
	Education      []EducationDTO      `json:"education"`
	Experiences    []ExperienceDTO     `json:"experiences"`
	Skills         map[string][]string `json:"skills"`
	OpenToWork     bool                `json:"openToWork"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	dto := ProfileDTO{
		Name:           p.Name,
		Headline:       p.Headline,
		Location:       p.Location,
		Email:          p.Email,
		Phone:          p.Phone,
		Linkedin:       p.LinkedinURL,
		GithubUsername: p.GithubUsername,
		Summary:        p.Summary,
		Skills:         p.Skills,
		OpenToWork:     p.OpenToWork,
		UpdatedAt:      p.UpdatedAt,
	}
	dto.Education = make([]EducationDTO, len(p.Education))
	for i, e := range p.Education {
		dto.Education[i] = EducationDTO{
			Institution: e.Institution,
			Degree:      e.Degree,
			Score:       e.Score,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
		}
	}
	dto.Experiences = make([]ExperienceDTO, len(p.Experiences))
	for i, e := range p.Experiences {
		dto.Experiences[i] = ExperienceDTO{
			Role:         e.Role,
			Company:      e.Company,
			StartDate:    e.StartDate,
			EndDate:      e.EndDate,
			Achievements: e.Achievements,
		}
	}
	if dto.Skills == nil {
		dto.Skills = map[string][]string{}
	}
	return dto
}

// Project DTOs

type ProjectDTO struct {
	Title        string     `json:"title"`
	Source       string     `json:"source"`
	Description  string     `json:"description"`
	Technologies []string   `json:"technologies"`
	LiveURL      string     `json:"liveUrl,omitempty"`
	RepoURL      string     `json:"repoUrl,omitempty"`
	PlayStoreURL string     `json:"playStoreUrl,omitempty"`
	Featured     bool       `json:"featured"`
	Stars        int        `json:"stars,omitempty"`
	Relevant     bool       `json:"relevant,omitempty"`
	PushedAt     *time.Time `json:"pushedAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

type ProjectsResponse struct {
	FreelanceProjects []ProjectDTO `json:"freelanceProjects"`
	GithubProjects    []ProjectDTO `json:"githubProjects"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	dto := ProjectDTO{
		Title:        p.Title,
		Source:       string(p.Source),
		Description:  p.Description,
		Technologies: p.Technologies,
		LiveURL:      p.LiveURL,
		RepoURL:      p.RepoURL,
		PlayStoreURL: p.PlayStoreURL,
		Featured:     p.Featured,
	}
	if dto.Technologies == nil {
		dto.Technologies = []string{}
	}
	switch p.Source {
	case project.SourceGithub:
		dto.Stars = p.Stars
		dto.Relevant = p.Relevant
		pushedAt := p.PushedAt
		dto.PushedAt = &pushedAt
	default:
		updatedAt := p.UpdatedAt
		dto.UpdatedAt = &updatedAt
	}
	return dto
}

func ToProjectDTOs(projects []*project.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ToProjectDTO(p)
	}
	return dtos
}

// Post DTOs

type PostDTO struct {
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToPostDTO(p *post.Post, includeContent bool) PostDTO {
	dto := PostDTO{
		Title:     p.Title,
		Slug:      p.Slug,
		Excerpt:   p.Excerpt,
		Tags:      p.Tags,
		CreatedAt: p.CreatedAt,
	}
	if includeContent {
		dto.Content = p.Content
	}
	if dto.Tags == nil {
		dto.Tags = []string{}
	}
	return dto
}

// Contact DTOs

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Preference / analytics DTOs

type ThemeResponse struct {
	Theme string `json:"theme"`
}

type SetThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

type SiteConfigResponse struct {
	AnalyticsID  string `json:"analyticsId,omitempty"`
	DefaultTheme string `json:"defaultTheme"`
}

type ViewEventRequest struct {
	Type string `json:"type" binding:"required"`
	Path string `json:"path"`
}
