package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/dinakaran-k/portfolio-api/internal/domain/profile"
	"github.com/dinakaran-k/portfolio-api/pkg/apperror"
	"github.com/dinakaran-k/portfolio-api/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

// Get reads the most recently updated row. The table is a singleton by
// convention only, so the newest row wins if several exist.
func (r *postgresProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	query := `
		SELECT id, name, headline, location, email, phone, linkedin, github_username,
		       summary, education, experiences, skills, open_to_work, created_at, updated_at
		FROM profiles
		ORDER BY updated_at DESC
		LIMIT 1
	`
	p := &profile.Profile{}
	var educationBytes, experiencesBytes, skillsBytes []byte

	err := r.db.QueryRow(ctx, query).Scan(
		&p.ID,
		&p.Name,
		&p.Headline,
		&p.Location,
		&p.Email,
		&p.Phone,
		&p.LinkedinURL,
		&p.GithubUsername,
		&p.Summary,
		&educationBytes,
		&experiencesBytes,
		&skillsBytes,
		&p.OpenToWork,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "singleton")
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}

	if err := json.Unmarshal(educationBytes, &p.Education); err != nil {
		r.logger.Warn("Failed to unmarshal education", zap.String("profile_id", p.ID.String()), zap.Error(err))
		p.Education = []profile.Education{}
	}
	if err := json.Unmarshal(experiencesBytes, &p.Experiences); err != nil {
		r.logger.Warn("Failed to unmarshal experiences", zap.String("profile_id", p.ID.String()), zap.Error(err))
		p.Experiences = []profile.Experience{}
	}
	if err := json.Unmarshal(skillsBytes, &p.Skills); err != nil {
		r.logger.Warn("Failed to unmarshal skills", zap.String("profile_id", p.ID.String()), zap.Error(err))
		p.Skills = map[string][]string{}
	}

	return p, nil
}

func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	educationBytes, err := json.Marshal(p.Education)
	if err != nil {
		return apperror.NewInternal("failed to marshal education", err)
	}
	experiencesBytes, err := json.Marshal(p.Experiences)
	if err != nil {
		return apperror.NewInternal("failed to marshal experiences", err)
	}
	skillsBytes, err := json.Marshal(p.Skills)
	if err != nil {
		return apperror.NewInternal("failed to marshal skills", err)
	}

	query := `
		INSERT INTO profiles (id, name, headline, location, email, phone, linkedin, github_username,
		                      summary, education, experiences, skills, open_to_work, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			headline = EXCLUDED.headline,
			location = EXCLUDED.location,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			linkedin = EXCLUDED.linkedin,
			github_username = EXCLUDED.github_username,
			summary = EXCLUDED.summary,
			education = EXCLUDED.education,
			experiences = EXCLUDED.experiences,
			skills = EXCLUDED.skills,
			open_to_work = EXCLUDED.open_to_work,
			updated_at = NOW()
	`
	_, err = r.db.Exec(ctx, query,
		p.ID,
		p.Name,
		p.Headline,
		p.Location,
		p.Email,
		p.Phone,
		p.LinkedinURL,
		p.GithubUsername,
		p.Summary,
		educationBytes,
		experiencesBytes,
		skillsBytes,
		p.OpenToWork,
	)
	if err != nil {
		return apperror.NewInternal("failed to upsert profile", err)
	}
	return nil
}
