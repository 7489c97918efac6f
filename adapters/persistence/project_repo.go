package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dinakaran-k/portfolio-api/internal/domain/project"
	"github.com/dinakaran-k/portfolio-api/pkg/apperror"
	"github.com/dinakaran-k/portfolio-api/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

var psqlProject = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ListCurated returns freelance projects featured-first, newest-first.
// The trailing created_at and id keys make the order stable for rows
// updated in the same instant.
func (r *postgresProjectRepo) ListCurated(ctx context.Context) ([]*project.Project, error) {
	builder := psqlProject.
		Select("id", "title", "source", "description", "technologies",
			"live_url", "repo_url", "play_store_url", "featured", "created_at", "updated_at").
		From("projects").
		Where(sq.Eq{"source": project.SourceFreelance}).
		OrderBy("featured DESC", "updated_at DESC", "created_at DESC", "id")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build curated projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query curated projects", err)
	}
	defer rows.Close()

	projects := make([]*project.Project, 0)
	for rows.Next() {
		p := &project.Project{}
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Source,
			&p.Description,
			&p.Technologies,
			&p.LiveURL,
			&p.RepoURL,
			&p.PlayStoreURL,
			&p.Featured,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, apperror.NewInternal("failed to scan project row", err)
		}
		if p.Technologies == nil {
			p.Technologies = []string{}
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}

	return projects, nil
}

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	if err := p.Validate(); err != nil {
		return apperror.NewInvalidInput("invalid project", err)
	}

	query := `
		INSERT INTO projects (id, title, source, description, technologies,
		                      live_url, repo_url, play_store_url, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query,
		p.ID,
		p.Title,
		p.Source,
		p.Description,
		p.Technologies,
		p.LiveURL,
		p.RepoURL,
		p.PlayStoreURL,
		p.Featured,
	)
	if err != nil {
		return apperror.NewInternal("failed to insert project", err)
	}
	return nil
}
