package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dinakaran-k/portfolio-api/internal/domain/post"
	"github.com/dinakaran-k/portfolio-api/pkg/apperror"
	"github.com/dinakaran-k/portfolio-api/pkg/logger"
)

type postgresPostRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresPostRepo(db *pgxpool.Pool, logger logger.Logger) post.Repository {
	return &postgresPostRepo{db: db, logger: logger}
}

var psqlPost = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const postColumns = "id, title, slug, excerpt, content, published, tags, created_at, updated_at"

func scanPost(row pgx.Row) (*post.Post, error) {
	p := &post.Post{}
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Excerpt,
		&p.Content,
		&p.Published,
		&p.Tags,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p, nil
}

func (r *postgresPostRepo) ListPublished(ctx context.Context) ([]*post.Post, error) {
	builder := psqlPost.
		Select(postColumns).
		From("posts").
		Where(sq.Eq{"published": true}).
		OrderBy("created_at DESC", "id")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build published posts query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query published posts", err)
	}
	defer rows.Close()

	posts := make([]*post.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan post row", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating post rows", err)
	}

	return posts, nil
}

func (r *postgresPostRepo) FindPublishedBySlug(ctx context.Context, slug string) (*post.Post, error) {
	builder := psqlPost.
		Select(postColumns).
		From("posts").
		Where(sq.Eq{"slug": slug, "published": true})

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build post query", err)
	}

	p, err := scanPost(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("post", slug)
		}
		return nil, apperror.NewInternal("failed to query post by slug", err)
	}
	return p, nil
}

func (r *postgresPostRepo) Save(ctx context.Context, p *post.Post) error {
	if err := p.Validate(); err != nil {
		return apperror.NewInvalidInput("invalid post", err)
	}

	query := `
		INSERT INTO posts (id, title, slug, excerpt, content, published, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query,
		p.ID,
		p.Title,
		p.Slug,
		p.Excerpt,
		p.Content,
		p.Published,
		p.Tags,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewAppError(apperror.ErrInvalidInput, "Post conflict",
				"a post with this slug already exists", err)
		}
		return apperror.NewInternal("failed to insert post", err)
	}
	return nil
}
