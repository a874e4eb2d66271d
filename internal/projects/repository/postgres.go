package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/pagination"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/projects/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage/postgres"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const projectColumns = `id, title, slug, short_description, description, technologies, live_url, github_url,
images, featured, is_published, category, status, priority, start_date, end_date, created_at, updated_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var (
		p  domain.Project
		id string
	)
	err := row.Scan(&id, &p.Title, &p.Slug, &p.ShortDescription, &p.Description, &p.Technologies,
		&p.LiveURL, &p.SourceURL, &p.Images, &p.Featured, &p.IsPublished, &p.Category, &p.Status,
		&p.Priority, &p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if p.ID, err = postgres.ParseID(id); err != nil {
		return nil, err
	}
	return &p, nil
}

func postgresWhere(f domain.ListFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.PublishedOnly {
		conds = append(conds, "is_published")
	}
	if f.Category != "" {
		add("category = $%d", f.Category)
	}
	if f.FeaturedOnly {
		conds = append(conds, "featured")
	}
	if f.Search != "" {
		add(`(title ILIKE $%[1]d OR short_description ILIKE $%[1]d OR description ILIKE $%[1]d
			OR array_to_string(technologies, ' ') ILIKE $%[1]d)`, postgres.LikePattern(f.Search))
	}
	if f.Exclude != nil {
		add("id <> $%d", f.Exclude.Hex())
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *PostgresRepository) List(ctx context.Context, f domain.ListFilter, p pagination.Params) ([]domain.Project, int64, error) {
	where, args := postgresWhere(f)

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM projects"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}

	q := "SELECT " + projectColumns + " FROM projects" + where + " ORDER BY priority DESC, created_at DESC"
	if p.Limit > 0 {
		q += fmt.Sprintf(" LIMIT %d", p.Limit)
	}
	if skip := p.Skip(); skip > 0 {
		q += fmt.Sprintf(" OFFSET %d", skip)
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresRepository) findOne(ctx context.Context, cond string, arg any, publishedOnly bool) (*domain.Project, error) {
	q := "SELECT " + projectColumns + " FROM projects WHERE " + cond
	if publishedOnly {
		q += " AND is_published"
	}
	p, err := scanProject(r.pool.QueryRow(ctx, q, arg))
	if err != nil {
		return nil, postgres.Translate(err)
	}
	return p, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id primitive.ObjectID, publishedOnly bool) (*domain.Project, error) {
	return r.findOne(ctx, "id = $1", id.Hex(), publishedOnly)
}

func (r *PostgresRepository) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.Project, error) {
	return r.findOne(ctx, "slug = $1", slug, publishedOnly)
}

func (r *PostgresRepository) Insert(ctx context.Context, p *domain.Project) error {
	const q = `
INSERT INTO projects (` + projectColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
`
	_, err := r.pool.Exec(ctx, q, p.ID.Hex(), p.Title, p.Slug, p.ShortDescription, p.Description,
		p.Technologies, p.LiveURL, p.SourceURL, p.Images, p.Featured, p.IsPublished, p.Category,
		p.Status, p.Priority, p.StartDate, p.EndDate, p.CreatedAt, p.UpdatedAt)
	return postgres.Translate(err)
}

func (r *PostgresRepository) Replace(ctx context.Context, p *domain.Project) error {
	const q = `
UPDATE projects
SET title = $2, slug = $3, short_description = $4, description = $5, technologies = $6,
    live_url = $7, github_url = $8, images = $9, featured = $10, is_published = $11,
    category = $12, status = $13, priority = $14, start_date = $15, end_date = $16, updated_at = $17
WHERE id = $1;
`
	tag, err := r.pool.Exec(ctx, q, p.ID.Hex(), p.Title, p.Slug, p.ShortDescription, p.Description,
		p.Technologies, p.LiveURL, p.SourceURL, p.Images, p.Featured, p.IsPublished, p.Category,
		p.Status, p.Priority, p.StartDate, p.EndDate, p.UpdatedAt)
	if err != nil {
		return postgres.Translate(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id.Hex())
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
