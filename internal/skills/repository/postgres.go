package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/skills/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage/postgres"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const skillColumns = `id, name, category, level, proficiency, icon, color, description,
years_of_experience, is_visible, sort_order, created_at, updated_at`

// sortColumns maps JSON sort fields onto columns.
var sortColumns = map[string]string{
	"name":              "name",
	"category":          "category",
	"level":             "level",
	"proficiency":       "proficiency",
	"yearsOfExperience": "years_of_experience",
	"createdAt":         "created_at",
}

func scanSkill(row pgx.Row) (*domain.Skill, error) {
	var (
		s  domain.Skill
		id string
	)
	err := row.Scan(&id, &s.Name, &s.Category, &s.Level, &s.Proficiency, &s.Icon, &s.Color,
		&s.Description, &s.YearsOfExperience, &s.IsVisible, &s.Order, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if s.ID, err = postgres.ParseID(id); err != nil {
		return nil, err
	}
	s.NameKey, s.CategoryKey = domain.Key(s.Name, s.Category)
	return &s, nil
}

func (r *PostgresRepository) List(ctx context.Context, f domain.ListFilter, s domain.Sort) ([]domain.Skill, error) {
	col, ok := sortColumns[s.Field]
	if !ok {
		col = "name"
	}
	dir := "ASC"
	if s.Desc {
		dir = "DESC"
	}

	q := "SELECT " + skillColumns + " FROM skills WHERE TRUE"
	var args []any
	if f.VisibleOnly {
		q += " AND is_visible"
	}
	if f.Category != "" {
		args = append(args, f.Category)
		q += fmt.Sprintf(" AND lower(category) = lower($%d)", len(args))
	}
	q += fmt.Sprintf(" ORDER BY sort_order ASC, %s %s", col, dir)

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Skill, 0, 32)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT category FROM skills ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id primitive.ObjectID, visibleOnly bool) (*domain.Skill, error) {
	q := "SELECT " + skillColumns + " FROM skills WHERE id = $1"
	if visibleOnly {
		q += " AND is_visible"
	}
	s, err := scanSkill(r.pool.QueryRow(ctx, q, id.Hex()))
	if err != nil {
		return nil, postgres.Translate(err)
	}
	return s, nil
}

func (r *PostgresRepository) ExistsPair(ctx context.Context, name, category string, exclude *primitive.ObjectID) (bool, error) {
	excluded := ""
	if exclude != nil {
		excluded = exclude.Hex()
	}
	const q = `
SELECT EXISTS (
	SELECT 1 FROM skills
	WHERE lower(name) = lower($1) AND lower(category) = lower($2) AND id <> $3
);
`
	var exists bool
	if err := r.pool.QueryRow(ctx, q, name, category, excluded).Scan(&exists); err != nil {
		return false, fmt.Errorf("check skill pair: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, s *domain.Skill) error {
	const q = `
INSERT INTO skills (` + skillColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`
	_, err := r.pool.Exec(ctx, q, s.ID.Hex(), s.Name, s.Category, s.Level, s.Proficiency, s.Icon,
		s.Color, s.Description, s.YearsOfExperience, s.IsVisible, s.Order, s.CreatedAt, s.UpdatedAt)
	return postgres.Translate(err)
}

// InsertMany inserts row by row so one conflict does not roll back the rest.
func (r *PostgresRepository) InsertMany(ctx context.Context, skills []*domain.Skill) (map[int]error, error) {
	failed := make(map[int]error)
	for i, s := range skills {
		if err := r.Insert(ctx, s); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			failed[i] = err
		}
	}
	return failed, nil
}

func (r *PostgresRepository) Replace(ctx context.Context, s *domain.Skill) error {
	const q = `
UPDATE skills
SET name = $2, category = $3, level = $4, proficiency = $5, icon = $6, color = $7,
    description = $8, years_of_experience = $9, is_visible = $10, sort_order = $11, updated_at = $12
WHERE id = $1;
`
	tag, err := r.pool.Exec(ctx, q, s.ID.Hex(), s.Name, s.Category, s.Level, s.Proficiency, s.Icon,
		s.Color, s.Description, s.YearsOfExperience, s.IsVisible, s.Order, s.UpdatedAt)
	if err != nil {
		return postgres.Translate(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id.Hex())
	if err != nil {
		return false, fmt.Errorf("delete skill: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
