package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/auth/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage/postgres"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const userColumns = `id, email, password_hash, name, role, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u  domain.User
		id string
	)
	if err := row.Scan(&id, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, postgres.Translate(err)
	}
	var err error
	if u.ID, err = postgres.ParseID(id); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id.Hex()))
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`,
		strings.ToLower(strings.TrimSpace(email))))
}

func (r *PostgresRepository) Insert(ctx context.Context, u *domain.User) error {
	const q = `
INSERT INTO users (` + userColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7);
`
	_, err := r.pool.Exec(ctx, q, u.ID.Hex(), u.Email, u.PasswordHash, u.Name, u.Role, u.CreatedAt, u.UpdatedAt)
	return postgres.Translate(err)
}
