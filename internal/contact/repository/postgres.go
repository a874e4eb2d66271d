package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/contact/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/pagination"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage/postgres"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const messageColumns = `id, name, email, subject, message, status, ip_address, user_agent, created_at, updated_at`

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var (
		m  domain.Message
		id string
	)
	err := row.Scan(&id, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Status,
		&m.IPAddress, &m.UserAgent, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if m.ID, err = postgres.ParseID(id); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, m *domain.Message) error {
	const q = `
INSERT INTO contact_messages (` + messageColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`
	_, err := r.pool.Exec(ctx, q, m.ID.Hex(), m.Name, m.Email, m.Subject, m.Message, m.Status,
		m.IPAddress, m.UserAgent, m.CreatedAt, m.UpdatedAt)
	return postgres.Translate(err)
}

func (r *PostgresRepository) List(ctx context.Context, f domain.ListFilter, p pagination.Params) ([]domain.Message, int64, error) {
	where := ""
	var args []any
	if f.Status != "" {
		args = append(args, f.Status)
		where = " WHERE status = $1"
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM contact_messages"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count messages: %w", err)
	}

	q := "SELECT " + messageColumns + " FROM contact_messages" + where + " ORDER BY created_at DESC, id DESC"
	if p.Limit > 0 {
		q += fmt.Sprintf(" LIMIT %d", p.Limit)
	}
	if skip := p.Skip(); skip > 0 {
		q += fmt.Sprintf(" OFFSET %d", skip)
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Message, 0, 16)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string, at time.Time) (*domain.Message, error) {
	q := `UPDATE contact_messages SET status = $2, updated_at = $3 WHERE id = $1 RETURNING ` + messageColumns
	m, err := scanMessage(r.pool.QueryRow(ctx, q, id.Hex(), status, at))
	if err != nil {
		return nil, postgres.Translate(err)
	}
	return m, nil
}
