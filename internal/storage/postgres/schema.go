package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Ids are 24-character hex strings so every backend exposes the same
// identifier shape.
const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id                CHAR(24) PRIMARY KEY,
	title             TEXT NOT NULL UNIQUE,
	slug              TEXT NOT NULL UNIQUE,
	short_description TEXT NOT NULL,
	description       TEXT NOT NULL,
	technologies      TEXT[] NOT NULL DEFAULT '{}',
	live_url          TEXT NOT NULL DEFAULT '',
	github_url        TEXT NOT NULL DEFAULT '',
	images            TEXT[] NOT NULL DEFAULT '{}',
	featured          BOOLEAN NOT NULL DEFAULT FALSE,
	is_published      BOOLEAN NOT NULL DEFAULT TRUE,
	category          TEXT NOT NULL,
	status            TEXT NOT NULL,
	priority          INTEGER NOT NULL DEFAULT 0,
	start_date        TIMESTAMPTZ,
	end_date          TIMESTAMPTZ,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS projects_public_idx ON projects (is_published, priority DESC, created_at DESC);

CREATE TABLE IF NOT EXISTS skills (
	id                  CHAR(24) PRIMARY KEY,
	name                TEXT NOT NULL,
	category            TEXT NOT NULL,
	level               TEXT NOT NULL,
	proficiency         INTEGER NOT NULL,
	icon                TEXT NOT NULL DEFAULT '',
	color               TEXT NOT NULL DEFAULT '',
	description         TEXT NOT NULL DEFAULT '',
	years_of_experience INTEGER NOT NULL DEFAULT 0,
	is_visible          BOOLEAN NOT NULL DEFAULT TRUE,
	sort_order          INTEGER NOT NULL DEFAULT 0,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS skills_name_category_key ON skills (lower(name), lower(category));

CREATE TABLE IF NOT EXISTS contact_messages (
	id         CHAR(24) PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	subject    TEXT NOT NULL,
	message    TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'new',
	ip_address TEXT NOT NULL DEFAULT '',
	user_agent TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS contact_messages_status_idx ON contact_messages (status, created_at DESC);

CREATE TABLE IF NOT EXISTS users (
	id            CHAR(24) PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name          TEXT NOT NULL DEFAULT '',
	role          TEXT NOT NULL DEFAULT 'user',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema creates tables and indexes if they are missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
