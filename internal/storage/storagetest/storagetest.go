// Package storagetest opens real backends for repository tests. Each helper
// skips the test unless its environment variable is set.
package storagetest

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage/mongodb"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage/postgres"
)

const (
	EnvPostgres = "TEST_DATABASE_URL"
	EnvMongo    = "TEST_MONGODB_URI"
)

var tables = []string{"projects", "skills", "contact_messages", "users"}

// Postgres returns a pool on an empty schema. Tables are truncated again when
// the test ends.
func Postgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv(EnvPostgres)
	if dsn == "" {
		t.Skip(EnvPostgres + " not set, skipping PostgreSQL integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.Open(ctx, postgres.Options{DSN: dsn, MaxConns: 4, MinConns: 1})
	require.NoError(t, err)
	require.NoError(t, postgres.EnsureSchema(ctx, pool))

	truncate := func() {
		for _, tbl := range tables {
			_, err := pool.Exec(context.Background(), fmt.Sprintf("TRUNCATE %s", tbl))
			require.NoError(t, err)
		}
	}
	truncate()
	t.Cleanup(func() {
		truncate()
		pool.Close()
	})
	return pool
}

// Mongo returns a throwaway database that is dropped when the test ends.
func Mongo(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv(EnvMongo)
	if uri == "" {
		t.Skip(EnvMongo + " not set, skipping MongoDB integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	name := "portfolio_test_" + uuid.NewString()[:8]
	client, db, err := mongodb.Open(ctx, mongodb.Options{URI: uri, Database: name})
	require.NoError(t, err)
	require.NoError(t, mongodb.EnsureIndexes(ctx, db))

	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return db
}
