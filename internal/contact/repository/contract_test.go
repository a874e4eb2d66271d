package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/contact/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/pagination"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage/storagetest"
)

func TestMemoryRepositoryContract(t *testing.T) {
	testRepository(t, NewMemory())
}

func TestPostgresRepositoryContract(t *testing.T) {
	testRepository(t, NewPostgres(storagetest.Postgres(t)))
}

func TestMongoRepositoryContract(t *testing.T) {
	testRepository(t, NewMongo(storagetest.Mongo(t)))
}

func testRepository(t *testing.T, repo MessageRepository) {
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	var ids []primitive.ObjectID
	for i, name := range []string{"first", "second", "third"} {
		m := domain.New(domain.Submission{
			Name: name, Email: name + "@example.com", Subject: "s", Message: "m",
		}, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Insert(ctx, m))
		ids = append(ids, m.ID)
	}

	items, total, err := repo.List(ctx, domain.ListFilter{}, pagination.Params{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, items, 2)
	assert.Equal(t, "third", items[0].Name, "newest first")
	assert.Equal(t, "second", items[1].Name)

	items, _, err = repo.List(ctx, domain.ListFilter{}, pagination.Params{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "first", items[0].Name)

	at := base.Add(time.Hour)
	m, err := repo.SetStatus(ctx, ids[0], domain.StatusReplied, at)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReplied, m.Status)
	assert.True(t, m.IsRead())
	assert.True(t, m.UpdatedAt.Equal(at))

	items, total, err = repo.List(ctx, domain.ListFilter{Status: domain.StatusReplied}, pagination.All())
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, ids[0], items[0].ID)

	_, err = repo.SetStatus(ctx, primitive.NewObjectID(), domain.StatusRead, at)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
