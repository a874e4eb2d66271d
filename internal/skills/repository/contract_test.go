package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/skills/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage/storagetest"
)

var created = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func skill(name, category string, visible bool) *domain.Skill {
	return domain.New(domain.Input{Name: &name, Category: &category, IsVisible: &visible}, created)
}

func TestMemoryRepositoryContract(t *testing.T) {
	testRepository(t, NewMemory())
}

func TestPostgresRepositoryContract(t *testing.T) {
	testRepository(t, NewPostgres(storagetest.Postgres(t)))
}

func TestMongoRepositoryContract(t *testing.T) {
	testRepository(t, NewMongo(storagetest.Mongo(t)))
}

func testRepository(t *testing.T, repo SkillRepository) {
	ctx := context.Background()

	goSkill := skill("Go", "Backend", true)
	require.NoError(t, repo.Insert(ctx, goSkill))

	err := repo.Insert(ctx, skill("go", "BACKEND", true))
	assert.ErrorIs(t, err, storage.ErrDuplicateKey, "pair is unique ignoring case")

	exists, err := repo.ExistsPair(ctx, "GO", "backend", nil)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.ExistsPair(ctx, "GO", "backend", &goSkill.ID)
	require.NoError(t, err)
	assert.False(t, exists, "own pair is excluded")

	failed, err := repo.InsertMany(ctx, []*domain.Skill{
		skill("React", "Frontend", true),
		skill("GO", "backend", true),
		skill("Vue", "Frontend", false),
	})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.ErrorIs(t, failed[1], storage.ErrDuplicateKey)

	visible, err := repo.List(ctx, domain.ListFilter{VisibleOnly: true}, domain.DefaultSort)
	require.NoError(t, err)
	names := make([]string, 0, len(visible))
	for _, s := range visible {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Go", "React"}, names)

	all, err := repo.List(ctx, domain.ListFilter{Category: "Frontend"}, domain.Sort{Field: "name", Desc: true})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Vue", all[0].Name)

	cats, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Backend", "Frontend"}, cats)

	hidden := all[0]
	_, err = repo.FindByID(ctx, hidden.ID, true)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	got, err := repo.FindByID(ctx, hidden.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "Vue", got.Name)

	level := domain.LevelExpert
	domain.Input{Level: &level}.ApplyTo(got)
	require.NoError(t, repo.Replace(ctx, got))
	got, err = repo.FindByID(ctx, hidden.ID, false)
	require.NoError(t, err)
	assert.Equal(t, domain.LevelExpert, got.Level)

	deleted, err := repo.Delete(ctx, hidden.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = repo.Delete(ctx, hidden.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
