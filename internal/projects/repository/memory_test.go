package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/pagination"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/projects/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage"
)

func project(title string, priority int, published, featured bool, created time.Time) *domain.Project {
	p := domain.New(domain.Input{
		Title:       &title,
		Priority:    &priority,
		IsPublished: &published,
		Featured:    &featured,
	}, created)
	return p
}

func seed(t *testing.T, r *MemoryRepository, ps ...*domain.Project) {
	t.Helper()
	for _, p := range ps {
		require.NoError(t, r.Insert(context.Background(), p))
	}
}

func TestMemoryListSortsAndPaginates(t *testing.T) {
	ctx := context.Background()
	r := NewMemory()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	low := project("Low", 1, true, false, base)
	highOld := project("High Old", 10, true, false, base)
	highNew := project("High New", 10, true, false, base.Add(time.Hour))
	hidden := project("Hidden", 99, false, false, base)
	seed(t, r, low, highOld, highNew, hidden)

	items, total, err := r.List(ctx, domain.ListFilter{PublishedOnly: true}, pagination.Params{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, items, 2)
	assert.Equal(t, "High New", items[0].Title)
	assert.Equal(t, "High Old", items[1].Title)

	items, _, err = r.List(ctx, domain.ListFilter{PublishedOnly: true}, pagination.Params{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Low", items[0].Title)

	items, total, err = r.List(ctx, domain.ListFilter{}, pagination.All())
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Equal(t, "Hidden", items[0].Title)
}

func TestMemoryListFilters(t *testing.T) {
	ctx := context.Background()
	r := NewMemory()
	now := time.Now().UTC()

	a := project("Chat App", 0, true, true, now)
	a.Technologies = []string{"Go", "WebSocket"}
	b := project("Data Pipeline", 0, true, false, now)
	b.Category = domain.CategoryData
	seed(t, r, a, b)

	items, _, err := r.List(ctx, domain.ListFilter{PublishedOnly: true, FeaturedOnly: true}, pagination.All())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, a.ID, items[0].ID)

	items, _, err = r.List(ctx, domain.ListFilter{Category: domain.CategoryData}, pagination.All())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].ID)

	items, _, err = r.List(ctx, domain.ListFilter{Search: "websocket"}, pagination.All())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, a.ID, items[0].ID)

	items, _, err = r.List(ctx, domain.ListFilter{Exclude: &a.ID}, pagination.All())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].ID)
}

func TestMemoryFindRespectsPublication(t *testing.T) {
	ctx := context.Background()
	r := NewMemory()
	draft := project("Draft", 0, false, false, time.Now())
	seed(t, r, draft)

	_, err := r.FindByID(ctx, draft.ID, true)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = r.FindBySlug(ctx, "draft", true)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	got, err := r.FindBySlug(ctx, "draft", false)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, got.ID)
}

func TestMemoryUniqueness(t *testing.T) {
	ctx := context.Background()
	r := NewMemory()
	a := project("Same", 0, true, false, time.Now())
	b := project("Same", 0, true, false, time.Now())
	c := project("Other", 0, true, false, time.Now())
	seed(t, r, a, c)

	assert.ErrorIs(t, r.Insert(ctx, b), storage.ErrDuplicateKey)

	c.Title = "Same"
	assert.ErrorIs(t, r.Replace(ctx, c), storage.ErrDuplicateKey)
}

func TestMemoryReplaceAndDelete(t *testing.T) {
	ctx := context.Background()
	r := NewMemory()
	p := project("Thing", 0, true, false, time.Now())

	assert.ErrorIs(t, r.Replace(ctx, p), storage.ErrNotFound)
	seed(t, r, p)

	p.Priority = 42
	require.NoError(t, r.Replace(ctx, p))
	got, err := r.FindByID(ctx, p.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 42, got.Priority)

	ok, err := r.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
