package repository

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/pagination"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/projects/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage"
)

// MemoryRepository keeps projects in process. Title and slug are unique, like
// the indexed backends.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[primitive.ObjectID]domain.Project
}

func NewMemory() *MemoryRepository {
	return &MemoryRepository{items: make(map[primitive.ObjectID]domain.Project)}
}

func (r *MemoryRepository) matches(p domain.Project, f domain.ListFilter) bool {
	if f.PublishedOnly && !p.IsPublished {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.FeaturedOnly && !p.Featured {
		return false
	}
	if f.Exclude != nil && p.ID == *f.Exclude {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		hay := strings.ToLower(strings.Join(append([]string{p.Title, p.ShortDescription, p.Description}, p.Technologies...), " "))
		if !strings.Contains(hay, needle) {
			return false
		}
	}
	return true
}

func (r *MemoryRepository) List(_ context.Context, f domain.ListFilter, p pagination.Params) ([]domain.Project, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := lo.Filter(lo.Values(r.items), func(item domain.Project, _ int) bool {
		return r.matches(item, f)
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	total := int64(len(out))
	out = lo.Drop(out, p.Skip())
	if p.Limit > 0 && len(out) > p.Limit {
		out = out[:p.Limit]
	}
	return out, total, nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id primitive.ObjectID, publishedOnly bool) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok || (publishedOnly && !p.IsPublished) {
		return nil, storage.ErrNotFound
	}
	p = clone(p)
	return &p, nil
}

func (r *MemoryRepository) FindBySlug(_ context.Context, slug string, publishedOnly bool) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := lo.Find(lo.Values(r.items), func(item domain.Project) bool { return item.Slug == slug })
	if !ok || (publishedOnly && !p.IsPublished) {
		return nil, storage.ErrNotFound
	}
	p = clone(p)
	return &p, nil
}

func (r *MemoryRepository) conflicts(p *domain.Project) bool {
	for id, other := range r.items {
		if id != p.ID && (other.Title == p.Title || other.Slug == p.Slug) {
			return true
		}
	}
	return false
}

func (r *MemoryRepository) Insert(_ context.Context, p *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[p.ID]; ok || r.conflicts(p) {
		return storage.ErrDuplicateKey
	}
	r.items[p.ID] = clone(*p)
	return nil
}

func (r *MemoryRepository) Replace(_ context.Context, p *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[p.ID]; !ok {
		return storage.ErrNotFound
	}
	if r.conflicts(p) {
		return storage.ErrDuplicateKey
	}
	r.items[p.ID] = clone(*p)
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func clone(p domain.Project) domain.Project {
	p.Technologies = slices.Clone(p.Technologies)
	p.Images = slices.Clone(p.Images)
	return p
}
