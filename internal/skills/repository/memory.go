package repository

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/skills/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	items map[primitive.ObjectID]domain.Skill
}

func NewMemory() *MemoryRepository {
	return &MemoryRepository{items: make(map[primitive.ObjectID]domain.Skill)}
}

func compareBy(field string, a, b domain.Skill) int {
	switch field {
	case "category":
		return cmp.Compare(a.Category, b.Category)
	case "level":
		return cmp.Compare(a.Level, b.Level)
	case "proficiency":
		return cmp.Compare(a.Proficiency, b.Proficiency)
	case "yearsOfExperience":
		return cmp.Compare(a.YearsOfExperience, b.YearsOfExperience)
	case "createdAt":
		return a.CreatedAt.Compare(b.CreatedAt)
	}
	return cmp.Compare(a.Name, b.Name)
}

func (r *MemoryRepository) List(_ context.Context, f domain.ListFilter, s domain.Sort) ([]domain.Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, categoryKey := domain.Key("", f.Category)
	out := lo.Filter(lo.Values(r.items), func(sk domain.Skill, _ int) bool {
		if f.VisibleOnly && !sk.IsVisible {
			return false
		}
		return categoryKey == "" || sk.CategoryKey == categoryKey
	})
	slices.SortStableFunc(out, func(a, b domain.Skill) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		c := compareBy(s.Field, a, b)
		if s.Desc {
			c = -c
		}
		if c == 0 {
			return cmp.Compare(a.ID.Hex(), b.ID.Hex())
		}
		return c
	})
	return out, nil
}

func (r *MemoryRepository) Categories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := lo.Uniq(lo.Map(lo.Values(r.items), func(sk domain.Skill, _ int) string { return sk.Category }))
	slices.Sort(out)
	return out, nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id primitive.ObjectID, visibleOnly bool) (*domain.Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[id]
	if !ok || (visibleOnly && !s.IsVisible) {
		return nil, storage.ErrNotFound
	}
	return &s, nil
}

func (r *MemoryRepository) existsPair(nameKey, categoryKey string, exclude primitive.ObjectID) bool {
	for id, s := range r.items {
		if id != exclude && s.NameKey == nameKey && s.CategoryKey == categoryKey {
			return true
		}
	}
	return false
}

func (r *MemoryRepository) ExistsPair(_ context.Context, name, category string, exclude *primitive.ObjectID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nameKey, categoryKey := domain.Key(name, category)
	var ex primitive.ObjectID
	if exclude != nil {
		ex = *exclude
	}
	return r.existsPair(nameKey, categoryKey, ex), nil
}

func (r *MemoryRepository) insert(s *domain.Skill) error {
	if _, ok := r.items[s.ID]; ok || r.existsPair(s.NameKey, s.CategoryKey, s.ID) {
		return storage.ErrDuplicateKey
	}
	r.items[s.ID] = *s
	return nil
}

func (r *MemoryRepository) Insert(_ context.Context, s *domain.Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insert(s)
}

func (r *MemoryRepository) InsertMany(_ context.Context, skills []*domain.Skill) (map[int]error, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	failed := make(map[int]error)
	for i, s := range skills {
		if err := r.insert(s); err != nil {
			failed[i] = err
		}
	}
	return failed, nil
}

func (r *MemoryRepository) Replace(_ context.Context, s *domain.Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[s.ID]; !ok {
		return storage.ErrNotFound
	}
	if r.existsPair(s.NameKey, s.CategoryKey, s.ID) {
		return storage.ErrDuplicateKey
	}
	r.items[s.ID] = *s
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
