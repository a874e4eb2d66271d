package repository

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/contact/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/pagination"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	items map[primitive.ObjectID]domain.Message
}

func NewMemory() *MemoryRepository {
	return &MemoryRepository{items: make(map[primitive.ObjectID]domain.Message)}
}

func (r *MemoryRepository) Insert(_ context.Context, m *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[m.ID]; ok {
		return storage.ErrDuplicateKey
	}
	r.items[m.ID] = *m
	return nil
}

func (r *MemoryRepository) List(_ context.Context, f domain.ListFilter, p pagination.Params) ([]domain.Message, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := lo.Filter(lo.Values(r.items), func(m domain.Message, _ int) bool {
		return f.Status == "" || m.Status == f.Status
	})
	slices.SortFunc(out, func(a, b domain.Message) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID.Hex(), a.ID.Hex())
	})

	total := int64(len(out))
	out = lo.Drop(out, p.Skip())
	if p.Limit > 0 && len(out) > p.Limit {
		out = out[:p.Limit]
	}
	return out, total, nil
}

func (r *MemoryRepository) SetStatus(_ context.Context, id primitive.ObjectID, status string, at time.Time) (*domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	m.Status = status
	m.UpdatedAt = at
	r.items[id] = m
	return &m, nil
}
