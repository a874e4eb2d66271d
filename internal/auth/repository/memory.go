package repository

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/auth/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage"
)

type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[primitive.ObjectID]domain.User
	byEmail map[string]primitive.ObjectID
}

func NewMemory() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[primitive.ObjectID]domain.User),
		byEmail: make(map[string]primitive.ObjectID),
	}
}

func (r *MemoryRepository) FindByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	id, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	r.mu.RUnlock()
	if !ok {
		return nil, storage.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *MemoryRepository) Insert(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[u.Email]; ok {
		return storage.ErrDuplicateKey
	}
	if _, ok := r.byID[u.ID]; ok {
		return storage.ErrDuplicateKey
	}
	r.byID[u.ID] = *u
	r.byEmail[u.Email] = u.ID
	return nil
}
