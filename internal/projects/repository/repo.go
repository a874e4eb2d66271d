// Package repository persists projects. Every backend returns the
// storage.ErrNotFound and storage.ErrDuplicateKey sentinels so the service
// layer never sees driver errors for expected conditions.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/pagination"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/projects/domain"
)

// ProjectRepository is implemented by the mongo, postgres and memory stores.
type ProjectRepository interface {
	List(ctx context.Context, f domain.ListFilter, p pagination.Params) ([]domain.Project, int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID, publishedOnly bool) (*domain.Project, error)
	FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.Project, error)
	Insert(ctx context.Context, p *domain.Project) error
	Replace(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

var (
	_ ProjectRepository = (*MongoRepository)(nil)
	_ ProjectRepository = (*PostgresRepository)(nil)
	_ ProjectRepository = (*MemoryRepository)(nil)
)
