// Package repository persists contact messages. Messages are never deleted.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/contact/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/pagination"
)

type MessageRepository interface {
	Insert(ctx context.Context, m *domain.Message) error
	// List returns messages newest first along with the unpaginated total.
	List(ctx context.Context, f domain.ListFilter, p pagination.Params) ([]domain.Message, int64, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string, at time.Time) (*domain.Message, error)
}

var (
	_ MessageRepository = (*MongoRepository)(nil)
	_ MessageRepository = (*PostgresRepository)(nil)
	_ MessageRepository = (*MemoryRepository)(nil)
)
