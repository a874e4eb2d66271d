// Package repository persists user accounts. Emails are stored lower-cased
// and are unique.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/auth/domain"
)

type UserRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, u *domain.User) error
}

var (
	_ UserRepository = (*MongoRepository)(nil)
	_ UserRepository = (*PostgresRepository)(nil)
	_ UserRepository = (*MemoryRepository)(nil)
)
