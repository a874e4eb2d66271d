// Package repository persists skills. The (name, category) pair is unique
// ignoring case in every backend.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/skills/domain"
)

type SkillRepository interface {
	List(ctx context.Context, f domain.ListFilter, s domain.Sort) ([]domain.Skill, error)
	Categories(ctx context.Context) ([]string, error)
	FindByID(ctx context.Context, id primitive.ObjectID, visibleOnly bool) (*domain.Skill, error)
	// ExistsPair reports whether another skill already uses the pair.
	ExistsPair(ctx context.Context, name, category string, exclude *primitive.ObjectID) (bool, error)
	Insert(ctx context.Context, s *domain.Skill) error
	// InsertMany inserts every skill it can and returns failures by index.
	InsertMany(ctx context.Context, skills []*domain.Skill) (map[int]error, error)
	Replace(ctx context.Context, s *domain.Skill) error
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

var (
	_ SkillRepository = (*MongoRepository)(nil)
	_ SkillRepository = (*PostgresRepository)(nil)
	_ SkillRepository = (*MemoryRepository)(nil)
)
