package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/apperr"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/skills/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/skills/repository"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage"
)

const (
	msgNotFound  = "Skill not found"
	msgDuplicate = "Skill with this name already exists in this category"
)

type SkillService struct {
	repo repository.SkillRepository
	now  func() time.Time
}

func NewSkillService(repo repository.SkillRepository) *SkillService {
	return &SkillService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// List returns visible skills, optionally limited to one category.
func (s *SkillService) List(ctx context.Context, category, sort string) ([]domain.Skill, error) {
	order, ok := domain.ParseSort(sort)
	if !ok {
		return nil, apperr.Validation([]apperr.FieldError{{Field: "sort", Message: "Unsupported sort field"}})
	}
	items, err := s.repo.List(ctx, domain.ListFilter{VisibleOnly: true, Category: category}, order)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

func (s *SkillService) AdminList(ctx context.Context) ([]domain.Skill, error) {
	items, err := s.repo.List(ctx, domain.ListFilter{}, domain.DefaultSort)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

func (s *SkillService) Categories(ctx context.Context) ([]string, error) {
	out, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (s *SkillService) Get(ctx context.Context, id string) (*domain.Skill, error) {
	oid, ok := storage.ObjectID(id)
	if !ok {
		return nil, apperr.NotFound(msgNotFound)
	}
	sk, err := s.repo.FindByID(ctx, oid, true)
	if err != nil {
		return nil, mapErr(err)
	}
	return sk, nil
}

func (s *SkillService) Create(ctx context.Context, in domain.Input) (*domain.Skill, error) {
	sk := domain.New(in, s.now())

	exists, err := s.repo.ExistsPair(ctx, sk.Name, sk.Category, nil)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if exists {
		return nil, apperr.Conflict(msgDuplicate, nil)
	}
	if err := s.repo.Insert(ctx, sk); err != nil {
		return nil, mapErr(err)
	}
	return sk, nil
}

// Update applies present fields. A changed name or category is re-checked
// against every other skill.
func (s *SkillService) Update(ctx context.Context, id string, in domain.Input) (*domain.Skill, error) {
	oid, ok := storage.ObjectID(id)
	if !ok {
		return nil, apperr.NotFound(msgNotFound)
	}
	sk, err := s.repo.FindByID(ctx, oid, false)
	if err != nil {
		return nil, mapErr(err)
	}

	nameKey, categoryKey := sk.NameKey, sk.CategoryKey
	in.ApplyTo(sk)
	if sk.NameKey != nameKey || sk.CategoryKey != categoryKey {
		exists, err := s.repo.ExistsPair(ctx, sk.Name, sk.Category, &sk.ID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if exists {
			return nil, apperr.Conflict(msgDuplicate, nil)
		}
	}
	sk.UpdatedAt = s.now()

	if err := s.repo.Replace(ctx, sk); err != nil {
		return nil, mapErr(err)
	}
	return sk, nil
}

func (s *SkillService) Delete(ctx context.Context, id string) error {
	oid, ok := storage.ObjectID(id)
	if !ok {
		return apperr.NotFound(msgNotFound)
	}
	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return apperr.Internal(err)
	}
	if !deleted {
		return apperr.NotFound(msgNotFound)
	}
	return nil
}

// BulkFailure describes one element of a bulk insert that was not stored.
type BulkFailure struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

type BulkResult struct {
	Created []domain.Skill `json:"created"`
	Failed  []BulkFailure  `json:"failed"`
}

func (r BulkResult) Message() string {
	return fmt.Sprintf("%d skills created, %d failed", len(r.Created), len(r.Failed))
}

// BulkCreate inserts every element it can. It is not atomic: elements that
// conflict are reported and the rest are kept.
func (s *SkillService) BulkCreate(ctx context.Context, inputs []domain.Input) (BulkResult, error) {
	now := s.now()
	skills := lo.Map(inputs, func(in domain.Input, _ int) *domain.Skill {
		return domain.New(in, now)
	})

	failed, err := s.repo.InsertMany(ctx, skills)
	if err != nil {
		return BulkResult{}, apperr.Internal(err)
	}

	res := BulkResult{Created: []domain.Skill{}, Failed: []BulkFailure{}}
	for i, sk := range skills {
		ferr, bad := failed[i]
		if !bad {
			res.Created = append(res.Created, *sk)
			continue
		}
		msg := msgDuplicate
		if !errors.Is(ferr, storage.ErrDuplicateKey) {
			msg = "Skill could not be stored"
			zerolog.Ctx(ctx).Warn().Err(ferr).Int("index", i).Msg("bulk skill insert failed")
		}
		res.Failed = append(res.Failed, BulkFailure{Index: i, Name: sk.Name, Category: sk.Category, Message: msg})
	}
	return res, nil
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperr.NotFound(msgNotFound)
	case errors.Is(err, storage.ErrDuplicateKey):
		return apperr.Conflict(msgDuplicate, err)
	}
	return apperr.Internal(err)
}
