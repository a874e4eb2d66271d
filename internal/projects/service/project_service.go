package service

import (
	"context"
	"errors"
	"time"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/apperr"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/pagination"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/projects/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/projects/repository"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage"
)

const (
	msgNotFound  = "Project not found"
	msgDuplicate = "A project with this title already exists"
)

// ProjectService handles project-related business logic
type ProjectService struct {
	repo repository.ProjectRepository
	now  func() time.Time
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// ListQuery is the public listing request.
type ListQuery struct {
	Category string
	Featured bool
	Search   string
	Exclude  string
	Page     pagination.Params
}

// List returns published projects matching q with pagination metadata.
func (s *ProjectService) List(ctx context.Context, q ListQuery) ([]domain.Project, pagination.Meta, error) {
	f := domain.ListFilter{
		PublishedOnly: true,
		Category:      q.Category,
		FeaturedOnly:  q.Featured,
		Search:        q.Search,
	}
	if id, ok := domain.ParseObjectID(q.Exclude); ok {
		f.Exclude = &id
	}

	items, total, err := s.repo.List(ctx, f, q.Page)
	if err != nil {
		return nil, pagination.Meta{}, apperr.Internal(err)
	}
	return items, pagination.NewMeta(q.Page, total), nil
}

// Featured returns at most domain.FeaturedLimit published, featured projects.
func (s *ProjectService) Featured(ctx context.Context) ([]domain.Project, error) {
	items, _, err := s.repo.List(ctx,
		domain.ListFilter{PublishedOnly: true, FeaturedOnly: true},
		pagination.Params{Page: 1, Limit: domain.FeaturedLimit})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

// Get resolves a published project by id or slug.
func (s *ProjectService) Get(ctx context.Context, identifier string) (*domain.Project, error) {
	var (
		p   *domain.Project
		err error
	)
	switch ident := domain.ParseIdentifier(identifier); ident.Kind {
	case domain.KindObjectID:
		p, err = s.repo.FindByID(ctx, ident.ID, true)
	case domain.KindSlug:
		p, err = s.repo.FindBySlug(ctx, ident.Slug, true)
	}
	if err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

// AdminList returns every project regardless of publication.
func (s *ProjectService) AdminList(ctx context.Context) ([]domain.Project, error) {
	items, _, err := s.repo.List(ctx, domain.ListFilter{}, pagination.All())
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

func (s *ProjectService) Create(ctx context.Context, in domain.Input) (*domain.Project, error) {
	p := domain.New(in, s.now())
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

// Update applies the present fields of in to the project with the given id.
func (s *ProjectService) Update(ctx context.Context, id string, in domain.Input) (*domain.Project, error) {
	oid, ok := domain.ParseObjectID(id)
	if !ok {
		return nil, apperr.NotFound(msgNotFound)
	}
	p, err := s.repo.FindByID(ctx, oid, false)
	if err != nil {
		return nil, mapErr(err)
	}

	title := p.Title
	in.ApplyTo(p)
	if p.Title != title {
		p.Slug = domain.SlugFor(p.Title, p.ID)
	}
	p.UpdatedAt = s.now()

	if err := s.repo.Replace(ctx, p); err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	oid, ok := domain.ParseObjectID(id)
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

func mapErr(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperr.NotFound(msgNotFound)
	case errors.Is(err, storage.ErrDuplicateKey):
		return apperr.Conflict(msgDuplicate, err)
	}
	return apperr.Internal(err)
}
