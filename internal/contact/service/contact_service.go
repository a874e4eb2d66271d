package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/apperr"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/contact/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/contact/notify"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/contact/repository"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/pagination"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage"
)

const msgNotFound = "Message not found"

type ContactService struct {
	repo     repository.MessageRepository
	notifier notify.Notifier
	now      func() time.Time
}

func NewContactService(repo repository.MessageRepository, notifier notify.Notifier) *ContactService {
	if notifier == nil {
		notifier = notify.LogNotifier{}
	}
	return &ContactService{
		repo:     repo,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Submit stores a public message and then notifies the owner. A failed
// notification is logged only.
func (s *ContactService) Submit(ctx context.Context, sub domain.Submission) (*domain.Message, error) {
	m := domain.New(sub, s.now())
	if err := s.repo.Insert(ctx, m); err != nil {
		return nil, apperr.Internal(err)
	}

	if err := s.notifier.Notify(ctx, *m); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("contact_id", m.ID.Hex()).Msg("contact notification failed")
	}
	return m, nil
}

func (s *ContactService) List(ctx context.Context, status string, p pagination.Params) ([]domain.Message, pagination.Meta, error) {
	items, total, err := s.repo.List(ctx, domain.ListFilter{Status: status}, p)
	if err != nil {
		return nil, pagination.Meta{}, apperr.Internal(err)
	}
	return items, pagination.NewMeta(p, total), nil
}

func (s *ContactService) SetStatus(ctx context.Context, id, status string) (*domain.Message, error) {
	oid, ok := storage.ObjectID(id)
	if !ok {
		return nil, apperr.NotFound(msgNotFound)
	}
	m, err := s.repo.SetStatus(ctx, oid, status, s.now())
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NotFound(msgNotFound)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return m, nil
}
