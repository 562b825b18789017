// Package service implements prospectus intake. The registered flag is not
// writable here: the registration coordinator owns it.
package service

import (
	"context"
	"errors"
	"log/slog"

	"regdesk/internal/prospectus/models"
	"regdesk/internal/prospectus/store"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/sentinel"
)

type Service struct {
	store  store.Store
	logger *slog.Logger
}

func New(store store.Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (s *Service) Create(ctx context.Context, req models.CreateRequest) (*models.Prospectus, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	p, err := s.store.Insert(ctx, req.Prospectus())
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStore, "failed to create prospectus")
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*models.Prospectus, error) {
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "prospectus not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeStore, "failed to fetch prospectus")
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]*models.Prospectus, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStore, "failed to list prospectus")
	}
	return list, nil
}

func (s *Service) Update(ctx context.Context, id int64, patch models.Patch) (*models.Prospectus, error) {
	p, err := s.store.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "prospectus not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeStore, "failed to update prospectus")
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "prospectus not found")
		}
		return dErrors.Wrap(err, dErrors.CodeStore, "failed to delete prospectus")
	}
	return nil
}
