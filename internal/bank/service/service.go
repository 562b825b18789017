// Package service manages bank accounts. Deletion consults the registration
// store: an account referenced by any registration cannot be removed.
package service

import (
	"context"
	"errors"
	"log/slog"

	"regdesk/internal/bank/models"
	"regdesk/internal/bank/store"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/sentinel"
)

// RegistrationCounter reports how many registrations reference an account.
// The registration store satisfies it.
type RegistrationCounter interface {
	CountByBankID(ctx context.Context, bankID int64) (int, error)
}

type Service struct {
	store         store.Store
	registrations RegistrationCounter
	logger        *slog.Logger
}

func New(store store.Store, registrations RegistrationCounter, logger *slog.Logger) *Service {
	return &Service{store: store, registrations: registrations, logger: logger}
}

func (s *Service) Create(ctx context.Context, req models.CreateRequest) (*models.Account, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	account, err := s.store.Insert(ctx, req.Account())
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStore, "failed to create bank account")
	}
	return account, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*models.Account, error) {
	account, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "bank account not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeStore, "failed to fetch bank account")
	}
	return account, nil
}

func (s *Service) List(ctx context.Context) ([]*models.Account, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStore, "failed to list bank accounts")
	}
	return list, nil
}

func (s *Service) Update(ctx context.Context, id int64, patch models.Patch) (*models.Account, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	account, err := s.store.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "bank account not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeStore, "failed to update bank account")
	}
	return account, nil
}

// Delete removes an account unless a registration still references it. The
// check and the delete are two independent store calls, so a registration
// created between them slips through; the same race exists upstream and is
// accepted.
func (s *Service) Delete(ctx context.Context, id int64) error {
	count, err := s.registrations.CountByBankID(ctx, id)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeStore, "failed to check bank account references")
	}
	if count > 0 {
		return dErrors.New(dErrors.CodeConflict,
			"cannot delete bank account as it is linked to registrations")
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "bank account not found")
		}
		return dErrors.Wrap(err, dErrors.CodeStore, "failed to delete bank account")
	}
	return nil
}
