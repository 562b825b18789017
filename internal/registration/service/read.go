package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"regdesk/internal/registration/models"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/sentinel"
)

// Get resolves one registration with its linked rows. The lookups are
// independent reads, so they fan out in parallel; a missing linked row is
// reported as an absent field, not an error, because the read path must be
// able to display the documented inconsistency windows.
func (s *Service) Get(ctx context.Context, id int64) (*models.Detail, error) {
	reg, err := s.registrations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "registration not found")
		}
		return nil, storeFailure(err, "failed to fetch registration")
	}

	detail := &models.Detail{Registration: reg}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		txn, err := s.transactions.FindByID(gctx, reg.TransactionID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil
			}
			return storeFailure(err, "failed to fetch transaction")
		}
		detail.Transaction = txn
		return nil
	})
	if s.prospectusReader != nil {
		g.Go(func() error {
			summary, err := s.prospectusReader.FindSummary(gctx, reg.ProspectusID)
			if err != nil {
				if errors.Is(err, sentinel.ErrNotFound) {
					return nil
				}
				return storeFailure(err, "failed to fetch prospectus")
			}
			detail.Prospectus = summary
			return nil
		})
	}
	if s.bankReader != nil && reg.BankID != nil {
		bankID := *reg.BankID
		g.Go(func() error {
			summary, err := s.bankReader.FindSummary(gctx, bankID)
			if err != nil {
				if errors.Is(err, sentinel.ErrNotFound) {
					return nil
				}
				return storeFailure(err, "failed to fetch bank account")
			}
			detail.BankAccount = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return detail, nil
}

// List returns all registrations, newest first.
func (s *Service) List(ctx context.Context) ([]*models.Registration, error) {
	regs, err := s.registrations.List(ctx)
	if err != nil {
		return nil, storeFailure(err, "failed to list registrations")
	}
	return regs, nil
}

// ListTransactions returns all transactions, most recent date first.
func (s *Service) ListTransactions(ctx context.Context) ([]*models.Transaction, error) {
	txns, err := s.transactions.List(ctx)
	if err != nil {
		return nil, storeFailure(err, "failed to list transactions")
	}
	return txns, nil
}

// CreateTransaction covers the standalone transaction intake endpoint.
// There is no saga here: the row is free-standing until a registration
// links it.
func (s *Service) CreateTransaction(ctx context.Context, req models.NewTransactionRequest) (*models.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	txn, err := s.transactions.Insert(ctx, req.Transaction())
	if err != nil {
		return nil, storeFailure(err, "failed to create transaction")
	}
	return txn, nil
}
