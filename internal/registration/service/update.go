package service

import (
	"context"
	"errors"

	"regdesk/internal/registration/models"
	"regdesk/internal/registration/saga"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/audit"
	"regdesk/pkg/platform/sentinel"
)

// Update runs the update saga: fetch the linked transaction id, update the
// registration, then update the transaction with the pre-fetched id.
//
// The two writes are independent and the second has NO compensation: when
// the transaction update fails, the registration keeps its new values while
// the transaction keeps its old ones, and the failure is reported to the
// caller. That asymmetry is the documented behavior of this workflow, kept
// deliberately rather than silently fixed.
func (s *Service) Update(ctx context.Context, id int64, req models.UpdateRequest) (*models.Pair, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	refs, err := s.registrations.FindRefs(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "registration not found")
		}
		return nil, storeFailure(err, "failed to fetch registration details")
	}
	if refs.TransactionID == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "registration has no linked transaction")
	}
	txnID := *refs.TransactionID

	var (
		reg *models.Registration
		txn *models.Transaction
	)

	steps := []saga.Step{
		{
			Name: "update_registration",
			Run: func(ctx context.Context) error {
				updated, err := s.registrations.Update(ctx, id, req.RegistrationPatch())
				if err != nil {
					return storeFailure(err, "failed to update registration")
				}
				reg = updated
				return nil
			},
			// No compensation: see the two-phase-update note above.
		},
		{
			Name: "update_transaction",
			Run: func(ctx context.Context) error {
				updated, err := s.transactions.Update(ctx, txnID, req.TransactionPatch())
				if err != nil {
					// The registration already carries its new values and is
					// not reverted; record the divergence.
					s.emitAudit(ctx, audit.ActionTransactionLeftBehind, regSubject(id), map[string]any{
						"transaction_id": txnID,
					})
					return storeFailure(err, "failed to update transaction")
				}
				txn = updated
				return nil
			},
		},
	}

	if err := s.runner.Execute(ctx, "registration_update", steps); err != nil {
		return nil, err
	}

	s.emitAudit(ctx, audit.ActionRegistrationUpdated, regSubject(id), map[string]any{
		"transaction_id": txnID,
	})
	return &models.Pair{Registration: reg, Transaction: txn}, nil
}
