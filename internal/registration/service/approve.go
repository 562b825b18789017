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

// Approve runs the approval workflow: the pending → registered transition
// plus the paired transaction update.
//
// The status write always carries assigned_to, so approving without an
// assignee clears any previous assignment. Like Update, a transaction
// failure after the status write does not revert the registration
// (documented two-phase gap). Registered is terminal: nothing exposed here
// moves a registration back to pending.
func (s *Service) Approve(ctx context.Context, id int64, req models.ApproveRequest) (*models.Pair, error) {
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
			Name: "approve_registration",
			Run: func(ctx context.Context) error {
				updated, err := s.registrations.Approve(ctx, id, req.AssignedTo)
				if err != nil {
					return storeFailure(err, "failed to approve registration")
				}
				reg = updated
				return nil
			},
		},
		{
			Name: "update_transaction",
			Run: func(ctx context.Context) error {
				updated, err := s.transactions.Update(ctx, txnID, req.TransactionPatch())
				if err != nil {
					// Same divergence record as Update: the status write stands.
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

	if err := s.runner.Execute(ctx, "registration_approve", steps); err != nil {
		return nil, err
	}

	s.emitAudit(ctx, audit.ActionRegistrationApproved, regSubject(id), map[string]any{
		"assigned_to": req.AssignedTo,
	})
	return &models.Pair{Registration: reg, Transaction: txn}, nil
}
