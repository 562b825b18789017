package service

import (
	"context"

	"regdesk/internal/registration/models"
	"regdesk/internal/registration/saga"
	"regdesk/pkg/platform/audit"
)

// Create runs the creation saga:
//
//  1. validate — rejected requests have no side effects
//  2. insert transaction — StoreError aborts, nothing to undo
//  3. insert registration — on failure the transaction from step 2 is
//     deleted and the registration error is returned
//  4. set prospectus.isregistered true — best-effort; the registration is
//     reported created even if this lags (accepted inconsistency window)
func (s *Service) Create(ctx context.Context, req models.CreateRequest) (*models.Pair, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var (
		txn *models.Transaction
		reg *models.Registration
	)

	steps := []saga.Step{
		{
			Name: "insert_transaction",
			Run: func(ctx context.Context) error {
				created, err := s.transactions.Insert(ctx, req.Transaction())
				if err != nil {
					return storeFailure(err, "failed to create transaction")
				}
				txn = created
				return nil
			},
			Compensate: func(ctx context.Context) error {
				if err := s.transactions.Delete(ctx, txn.ID); err != nil {
					s.emitAudit(ctx, audit.ActionCompensationFailed, txnSubject(txn.ID), map[string]any{
						"saga": "registration_create",
						"step": "insert_transaction",
					})
					return err
				}
				return nil
			},
		},
		{
			Name: "insert_registration",
			Run: func(ctx context.Context) error {
				created, err := s.registrations.Insert(ctx, req.Registration(txn.ID))
				if err != nil {
					return storeFailure(err, "failed to create registration")
				}
				reg = created
				return nil
			},
		},
		{
			Name:       "set_prospectus_flag",
			BestEffort: true,
			Run: func(ctx context.Context) error {
				if err := s.prospects.SetRegistered(ctx, req.ProspectusID, true); err != nil {
					s.emitAudit(ctx, audit.ActionProspectusFlagFailed, prospectusSubject(req.ProspectusID), map[string]any{
						"registered": true,
					})
					return err
				}
				return nil
			},
		},
	}

	if err := s.runner.Execute(ctx, "registration_create", steps); err != nil {
		return nil, err
	}

	s.emitAudit(ctx, audit.ActionRegistrationCreated, regSubject(reg.ID), map[string]any{
		"prospectus_id":  reg.ProspectusID,
		"transaction_id": txn.ID,
		"total_amount":   reg.TotalAmount,
	})
	return &models.Pair{Registration: reg, Transaction: txn}, nil
}
