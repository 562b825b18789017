package service

import (
	"context"
	"errors"
	"strconv"

	"regdesk/internal/registration/saga"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/audit"
	"regdesk/pkg/platform/sentinel"
)

// Delete runs the deletion saga:
//
//  1. fetch the linked row ids — absent registration is NotFound, nothing
//     else happens
//  2. delete the transaction first; failure aborts with the registration
//     intact, preserving "no registration without a live transaction"
//  3. delete the registration; failure here leaves an orphaned reference to
//     an already-deleted transaction — the transaction cannot be
//     reconstructed, so there is no compensation (accepted gap)
//  4. reset prospectus.isregistered — best-effort
func (s *Service) Delete(ctx context.Context, id int64) error {
	refs, err := s.registrations.FindRefs(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "registration not found")
		}
		return storeFailure(err, "failed to fetch registration details")
	}

	var steps []saga.Step
	if refs.TransactionID != nil {
		txnID := *refs.TransactionID
		steps = append(steps, saga.Step{
			Name: "delete_transaction",
			Run: func(ctx context.Context) error {
				if err := s.transactions.Delete(ctx, txnID); err != nil {
					return storeFailure(err, "failed to delete associated transaction")
				}
				return nil
			},
			// No compensation: a deleted transaction cannot be reconstructed.
		})
	}
	steps = append(steps,
		saga.Step{
			Name: "delete_registration",
			Run: func(ctx context.Context) error {
				if err := s.registrations.Delete(ctx, id); err != nil {
					return storeFailure(err, "failed to delete registration")
				}
				return nil
			},
		},
		saga.Step{
			Name:       "clear_prospectus_flag",
			BestEffort: true,
			Run: func(ctx context.Context) error {
				if err := s.prospects.SetRegistered(ctx, refs.ProspectusID, false); err != nil {
					s.emitAudit(ctx, audit.ActionProspectusFlagFailed, prospectusSubject(refs.ProspectusID), map[string]any{
						"registered": false,
					})
					return err
				}
				return nil
			},
		},
	)

	if err := s.runner.Execute(ctx, "registration_delete", steps); err != nil {
		return err
	}

	s.emitAudit(ctx, audit.ActionRegistrationDeleted, regSubject(id), map[string]any{
		"prospectus_id": refs.ProspectusID,
	})
	return nil
}

func regSubject(id int64) string {
	return "registration/" + strconv.FormatInt(id, 10)
}

func txnSubject(id int64) string {
	return "transaction/" + strconv.FormatInt(id, 10)
}

func prospectusSubject(id int64) string {
	return "prospectus/" + strconv.FormatInt(id, 10)
}
