package service

import (
	"context"
	"errors"

	"go.uber.org/mock/gomock"

	"regdesk/internal/registration/models"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/audit"
	"regdesk/pkg/platform/sentinel"
)

func (s *ServiceSuite) TestUpdate_Succeeds() {
	ctx := context.Background()
	refs := &models.Refs{ID: 3, TransactionID: ptrInt64(7), ProspectusID: 42}
	req := models.UpdateRequest{
		TotalAmount: ptrFloat64(6000),
		Amount:      ptrFloat64(6000),
		Notes:       ptrString("renegotiated"),
	}

	reg := &models.Registration{ID: 3, TransactionID: 7, TotalAmount: 6000}
	txn := &models.Transaction{ID: 7, Amount: 6000}

	gomock.InOrder(
		s.registrations.EXPECT().FindRefs(gomock.Any(), int64(3)).Return(refs, nil),
		s.registrations.EXPECT().Update(gomock.Any(), int64(3), req.RegistrationPatch()).Return(reg, nil),
		s.transactions.EXPECT().Update(gomock.Any(), int64(7), req.TransactionPatch()).Return(txn, nil),
	)

	pair, err := s.service.Update(ctx, 3, req)
	s.Require().NoError(err)
	s.Equal(6000.0, pair.Registration.TotalAmount)
	s.Equal(6000.0, pair.Transaction.Amount)
	s.Len(s.auditSink.ByAction(audit.ActionRegistrationUpdated), 1)
}

func (s *ServiceSuite) TestUpdate_RejectsUnknownStatus() {
	ctx := context.Background()
	bad := models.Status("archived")

	_, err := s.service.Update(ctx, 3, models.UpdateRequest{Status: &bad})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ServiceSuite) TestUpdate_UnknownRegistrationIsNotFound() {
	ctx := context.Background()
	s.registrations.EXPECT().FindRefs(gomock.Any(), int64(99)).
		Return(nil, sentinel.ErrNotFound)

	_, err := s.service.Update(ctx, 99, models.UpdateRequest{})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestUpdate_MissingTransactionLinkIsNotFound() {
	ctx := context.Background()
	refs := &models.Refs{ID: 3, TransactionID: nil, ProspectusID: 42}
	s.registrations.EXPECT().FindRefs(gomock.Any(), int64(3)).Return(refs, nil)

	_, err := s.service.Update(ctx, 3, models.UpdateRequest{})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestUpdate_RegistrationFailureLeavesTransactionUntouched() {
	ctx := context.Background()
	refs := &models.Refs{ID: 3, TransactionID: ptrInt64(7), ProspectusID: 42}

	gomock.InOrder(
		s.registrations.EXPECT().FindRefs(gomock.Any(), int64(3)).Return(refs, nil),
		s.registrations.EXPECT().Update(gomock.Any(), int64(3), gomock.Any()).
			Return(nil, errors.New("update failed")),
	)

	_, err := s.service.Update(ctx, 3, models.UpdateRequest{TotalAmount: ptrFloat64(6000)})
	s.Require().Error(err)
	s.Contains(dErrors.MessageOf(err), "failed to update registration")
}

func (s *ServiceSuite) TestUpdate_TransactionFailureDoesNotRevertRegistration() {
	ctx := context.Background()
	refs := &models.Refs{ID: 3, TransactionID: ptrInt64(7), ProspectusID: 42}
	reg := &models.Registration{ID: 3, TransactionID: 7, TotalAmount: 6000}

	// The registration write has already committed; no second registration
	// call may happen after the transaction update fails.
	gomock.InOrder(
		s.registrations.EXPECT().FindRefs(gomock.Any(), int64(3)).Return(refs, nil),
		s.registrations.EXPECT().Update(gomock.Any(), int64(3), gomock.Any()).Return(reg, nil),
		s.transactions.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).
			Return(nil, errors.New("update failed")),
	)

	_, err := s.service.Update(ctx, 3, models.UpdateRequest{
		TotalAmount: ptrFloat64(6000),
		Amount:      ptrFloat64(6000),
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeStore))
	s.Contains(dErrors.MessageOf(err), "failed to update transaction")

	s.Empty(s.observer.compensations)
	s.Empty(s.auditSink.ByAction(audit.ActionRegistrationUpdated))
	s.Len(s.auditSink.ByAction(audit.ActionTransactionLeftBehind), 1)
}
