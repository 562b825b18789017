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

func (s *ServiceSuite) TestApprove_Succeeds() {
	ctx := context.Background()
	refs := &models.Refs{ID: 3, TransactionID: ptrInt64(7), ProspectusID: 42}
	req := models.ApproveRequest{
		AssignedTo: ptrInt64(11),
		Amount:     ptrFloat64(5000),
	}

	reg := &models.Registration{ID: 3, Status: models.StatusRegistered, AssignedTo: ptrInt64(11)}
	txn := &models.Transaction{ID: 7, Amount: 5000}

	gomock.InOrder(
		s.registrations.EXPECT().FindRefs(gomock.Any(), int64(3)).Return(refs, nil),
		s.registrations.EXPECT().Approve(gomock.Any(), int64(3), ptrInt64(11)).Return(reg, nil),
		s.transactions.EXPECT().Update(gomock.Any(), int64(7), req.TransactionPatch()).Return(txn, nil),
	)

	pair, err := s.service.Approve(ctx, 3, req)
	s.Require().NoError(err)
	s.Equal(models.StatusRegistered, pair.Registration.Status)
	s.Len(s.auditSink.ByAction(audit.ActionRegistrationApproved), 1)
}

func (s *ServiceSuite) TestApprove_WithoutAssigneeClearsAssignment() {
	ctx := context.Background()
	refs := &models.Refs{ID: 3, TransactionID: ptrInt64(7), ProspectusID: 42}

	reg := &models.Registration{ID: 3, Status: models.StatusRegistered}
	txn := &models.Transaction{ID: 7}

	gomock.InOrder(
		s.registrations.EXPECT().FindRefs(gomock.Any(), int64(3)).Return(refs, nil),
		s.registrations.EXPECT().Approve(gomock.Any(), int64(3), gomock.Nil()).Return(reg, nil),
		s.transactions.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).Return(txn, nil),
	)

	pair, err := s.service.Approve(ctx, 3, models.ApproveRequest{})
	s.Require().NoError(err)
	s.Nil(pair.Registration.AssignedTo)
}

func (s *ServiceSuite) TestApprove_UnknownRegistrationIsNotFound() {
	ctx := context.Background()
	s.registrations.EXPECT().FindRefs(gomock.Any(), int64(99)).
		Return(nil, sentinel.ErrNotFound)

	_, err := s.service.Approve(ctx, 99, models.ApproveRequest{})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestApprove_TransactionFailureDoesNotRevertStatus() {
	ctx := context.Background()
	refs := &models.Refs{ID: 3, TransactionID: ptrInt64(7), ProspectusID: 42}
	reg := &models.Registration{ID: 3, Status: models.StatusRegistered}

	// The status transition has committed; the failed transaction update is
	// reported without any attempt to move the registration back to pending.
	gomock.InOrder(
		s.registrations.EXPECT().FindRefs(gomock.Any(), int64(3)).Return(refs, nil),
		s.registrations.EXPECT().Approve(gomock.Any(), int64(3), gomock.Any()).Return(reg, nil),
		s.transactions.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).
			Return(nil, errors.New("update failed")),
	)

	_, err := s.service.Approve(ctx, 3, models.ApproveRequest{AssignedTo: ptrInt64(11)})
	s.Require().Error(err)
	s.Contains(dErrors.MessageOf(err), "failed to update transaction")

	s.Empty(s.observer.compensations)
	s.Empty(s.auditSink.ByAction(audit.ActionRegistrationApproved))
	s.Len(s.auditSink.ByAction(audit.ActionTransactionLeftBehind), 1)
}
