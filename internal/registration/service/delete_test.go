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

func (s *ServiceSuite) TestDelete_Succeeds() {
	ctx := context.Background()
	refs := &models.Refs{ID: 3, TransactionID: ptrInt64(7), ProspectusID: 42}

	gomock.InOrder(
		s.registrations.EXPECT().FindRefs(gomock.Any(), int64(3)).Return(refs, nil),
		s.transactions.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil),
		s.registrations.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil),
		s.prospects.EXPECT().SetRegistered(gomock.Any(), int64(42), false).Return(nil),
	)

	s.Require().NoError(s.service.Delete(ctx, 3))
	s.Equal([]string{"registration_delete"}, s.observer.succeeded)
	s.Len(s.auditSink.ByAction(audit.ActionRegistrationDeleted), 1)
}

func (s *ServiceSuite) TestDelete_UnknownRegistrationIsNotFound() {
	ctx := context.Background()
	s.registrations.EXPECT().FindRefs(gomock.Any(), int64(99)).
		Return(nil, sentinel.ErrNotFound)

	err := s.service.Delete(ctx, 99)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestDelete_TransactionFailureLeavesRegistrationIntact() {
	ctx := context.Background()
	refs := &models.Refs{ID: 3, TransactionID: ptrInt64(7), ProspectusID: 42}

	// The transaction goes first. When it cannot be deleted the registration
	// is never touched, so the pair stays consistent.
	gomock.InOrder(
		s.registrations.EXPECT().FindRefs(gomock.Any(), int64(3)).Return(refs, nil),
		s.transactions.EXPECT().Delete(gomock.Any(), int64(7)).
			Return(errors.New("delete failed")),
	)

	err := s.service.Delete(ctx, 3)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeStore))
	s.Contains(dErrors.MessageOf(err), "failed to delete associated transaction")
	s.Empty(s.auditSink.Events())
}

func (s *ServiceSuite) TestDelete_RegistrationFailureAfterTransactionIsReported() {
	ctx := context.Background()
	refs := &models.Refs{ID: 3, TransactionID: ptrInt64(7), ProspectusID: 42}

	// Once the transaction is gone it cannot be reconstructed. A failing
	// registration delete therefore leaves an orphaned reference behind and
	// the caller gets the error.
	gomock.InOrder(
		s.registrations.EXPECT().FindRefs(gomock.Any(), int64(3)).Return(refs, nil),
		s.transactions.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil),
		s.registrations.EXPECT().Delete(gomock.Any(), int64(3)).
			Return(errors.New("delete failed")),
	)

	err := s.service.Delete(ctx, 3)
	s.Require().Error(err)
	s.Contains(dErrors.MessageOf(err), "failed to delete registration")
	s.Empty(s.observer.compensations)
}

func (s *ServiceSuite) TestDelete_MissingTransactionLinkSkipsTransactionStep() {
	ctx := context.Background()
	refs := &models.Refs{ID: 3, TransactionID: nil, ProspectusID: 42}

	gomock.InOrder(
		s.registrations.EXPECT().FindRefs(gomock.Any(), int64(3)).Return(refs, nil),
		s.registrations.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil),
		s.prospects.EXPECT().SetRegistered(gomock.Any(), int64(42), false).Return(nil),
	)

	s.Require().NoError(s.service.Delete(ctx, 3))
}

func (s *ServiceSuite) TestDelete_ProspectusFlagFailureDoesNotFailDeletion() {
	ctx := context.Background()
	refs := &models.Refs{ID: 3, TransactionID: ptrInt64(7), ProspectusID: 42}

	gomock.InOrder(
		s.registrations.EXPECT().FindRefs(gomock.Any(), int64(3)).Return(refs, nil),
		s.transactions.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil),
		s.registrations.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil),
		s.prospects.EXPECT().SetRegistered(gomock.Any(), int64(42), false).
			Return(errors.New("prospectus unavailable")),
	)

	s.Require().NoError(s.service.Delete(ctx, 3))
	s.Equal([]string{"registration_delete/clear_prospectus_flag"}, s.observer.bestEffortFailures)
	s.Len(s.auditSink.ByAction(audit.ActionProspectusFlagFailed), 1)
}
