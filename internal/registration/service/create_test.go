package service

import (
	"context"
	"errors"

	"go.uber.org/mock/gomock"

	"regdesk/internal/registration/models"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/audit"
)

func validCreateRequest() models.CreateRequest {
	return models.CreateRequest{
		TransactionType: "bank_transfer",
		TransactionRef:  "TXN-1001",
		Amount:          ptrFloat64(5000),
		TransactionDate: "2026-08-01",
		ProspectusID:    42,
		Services:        "publication",
		TotalAmount:     5000,
		Month:           "August",
		Year:            2026,
	}
}

func (s *ServiceSuite) TestCreate_Succeeds() {
	ctx := context.Background()
	req := validCreateRequest()

	txn := &models.Transaction{ID: 7, Type: "bank_transfer", Amount: 5000}
	reg := &models.Registration{ID: 3, ProspectusID: 42, TransactionID: 7, TotalAmount: 5000}

	gomock.InOrder(
		s.transactions.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(txn, nil),
		s.registrations.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(reg, nil),
		s.prospects.EXPECT().SetRegistered(gomock.Any(), int64(42), true).Return(nil),
	)

	pair, err := s.service.Create(ctx, req)
	s.Require().NoError(err)
	s.Equal(int64(3), pair.Registration.ID)
	s.Equal(int64(7), pair.Transaction.ID)

	s.Equal([]string{"registration_create"}, s.observer.succeeded)
	s.Len(s.auditSink.ByAction(audit.ActionRegistrationCreated), 1)
}

func (s *ServiceSuite) TestCreate_ValidationFailureHasNoSideEffects() {
	ctx := context.Background()

	s.Run("missing prospectus id", func() {
		_, err := s.service.Create(ctx, models.CreateRequest{TotalAmount: 100})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("missing total amount", func() {
		_, err := s.service.Create(ctx, models.CreateRequest{ProspectusID: 42})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unknown status", func() {
		req := validCreateRequest()
		req.Status = "archived"
		_, err := s.service.Create(ctx, req)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	// No store expectations were registered: any call would fail the test.
	s.Empty(s.auditSink.Events())
}

func (s *ServiceSuite) TestCreate_TransactionInsertFailureLeavesNothingBehind() {
	ctx := context.Background()

	s.transactions.EXPECT().Insert(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := s.service.Create(ctx, validCreateRequest())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeStore))
	s.Empty(s.observer.compensations)
	s.Empty(s.auditSink.Events())
}

func (s *ServiceSuite) TestCreate_RegistrationFailureDeletesTransaction() {
	ctx := context.Background()
	txn := &models.Transaction{ID: 7}

	gomock.InOrder(
		s.transactions.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(txn, nil),
		s.registrations.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("insert failed")),
		s.transactions.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil),
	)

	_, err := s.service.Create(ctx, validCreateRequest())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeStore))
	s.Contains(dErrors.MessageOf(err), "failed to create registration")

	s.Equal([]string{"registration_create/insert_transaction"}, s.observer.compensations)
	s.Empty(s.auditSink.ByAction(audit.ActionRegistrationCreated))
}

func (s *ServiceSuite) TestCreate_CompensationFailureStillReportsOriginalError() {
	ctx := context.Background()
	txn := &models.Transaction{ID: 7}

	gomock.InOrder(
		s.transactions.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(txn, nil),
		s.registrations.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("insert failed")),
		s.transactions.EXPECT().Delete(gomock.Any(), int64(7)).
			Return(errors.New("delete also failed")),
	)

	_, err := s.service.Create(ctx, validCreateRequest())
	s.Require().Error(err)
	s.Contains(dErrors.MessageOf(err), "failed to create registration")

	// The orphaned transaction is a counted, degraded outcome, not an error.
	s.Equal([]string{"registration_create/insert_transaction"}, s.observer.compensationFailed)
	s.Len(s.auditSink.ByAction(audit.ActionCompensationFailed), 1)
}

func (s *ServiceSuite) TestCreate_ProspectusFlagFailureDoesNotFailCreation() {
	ctx := context.Background()
	txn := &models.Transaction{ID: 7}
	reg := &models.Registration{ID: 3, ProspectusID: 42, TransactionID: 7}

	gomock.InOrder(
		s.transactions.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(txn, nil),
		s.registrations.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(reg, nil),
		s.prospects.EXPECT().SetRegistered(gomock.Any(), int64(42), true).
			Return(errors.New("prospectus unavailable")),
	)

	pair, err := s.service.Create(ctx, validCreateRequest())
	s.Require().NoError(err)
	s.Equal(int64(3), pair.Registration.ID)

	s.Equal([]string{"registration_create/set_prospectus_flag"}, s.observer.bestEffortFailures)
	s.Len(s.auditSink.ByAction(audit.ActionRegistrationCreated), 1)
	s.Len(s.auditSink.ByAction(audit.ActionProspectusFlagFailed), 1)
}
