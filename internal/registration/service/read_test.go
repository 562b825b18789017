package service

import (
	"context"
	"errors"
	"log/slog"

	"go.uber.org/mock/gomock"

	"regdesk/internal/registration/models"
	"regdesk/internal/registration/store/mocks"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/sentinel"
)

// withReadersService rebuilds the service with read-side resolvers wired.
func (s *ServiceSuite) withReadersService() (*Service, *mocks.MockProspectusReader, *mocks.MockBankReader) {
	prospects := mocks.NewMockProspectusReader(s.ctrl)
	banks := mocks.NewMockBankReader(s.ctrl)
	svc := New(
		s.registrations,
		s.transactions,
		s.prospects,
		slog.Default(),
		WithReaders(prospects, banks),
	)
	return svc, prospects, banks
}

func (s *ServiceSuite) TestGet_EnrichesLinkedRows() {
	ctx := context.Background()
	svc, prospects, banks := s.withReadersService()

	reg := &models.Registration{ID: 3, ProspectusID: 42, BankID: ptrInt64(5), TransactionID: 7}
	s.registrations.EXPECT().FindByID(gomock.Any(), int64(3)).Return(reg, nil)
	s.transactions.EXPECT().FindByID(gomock.Any(), int64(7)).
		Return(&models.Transaction{ID: 7, Amount: 5000}, nil)
	prospects.EXPECT().FindSummary(gomock.Any(), int64(42)).
		Return(&models.ProspectusSummary{ID: 42, ClientName: "Acme Ltd", IsRegistered: true}, nil)
	banks.EXPECT().FindSummary(gomock.Any(), int64(5)).
		Return(&models.BankSummary{ID: 5, Bank: "First National"}, nil)

	detail, err := svc.Get(ctx, 3)
	s.Require().NoError(err)
	s.Equal(int64(7), detail.Transaction.ID)
	s.Equal("Acme Ltd", detail.Prospectus.ClientName)
	s.Equal("First National", detail.BankAccount.Bank)
}

func (s *ServiceSuite) TestGet_ToleratesMissingLinkedRows() {
	ctx := context.Background()
	svc, prospects, _ := s.withReadersService()

	// A registration pointing at a deleted transaction is a documented
	// inconsistency window; the read path must still render it.
	reg := &models.Registration{ID: 3, ProspectusID: 42, TransactionID: 7}
	s.registrations.EXPECT().FindByID(gomock.Any(), int64(3)).Return(reg, nil)
	s.transactions.EXPECT().FindByID(gomock.Any(), int64(7)).
		Return(nil, sentinel.ErrNotFound)
	prospects.EXPECT().FindSummary(gomock.Any(), int64(42)).
		Return(nil, sentinel.ErrNotFound)

	detail, err := svc.Get(ctx, 3)
	s.Require().NoError(err)
	s.Nil(detail.Transaction)
	s.Nil(detail.Prospectus)
	s.Nil(detail.BankAccount)
}

func (s *ServiceSuite) TestGet_UnknownRegistrationIsNotFound() {
	ctx := context.Background()
	s.registrations.EXPECT().FindByID(gomock.Any(), int64(99)).
		Return(nil, sentinel.ErrNotFound)

	_, err := s.service.Get(ctx, 99)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestGet_WithoutReadersSkipsEnrichment() {
	ctx := context.Background()
	reg := &models.Registration{ID: 3, ProspectusID: 42, TransactionID: 7}

	s.registrations.EXPECT().FindByID(gomock.Any(), int64(3)).Return(reg, nil)
	s.transactions.EXPECT().FindByID(gomock.Any(), int64(7)).
		Return(&models.Transaction{ID: 7}, nil)

	detail, err := s.service.Get(ctx, 3)
	s.Require().NoError(err)
	s.NotNil(detail.Transaction)
	s.Nil(detail.Prospectus)
}

func (s *ServiceSuite) TestList_PropagatesStoreFailure() {
	ctx := context.Background()
	s.registrations.EXPECT().List(gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := s.service.List(ctx)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeStore))
}

func (s *ServiceSuite) TestCreateTransaction_ValidatesIntake() {
	ctx := context.Background()

	_, err := s.service.CreateTransaction(ctx, models.NewTransactionRequest{})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	req := models.NewTransactionRequest{
		TransactionType: "bank_transfer",
		TransactionRef:  "TXN-1002",
		TransactionDate: "2026-08-02",
	}
	s.transactions.EXPECT().Insert(gomock.Any(), gomock.Any()).
		Return(&models.Transaction{ID: 8, Amount: 0}, nil)

	txn, err := s.service.CreateTransaction(ctx, req)
	s.Require().NoError(err)
	s.Equal(0.0, txn.Amount)
}
