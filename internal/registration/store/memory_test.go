package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"regdesk/internal/registration/models"
	"regdesk/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite

	ctx           context.Context
	registrations *InMemoryRegistrations
	transactions  *InMemoryTransactions
}

func (s *MemoryStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.registrations = NewInMemoryRegistrations()
	s.transactions = NewInMemoryTransactions()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) insertRegistration(prospectusID, txnID int64) *models.Registration {
	reg, err := s.registrations.Insert(s.ctx, &models.Registration{
		ProspectusID:  prospectusID,
		TransactionID: txnID,
		Status:        models.StatusPending,
		TotalAmount:   5000,
	})
	s.Require().NoError(err)
	return reg
}

func (s *MemoryStoreSuite) TestRegistrationInsertAssignsSequentialIDs() {
	first := s.insertRegistration(42, 7)
	second := s.insertRegistration(43, 8)

	s.Equal(int64(1), first.ID)
	s.Equal(int64(2), second.ID)
	s.False(first.CreatedAt.IsZero())
}

func (s *MemoryStoreSuite) TestRegistrationUpdateAppliesOnlyProvidedFields() {
	reg := s.insertRegistration(42, 7)

	notes := "renegotiated"
	updated, err := s.registrations.Update(s.ctx, reg.ID, models.RegistrationPatch{Notes: &notes})
	s.Require().NoError(err)
	s.Equal("renegotiated", updated.Notes)
	s.Equal(5000.0, updated.TotalAmount)
	s.Equal(models.StatusPending, updated.Status)
}

func (s *MemoryStoreSuite) TestRegistrationUpdateUnknownIDIsNotFound() {
	_, err := s.registrations.Update(s.ctx, 99, models.RegistrationPatch{})
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestRegistrationApprove() {
	reg := s.insertRegistration(42, 7)
	assignee := int64(11)

	approved, err := s.registrations.Approve(s.ctx, reg.ID, &assignee)
	s.Require().NoError(err)
	s.Equal(models.StatusRegistered, approved.Status)
	s.Equal(int64(11), *approved.AssignedTo)

	// A second approval without an assignee clears the previous one.
	approved, err = s.registrations.Approve(s.ctx, reg.ID, nil)
	s.Require().NoError(err)
	s.Equal(models.StatusRegistered, approved.Status)
	s.Nil(approved.AssignedTo)
}

func (s *MemoryStoreSuite) TestRegistrationAssignLatchesAdminAssigned() {
	reg := s.insertRegistration(42, 7)

	assigned, err := s.registrations.Assign(s.ctx, reg.ID, 11)
	s.Require().NoError(err)
	s.True(assigned.AdminAssigned)
	s.Equal(models.StatusRegistered, assigned.Status)
	s.Equal(int64(11), *assigned.AssignedTo)
}

func (s *MemoryStoreSuite) TestRegistrationDelete() {
	reg := s.insertRegistration(42, 7)

	s.Require().NoError(s.registrations.Delete(s.ctx, reg.ID))
	_, err := s.registrations.FindByID(s.ctx, reg.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
	s.ErrorIs(s.registrations.Delete(s.ctx, reg.ID), sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestRegistrationFindRefs() {
	reg := s.insertRegistration(42, 7)

	refs, err := s.registrations.FindRefs(s.ctx, reg.ID)
	s.Require().NoError(err)
	s.Equal(reg.ID, refs.ID)
	s.Equal(int64(42), refs.ProspectusID)
	s.Equal(int64(7), *refs.TransactionID)
}

func (s *MemoryStoreSuite) TestRegistrationListIsNewestFirst() {
	s.insertRegistration(42, 7)
	s.insertRegistration(43, 8)
	s.insertRegistration(44, 9)

	regs, err := s.registrations.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(regs, 3)
	s.Equal(int64(3), regs[0].ID)
	s.Equal(int64(1), regs[2].ID)
}

func (s *MemoryStoreSuite) TestRegistrationCountByBankID() {
	bankID := int64(5)
	for i := 0; i < 2; i++ {
		_, err := s.registrations.Insert(s.ctx, &models.Registration{ProspectusID: 42, BankID: &bankID})
		s.Require().NoError(err)
	}
	s.insertRegistration(43, 8) // no bank

	count, err := s.registrations.CountByBankID(s.ctx, bankID)
	s.Require().NoError(err)
	s.Equal(2, count)

	count, err = s.registrations.CountByBankID(s.ctx, 99)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *MemoryStoreSuite) TestReturnedRowsAreCopies() {
	reg := s.insertRegistration(42, 7)
	reg.Notes = "mutated by caller"

	stored, err := s.registrations.FindByID(s.ctx, reg.ID)
	s.Require().NoError(err)
	s.Empty(stored.Notes)
}

func (s *MemoryStoreSuite) TestTransactionLifecycle() {
	txn, err := s.transactions.Insert(s.ctx, &models.Transaction{
		Type:        "bank_transfer",
		ExternalRef: "TXN-1001",
		Amount:      5000,
		Date:        "2026-08-01",
	})
	s.Require().NoError(err)
	s.Equal(int64(1), txn.ID)

	amount := 6000.0
	updated, err := s.transactions.Update(s.ctx, txn.ID, models.TransactionPatch{Amount: &amount})
	s.Require().NoError(err)
	s.Equal(6000.0, updated.Amount)
	s.Equal("TXN-1001", updated.ExternalRef)

	s.Require().NoError(s.transactions.Delete(s.ctx, txn.ID))
	_, err = s.transactions.FindByID(s.ctx, txn.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}
