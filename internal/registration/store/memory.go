package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"regdesk/internal/registration/models"
	"regdesk/pkg/platform/sentinel"
)

// InMemoryRegistrations is the in-process twin of the Postgres registration
// store, used in development mode and tests.
type InMemoryRegistrations struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]*models.Registration
}

func NewInMemoryRegistrations() *InMemoryRegistrations {
	return &InMemoryRegistrations{nextID: 1, rows: make(map[int64]*models.Registration)}
}

func (s *InMemoryRegistrations) Insert(_ context.Context, reg *models.Registration) (*models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := *reg
	row.ID = s.nextID
	s.nextID++
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now
	s.rows[row.ID] = &row

	out := row
	return &out, nil
}

func (s *InMemoryRegistrations) Update(_ context.Context, id int64, patch models.RegistrationPatch) (*models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	applyRegistrationPatch(row, patch)
	row.UpdatedAt = time.Now()

	out := *row
	return &out, nil
}

func (s *InMemoryRegistrations) Approve(_ context.Context, id int64, assignedTo *int64) (*models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	row.ApplyApproval(assignedTo)
	row.UpdatedAt = time.Now()

	out := *row
	return &out, nil
}

func (s *InMemoryRegistrations) Assign(_ context.Context, id int64, staffID int64) (*models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	row.ApplyAssignment(staffID)
	row.UpdatedAt = time.Now()

	out := *row
	return &out, nil
}

func (s *InMemoryRegistrations) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *InMemoryRegistrations) FindByID(_ context.Context, id int64) (*models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := *row
	return &out, nil
}

func (s *InMemoryRegistrations) FindRefs(_ context.Context, id int64) (*models.Refs, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	refs := &models.Refs{ID: row.ID, ProspectusID: row.ProspectusID}
	if row.TransactionID != 0 {
		txnID := row.TransactionID
		refs.TransactionID = &txnID
	}
	return refs, nil
}

func (s *InMemoryRegistrations) List(_ context.Context) ([]*models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Registration, 0, len(s.rows))
	for _, row := range s.rows {
		copied := *row
		out = append(out, &copied)
	}
	// Newest first, matching the Postgres ordering.
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *InMemoryRegistrations) CountByBankID(_ context.Context, bankID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, row := range s.rows {
		if row.BankID != nil && *row.BankID == bankID {
			count++
		}
	}
	return count, nil
}

func applyRegistrationPatch(row *models.Registration, patch models.RegistrationPatch) {
	if patch.Services != nil {
		row.Services = *patch.Services
	}
	if patch.InitAmount != nil {
		row.InitAmount = *patch.InitAmount
	}
	if patch.AcceptAmount != nil {
		row.AcceptAmount = *patch.AcceptAmount
	}
	if patch.Discount != nil {
		row.Discount = *patch.Discount
	}
	if patch.TotalAmount != nil {
		row.TotalAmount = *patch.TotalAmount
	}
	if patch.AcceptPeriod != nil {
		row.AcceptPeriod = *patch.AcceptPeriod
	}
	if patch.PubPeriod != nil {
		row.PubPeriod = *patch.PubPeriod
	}
	if patch.BankID != nil {
		row.BankID = patch.BankID
	}
	if patch.Status != nil {
		row.Status = *patch.Status
	}
	if patch.Month != nil {
		row.Month = *patch.Month
	}
	if patch.Year != nil {
		row.Year = *patch.Year
	}
	if patch.Notes != nil {
		row.Notes = *patch.Notes
	}
}

// InMemoryTransactions is the in-process twin of the Postgres transaction
// store.
type InMemoryTransactions struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]*models.Transaction
}

func NewInMemoryTransactions() *InMemoryTransactions {
	return &InMemoryTransactions{nextID: 1, rows: make(map[int64]*models.Transaction)}
}

func (s *InMemoryTransactions) Insert(_ context.Context, txn *models.Transaction) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := *txn
	row.ID = s.nextID
	s.nextID++
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now
	s.rows[row.ID] = &row

	out := row
	return &out, nil
}

func (s *InMemoryTransactions) Update(_ context.Context, id int64, patch models.TransactionPatch) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if patch.Type != nil {
		row.Type = *patch.Type
	}
	if patch.ExternalRef != nil {
		row.ExternalRef = *patch.ExternalRef
	}
	if patch.Amount != nil {
		row.Amount = *patch.Amount
	}
	if patch.Date != nil {
		row.Date = *patch.Date
	}
	if patch.AdditionalInfo != nil {
		row.AdditionalInfo = *patch.AdditionalInfo
	}
	if patch.StaffID != nil {
		row.StaffID = patch.StaffID
	}
	row.UpdatedAt = time.Now()

	out := *row
	return &out, nil
}

func (s *InMemoryTransactions) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *InMemoryTransactions) FindByID(_ context.Context, id int64) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := *row
	return &out, nil
}

func (s *InMemoryTransactions) List(_ context.Context) ([]*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Transaction, 0, len(s.rows))
	for _, row := range s.rows {
		copied := *row
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}
