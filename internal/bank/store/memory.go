package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"regdesk/internal/bank/models"
	regmodels "regdesk/internal/registration/models"
	"regdesk/pkg/platform/sentinel"
)

// InMemory is the in-process twin of the Postgres bank account store.
type InMemory struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]*models.Account
}

func NewInMemory() *InMemory {
	return &InMemory{nextID: 1, rows: make(map[int64]*models.Account)}
}

func (s *InMemory) Insert(_ context.Context, account *models.Account) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := *account
	row.ID = s.nextID
	s.nextID++
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now
	s.rows[row.ID] = &row

	out := row
	return &out, nil
}

func (s *InMemory) Update(_ context.Context, id int64, patch models.Patch) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if patch.AccountName != nil {
		row.AccountName = *patch.AccountName
	}
	if patch.AccountHolderName != nil {
		row.AccountHolderName = *patch.AccountHolderName
	}
	if patch.AccountNumber != nil {
		row.AccountNumber = *patch.AccountNumber
	}
	if patch.IFSCCode != nil {
		row.IFSCCode = *patch.IFSCCode
	}
	if patch.AccountType != nil {
		row.AccountType = *patch.AccountType
	}
	if patch.Bank != nil {
		row.Bank = *patch.Bank
	}
	if patch.UPIID != nil {
		row.UPIID = *patch.UPIID
	}
	if patch.Branch != nil {
		row.Branch = *patch.Branch
	}
	row.UpdatedAt = time.Now()

	out := *row
	return &out, nil
}

func (s *InMemory) FindByID(_ context.Context, id int64) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := *row
	return &out, nil
}

func (s *InMemory) List(_ context.Context) ([]*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Account, 0, len(s.rows))
	for _, row := range s.rows {
		copied := *row
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemory) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *InMemory) FindSummary(_ context.Context, bankID int64) (*regmodels.BankSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[bankID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &regmodels.BankSummary{
		ID:            row.ID,
		Bank:          row.Bank,
		AccountNumber: row.AccountNumber,
	}, nil
}
