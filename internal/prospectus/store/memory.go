package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"regdesk/internal/prospectus/models"
	regmodels "regdesk/internal/registration/models"
	"regdesk/pkg/platform/sentinel"
)

// InMemory is the in-process twin of the Postgres prospectus store.
type InMemory struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]*models.Prospectus
}

func NewInMemory() *InMemory {
	return &InMemory{nextID: 1, rows: make(map[int64]*models.Prospectus)}
}

func (s *InMemory) Insert(_ context.Context, p *models.Prospectus) (*models.Prospectus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := *p
	row.ID = s.nextID
	s.nextID++
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now
	s.rows[row.ID] = &row

	out := row
	return &out, nil
}

func (s *InMemory) Update(_ context.Context, id int64, patch models.Patch) (*models.Prospectus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	applyPatch(row, patch)
	row.UpdatedAt = time.Now()

	out := *row
	return &out, nil
}

func (s *InMemory) FindByID(_ context.Context, id int64) (*models.Prospectus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := *row
	return &out, nil
}

func (s *InMemory) List(_ context.Context) ([]*models.Prospectus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Prospectus, 0, len(s.rows))
	for _, row := range s.rows {
		copied := *row
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
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

func (s *InMemory) SetRegistered(_ context.Context, prospectusID int64, registered bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[prospectusID]
	if !ok {
		return sentinel.ErrNotFound
	}
	row.IsRegistered = registered
	row.UpdatedAt = time.Now()
	return nil
}

func (s *InMemory) FindSummary(_ context.Context, prospectusID int64) (*regmodels.ProspectusSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[prospectusID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &regmodels.ProspectusSummary{
		ID:           row.ID,
		RegID:        row.RegID,
		ClientName:   row.ClientName,
		Email:        row.Email,
		IsRegistered: row.IsRegistered,
	}, nil
}

func applyPatch(row *models.Prospectus, patch models.Patch) {
	if patch.Date != nil {
		row.Date = *patch.Date
	}
	if patch.Email != nil {
		row.Email = *patch.Email
	}
	if patch.ExecutiveID != nil {
		row.ExecutiveID = patch.ExecutiveID
	}
	if patch.RegID != nil {
		row.RegID = *patch.RegID
	}
	if patch.ClientName != nil {
		row.ClientName = *patch.ClientName
	}
	if patch.Phone != nil {
		row.Phone = *patch.Phone
	}
	if patch.Department != nil {
		row.Department = *patch.Department
	}
	if patch.State != nil {
		row.State = *patch.State
	}
	if patch.TechPerson != nil {
		row.TechPerson = *patch.TechPerson
	}
	if patch.Requirement != nil {
		row.Requirement = *patch.Requirement
	}
	if patch.ProposedServicePeriod != nil {
		row.ProposedServicePeriod = *patch.ProposedServicePeriod
	}
	if patch.Services != nil {
		row.Services = *patch.Services
	}
}
