package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"regdesk/internal/catalog/models"
	"regdesk/pkg/platform/sentinel"
)

// InMemory is the in-process twin of the Postgres catalog store.
type InMemory struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]*models.Service
}

func NewInMemory() *InMemory {
	return &InMemory{nextID: 1, rows: make(map[int64]*models.Service)}
}

func (s *InMemory) Insert(_ context.Context, svc *models.Service) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := *svc
	row.ID = s.nextID
	s.nextID++
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now
	s.rows[row.ID] = &row

	out := row
	return &out, nil
}

func (s *InMemory) Update(_ context.Context, id int64, patch models.Patch) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if patch.ServiceName != nil {
		row.ServiceName = *patch.ServiceName
	}
	if patch.ServiceType != nil {
		row.ServiceType = *patch.ServiceType
	}
	if patch.Description != nil {
		row.Description = *patch.Description
	}
	if patch.Fee != nil {
		row.Fee = *patch.Fee
	}
	if patch.MinDuration != nil {
		row.MinDuration = *patch.MinDuration
	}
	if patch.MaxDuration != nil {
		row.MaxDuration = *patch.MaxDuration
	}
	row.UpdatedAt = time.Now()

	out := *row
	return &out, nil
}

func (s *InMemory) FindByID(_ context.Context, id int64) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := *row
	return &out, nil
}

func (s *InMemory) List(_ context.Context) ([]*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Service, 0, len(s.rows))
	for _, row := range s.rows {
		copied := *row
		out = append(out, &copied)
	}
	// Ascending by id, matching the Postgres ordering.
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
