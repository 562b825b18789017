package department

import (
	"context"
	"sort"
	"sync"
	"time"

	"regdesk/pkg/platform/sentinel"
)

// InMemory is the in-process twin of the Postgres department store.
type InMemory struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]*Department
}

func NewInMemory() *InMemory {
	return &InMemory{nextID: 1, rows: make(map[int64]*Department)}
}

func (s *InMemory) Insert(_ context.Context, d *Department) (*Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := *d
	row.ID = s.nextID
	s.nextID++
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now
	s.rows[row.ID] = &row

	out := row
	return &out, nil
}

func (s *InMemory) Update(_ context.Context, id int64, patch Patch) (*Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if patch.Name != nil {
		row.Name = *patch.Name
	}
	if patch.StaffID != nil {
		row.StaffID = patch.StaffID
	}
	row.UpdatedAt = time.Now()

	out := *row
	return &out, nil
}

func (s *InMemory) FindByID(_ context.Context, id int64) (*Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := *row
	return &out, nil
}

func (s *InMemory) List(_ context.Context) ([]*Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Department, 0, len(s.rows))
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
