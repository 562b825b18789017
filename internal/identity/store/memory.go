package store

import (
	"context"
	"sync"
	"time"

	"regdesk/internal/identity/models"
	"regdesk/pkg/platform/sentinel"
)

// InMemory is the in-process twin of the Postgres identity store. Roles are
// seeded at construction; only executives are mutable.
type InMemory struct {
	mu     sync.RWMutex
	nextID int64
	execs  map[string]*models.Executive
	roles  map[int64]*models.Role
}

func NewInMemory(roles ...*models.Role) *InMemory {
	s := &InMemory{
		nextID: 1,
		execs:  make(map[string]*models.Executive),
		roles:  make(map[int64]*models.Role),
	}
	for _, role := range roles {
		s.roles[role.ID] = role
	}
	return s
}

func (s *InMemory) InsertExecutive(_ context.Context, exec *models.Executive) (*models.Executive, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.execs[exec.Username]; exists {
		return nil, sentinel.ErrConflict
	}

	row := *exec
	row.ID = s.nextID
	s.nextID++
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now
	s.execs[row.Username] = &row

	out := row
	return &out, nil
}

func (s *InMemory) FindExecutiveByUsername(_ context.Context, username string) (*models.Executive, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.execs[username]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := *row
	return &out, nil
}

func (s *InMemory) FindRole(_ context.Context, id int64) (*models.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	role, ok := s.roles[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := *role
	out.Permissions = append([]models.Permission(nil), role.Permissions...)
	return &out, nil
}
