// Package department manages the department reference list. It is small
// enough that the model, store contract, and service live together.
package department

import (
	"context"
	"errors"
	"log/slog"
	"time"

	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/sentinel"
)

// Department is a reference-list entry prospects are filed under.
type Department struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	StaffID   *int64    `json:"entity_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateRequest carries a new department.
type CreateRequest struct {
	Name    string `json:"name"`
	StaffID *int64 `json:"entity_id"`
}

func (r *CreateRequest) Validate() error {
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "department name is required")
	}
	return nil
}

// Patch carries partial department updates.
type Patch struct {
	Name    *string `json:"name"`
	StaffID *int64  `json:"entity_id"`
}

// Store persists department rows.
type Store interface {
	Insert(ctx context.Context, d *Department) (*Department, error)
	Update(ctx context.Context, id int64, patch Patch) (*Department, error)
	FindByID(ctx context.Context, id int64) (*Department, error)
	List(ctx context.Context) ([]*Department, error)
	Delete(ctx context.Context, id int64) error
}

// Service wraps the store with validation and error coding.
type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*Department, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	d, err := s.store.Insert(ctx, &Department{Name: req.Name, StaffID: req.StaffID})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStore, "failed to create department")
	}
	return d, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Department, error) {
	d, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "department not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeStore, "failed to fetch department")
	}
	return d, nil
}

func (s *Service) List(ctx context.Context) ([]*Department, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStore, "failed to list departments")
	}
	return list, nil
}

func (s *Service) Update(ctx context.Context, id int64, patch Patch) (*Department, error) {
	d, err := s.store.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "department not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeStore, "failed to update department")
	}
	return d, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "department not found")
		}
		return dErrors.Wrap(err, dErrors.CodeStore, "failed to delete department")
	}
	return nil
}
