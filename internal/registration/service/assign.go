package service

import (
	"context"
	"errors"

	"regdesk/internal/registration/models"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/audit"
	"regdesk/pkg/platform/sentinel"
)

// Assign runs the administrative hand-off: exactly one store write setting
// assignee, the one-way admin_assigned latch, and the registered status.
// There is no paired transaction update because assignment is purely an
// internal routing action, so this path needs no saga at all.
func (s *Service) Assign(ctx context.Context, id int64, req models.AssignRequest) (*models.Registration, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	reg, err := s.registrations.Assign(ctx, id, *req.AssignedTo)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "registration not found")
		}
		return nil, storeFailure(err, "failed to assign registration")
	}

	s.emitAudit(ctx, audit.ActionRegistrationAssigned, regSubject(id), map[string]any{
		"assigned_to": *req.AssignedTo,
	})
	return reg, nil
}
