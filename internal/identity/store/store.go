// Package store persists executives, roles, and permissions.
package store

import (
	"context"

	"regdesk/internal/identity/models"
)

// Store resolves staff identities for login.
type Store interface {
	InsertExecutive(ctx context.Context, exec *models.Executive) (*models.Executive, error)
	FindExecutiveByUsername(ctx context.Context, username string) (*models.Executive, error)
	// FindRole resolves a role with its permissions expanded.
	FindRole(ctx context.Context, id int64) (*models.Role, error)
}
