// Package store persists the service catalog.
package store

import (
	"context"

	"regdesk/internal/catalog/models"
)

// Store persists catalog rows.
type Store interface {
	Insert(ctx context.Context, svc *models.Service) (*models.Service, error)
	Update(ctx context.Context, id int64, patch models.Patch) (*models.Service, error)
	FindByID(ctx context.Context, id int64) (*models.Service, error)
	List(ctx context.Context) ([]*models.Service, error)
	Delete(ctx context.Context, id int64) error
}
