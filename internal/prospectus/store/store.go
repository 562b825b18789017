// Package store persists prospectus rows. The Store interface is a superset
// of the flag-writer and summary-reader views the registration coordinator
// consumes, so one implementation backs both sides.
package store

import (
	"context"

	"regdesk/internal/prospectus/models"
	regmodels "regdesk/internal/registration/models"
)

// Store persists prospectus rows.
type Store interface {
	Insert(ctx context.Context, p *models.Prospectus) (*models.Prospectus, error)
	Update(ctx context.Context, id int64, patch models.Patch) (*models.Prospectus, error)
	FindByID(ctx context.Context, id int64) (*models.Prospectus, error)
	List(ctx context.Context) ([]*models.Prospectus, error)
	Delete(ctx context.Context, id int64) error

	// SetRegistered flips the derived flag; the registration coordinator is
	// the only caller.
	SetRegistered(ctx context.Context, prospectusID int64, registered bool) error

	// FindSummary backs the registration read path.
	FindSummary(ctx context.Context, prospectusID int64) (*regmodels.ProspectusSummary, error)
}
