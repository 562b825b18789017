// Package store persists bank accounts.
package store

import (
	"context"

	"regdesk/internal/bank/models"
	regmodels "regdesk/internal/registration/models"
)

// Store persists bank account rows.
type Store interface {
	Insert(ctx context.Context, account *models.Account) (*models.Account, error)
	Update(ctx context.Context, id int64, patch models.Patch) (*models.Account, error)
	FindByID(ctx context.Context, id int64) (*models.Account, error)
	List(ctx context.Context) ([]*models.Account, error)
	Delete(ctx context.Context, id int64) error

	// FindSummary backs the registration read path.
	FindSummary(ctx context.Context, bankID int64) (*regmodels.BankSummary, error)
}
