// Package store defines the entity-store contracts the saga coordinator
// writes through. Every method is a single independent commit against the
// backing store; the coordinator never spans steps with a transaction, even
// where the backing store could. That constraint is the reason the saga and
// its compensations exist.
package store

import (
	"context"

	"regdesk/internal/registration/models"
)

//go:generate mockgen -source=store.go -destination=mocks/mocks.go -package=mocks

// RegistrationStore persists registration rows.
type RegistrationStore interface {
	Insert(ctx context.Context, reg *models.Registration) (*models.Registration, error)
	Update(ctx context.Context, id int64, patch models.RegistrationPatch) (*models.Registration, error)
	// Approve writes the terminal status and the hand-off target in one
	// call. A nil assignedTo clears the assignment, so this is not a patch.
	Approve(ctx context.Context, id int64, assignedTo *int64) (*models.Registration, error)
	// Assign writes assignee, admin_assigned, and status in one call, the
	// only store write of the assignment workflow.
	Assign(ctx context.Context, id int64, staffID int64) (*models.Registration, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*models.Registration, error)
	// FindRefs fetches only the linked row ids, the projection the update
	// and deletion sagas need before ordering their writes.
	FindRefs(ctx context.Context, id int64) (*models.Refs, error)
	List(ctx context.Context) ([]*models.Registration, error)
	// CountByBankID backs the referential-integrity guard on bank account
	// deletion.
	CountByBankID(ctx context.Context, bankID int64) (int, error)
}

// TransactionStore persists payment transaction rows.
type TransactionStore interface {
	Insert(ctx context.Context, txn *models.Transaction) (*models.Transaction, error)
	Update(ctx context.Context, id int64, patch models.TransactionPatch) (*models.Transaction, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*models.Transaction, error)
	List(ctx context.Context) ([]*models.Transaction, error)
}

// ProspectusFlagStore is the coordinator's only view of the prospectus: the
// derived registration flag it keeps synchronized best-effort.
type ProspectusFlagStore interface {
	SetRegistered(ctx context.Context, prospectusID int64, registered bool) error
}

// ProspectusReader resolves prospectus summaries for the read path.
type ProspectusReader interface {
	FindSummary(ctx context.Context, prospectusID int64) (*models.ProspectusSummary, error)
}

// BankReader resolves bank account summaries for the read path.
type BankReader interface {
	FindSummary(ctx context.Context, bankID int64) (*models.BankSummary, error)
}
