// Package service implements the registration saga coordinator: the one
// place in the system where cross-entity ordering, compensation, and
// partial-failure handling matter. Everything it talks to is a single-row
// store with independent commits.
package service

import (
	"context"
	"errors"
	"log/slog"

	"regdesk/internal/registration/saga"
	"regdesk/internal/registration/store"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/audit"
	"regdesk/pkg/platform/sentinel"
	"regdesk/pkg/requestcontext"
)

// Service orchestrates the five registration sagas plus the read paths.
type Service struct {
	registrations store.RegistrationStore
	transactions  store.TransactionStore
	prospects     store.ProspectusFlagStore

	prospectusReader store.ProspectusReader
	bankReader       store.BankReader

	runner   *saga.Runner
	observer saga.Observer
	logger   *slog.Logger
	audit    audit.Publisher
}

// Option configures the Service.
type Option func(*Service)

// WithAudit attaches an audit publisher. Emission is fail-open.
func WithAudit(p audit.Publisher) Option {
	return func(s *Service) { s.audit = p }
}

// WithObserver attaches a saga outcome observer (Prometheus in production).
func WithObserver(o saga.Observer) Option {
	return func(s *Service) { s.observer = o }
}

// WithReaders attaches the read-side resolvers used by GetRegistration.
func WithReaders(prospects store.ProspectusReader, banks store.BankReader) Option {
	return func(s *Service) {
		s.prospectusReader = prospects
		s.bankReader = banks
	}
}

// New constructs the coordinator. The stores are explicit dependencies with
// lifecycles owned by the process bootstrap, never by the coordinator.
func New(
	registrations store.RegistrationStore,
	transactions store.TransactionStore,
	prospects store.ProspectusFlagStore,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		registrations: registrations,
		transactions:  transactions,
		prospects:     prospects,
		logger:        logger,
		audit:         audit.Noop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.runner = saga.NewRunner(logger, s.observer)
	return s
}

// storeFailure translates a store error into a coded domain error. Store
// messages pass through to the caller unredacted.
func storeFailure(err error, message string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeNotFound, message)
	}
	return dErrors.Wrap(err, dErrors.CodeStore, message)
}

// emitAudit publishes an event carrying the request identity; failures are
// logged only.
func (s *Service) emitAudit(ctx context.Context, action audit.Action, subject string, detail map[string]any) {
	event := audit.Event{
		Action:    action,
		StaffID:   requestcontext.StaffID(ctx),
		RequestID: requestcontext.RequestID(ctx),
		Subject:   subject,
		Detail:    detail,
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed",
			"action", action,
			"error", err,
		)
	}
}
