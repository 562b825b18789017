package audit

import "context"

// Publisher emits audit events. Implementations are fail-open: domain
// operations never fail because an audit sink is down. Emit returns an
// error only so callers can log it.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}

// Noop discards all events. Used when no sink is configured.
type Noop struct{}

func (Noop) Emit(context.Context, Event) error { return nil }
