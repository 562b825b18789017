// Package audit captures key administrative actions as events. Events are
// transport-agnostic so sinks (Kafka, memory) can fan out without domain
// packages knowing where they land.
package audit

import "time"

// Event is emitted from domain logic to capture an administrative action.
type Event struct {
	ID        string         `json:"id"`
	Action    Action         `json:"action"`
	Timestamp time.Time      `json:"timestamp"`
	StaffID   string         `json:"staff_id,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Subject   string         `json:"subject,omitempty"`
	Detail    map[string]any `json:"detail,omitempty"`
}

// Action names an auditable action.
type Action string

const (
	// Registration lifecycle events.
	ActionRegistrationCreated  Action = "registration_created"
	ActionRegistrationUpdated  Action = "registration_updated"
	ActionRegistrationDeleted  Action = "registration_deleted"
	ActionRegistrationApproved Action = "registration_approved"
	ActionRegistrationAssigned Action = "registration_assigned"

	// Degraded saga outcomes. These mark accepted inconsistency windows,
	// not request failures.
	ActionCompensationFailed    Action = "compensation_failed"
	ActionProspectusFlagFailed  Action = "prospectus_flag_failed"
	ActionTransactionLeftBehind Action = "transaction_update_skipped"

	// Identity events.
	ActionLoginSucceeded Action = "login_succeeded"
	ActionLoginFailed    Action = "login_failed"
)
