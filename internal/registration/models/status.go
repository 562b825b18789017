package models

// Status is the registration lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusRegistered Status = "registered"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusRegistered
}

// CanTransitionTo reports whether the transition s → target is legal.
// Registered is terminal; no cancellation or void state is modeled and
// nothing transitions back to pending.
func (s Status) CanTransitionTo(target Status) bool {
	return s == StatusPending && target == StatusRegistered
}

// ApplyApproval moves the registration to registered and records the
// optional hand-off target. Approval on an already registered row is an
// idempotent overwrite, matching the upstream store semantics (the write is
// unconditional; there is no optimistic-concurrency check).
func (r *Registration) ApplyApproval(assignedTo *int64) {
	r.Status = StatusRegistered
	r.AssignedTo = assignedTo
}

// ApplyAssignment records an administrative hand-off: assignee set,
// admin_assigned latched true (one-way), status forced to registered in the
// same single write.
func (r *Registration) ApplyAssignment(staffID int64) {
	r.AssignedTo = &staffID
	r.AdminAssigned = true
	r.Status = StatusRegistered
}
