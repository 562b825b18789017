package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into coded domain errors.
//
// These represent factual states about rows, not validation failures:
// - ErrNotFound: row does not exist in the store
// - ErrConflict: write rejected by a uniqueness or reference constraint
// - ErrUnavailable: the entity store could not be reached
//
// For validation errors (bad input, missing fields), use pkg/domain-errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)
