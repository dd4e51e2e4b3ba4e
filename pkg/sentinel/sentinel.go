package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in the store
// - ErrNotOwned: entity exists but belongs to a different user
// - ErrInvalidState: entity in wrong state for the requested transition
// - ErrUnavailable: collaborator temporarily unavailable
var (
	ErrNotFound     = errors.New("not found")
	ErrNotOwned     = errors.New("not owned")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
