package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) and the clearing service translates them into coded domain errors.
//
//   - ErrNotFound: item, license or bounds do not exist in the store
//   - ErrConflict: an append collided with an existing event id
//   - ErrInvalidState: stored data violates an invariant (e.g. broken tree bounds)
//   - ErrUnavailable: backend temporarily unavailable
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
