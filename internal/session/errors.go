package session

import "errors"

// Domain errors for simulation control.
var (
	// ErrInvalidConfig indicates a configuration rejected at the boundary
	// (non-positive dt, bound below one point, bad parameters).
	ErrInvalidConfig = errors.New("session: invalid configuration")

	// ErrDiverged indicates the integrator produced a non-finite state.
	// The offending state is never appended to the trajectory; the
	// session auto-pauses and must be Reset before stepping resumes.
	ErrDiverged = errors.New("session: state diverged (NaN or Inf)")
)
