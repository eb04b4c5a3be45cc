package orbits

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBody is returned when no body is stored under a requested handle.
	ErrUnknownBody = errors.New("no body stored under this handle")
	// ErrDuplicateBody is returned when adding a body under a handle already in use.
	ErrDuplicateBody = errors.New("a body is already stored under this handle")
	// ErrCyclicParentage is returned when a parent chain would loop onto itself.
	ErrCyclicParentage = errors.New("parent chain loops onto itself")
	// ErrRootBody is returned when an orbital query is made about a body which
	// does not orbit anything.
	ErrRootBody = errors.New("body does not orbit anything")
	// ErrHasSatellites is returned when removing a body which other bodies orbit.
	ErrHasSatellites = errors.New("body still has satellites")
	// ErrDegenerateDirection is returned when two bodies are too close to each
	// other for a direction between them to mean anything.
	ErrDegenerateDirection = errors.New("bodies too close to define a direction")
)

// unknownBody wraps ErrUnknownBody with the handle nobody answered to, so a
// caller resolving several bodies at once can tell which lookup failed.
func unknownBody(h Handle) error {
	return fmt.Errorf("body %d: %w", h, ErrUnknownBody)
}

// ElementsError details why a set of orbital elements was rejected.
type ElementsError struct {
	Field  string
	Value  float64
	Reason string
}

func (e ElementsError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

// DivergenceError signals that the Kepler solver ran out of iterations before
// reaching its tolerance. Est holds the best eccentric anomaly found so far,
// which callers may still use when a rough position beats none at all.
type DivergenceError struct {
	MeanAnomaly  float64
	Eccentricity float64
	Est          float64
	Residual     float64
	Iterations   int
}

func (e DivergenceError) Error() string {
	return fmt.Sprintf("kepler solver diverged for M=%f e=%f after %d iterations (best E=%f, residual %e)",
		e.MeanAnomaly, e.Eccentricity, e.Iterations, e.Est, e.Residual)
}
