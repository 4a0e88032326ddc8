package geodesy

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownEllipsoid is returned by Registry.Lookup for a missing name.
	ErrUnknownEllipsoid = errors.New("geodesy: unknown ellipsoid")
	// ErrDuplicateEllipsoid is returned when an ellipsoid name is registered twice.
	ErrDuplicateEllipsoid = errors.New("geodesy: duplicate ellipsoid")
	// ErrInvalidEllipsoid reports an axis or flattening out of range.
	ErrInvalidEllipsoid = errors.New("geodesy: invalid ellipsoid")
	// ErrInvalidLatitude reports a latitude outside [-90, 90].
	ErrInvalidLatitude = errors.New("geodesy: invalid latitude")
	// ErrDomain reports a trigonometric argument outside [-1, 1] beyond
	// rounding tolerance.
	ErrDomain = errors.New("geodesy: argument out of domain")
	// ErrFailedConvergence is matched by every *ConvergenceError.
	ErrFailedConvergence = errors.New("geodesy: failed to converge")
	// ErrCoincidentOrAntipodal reports two positions (or great circles) that do
	// not define a unique plane.
	ErrCoincidentOrAntipodal = errors.New("geodesy: coincident or antipodal points")
	// ErrUndefinedMidpoint is returned for the midpoint of antipodal points.
	ErrUndefinedMidpoint = errors.New("geodesy: undefined midpoint")
	// ErrDegenerateVector is returned when a zero vector is used as a position.
	ErrDegenerateVector = errors.New("geodesy: degenerate vector")
	// ErrEmptyPath is returned by path operations given no points.
	ErrEmptyPath = errors.New("geodesy: empty path")
)

// ConvergenceError is returned when the Vincenty iteration does not settle.
type ConvergenceError struct {
	Op         string // "inverse" or "direct"
	Iterations int
	// Antipodal is set when the points are (nearly) antipodal, the known weak
	// spot of the method.
	Antipodal bool
}

func (e *ConvergenceError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %s after %d iterations", ErrFailedConvergence, e.Op, e.Iterations)
	if e.Antipodal {
		msg += " (antipodal points)"
	}
	return msg
}

func (e *ConvergenceError) Unwrap() error {
	return ErrFailedConvergence
}
