package points

import (
	"errors"
	"fmt"
)

// Sentinel errors for the points package.
var (
	// ErrTooFewPoints indicates N < 3 points were supplied; a
	// triangulation needs at least three points to be well defined.
	ErrTooFewPoints = errors.New("points: need at least 3 points")

	// ErrNilBuffer indicates a Buffer with a nil Data slice.
	ErrNilBuffer = errors.New("points: buffer data is nil")

	// ErrBadStride indicates a Buffer whose Stride is <= 0, or whose
	// XCol/YCol falls outside [0, Stride).
	ErrBadStride = errors.New("points: column index exceeds stride")

	// ErrRaggedBuffer indicates a Buffer whose Data length is not an
	// exact multiple of its Stride.
	ErrRaggedBuffer = errors.New("points: buffer length not a multiple of stride")

	// ErrIndexOutOfRange indicates a point index outside [0, N).
	ErrIndexOutOfRange = errors.New("points: index out of range")
)

// pointsErrorf wraps a sentinel with call-site context, following the
// matrixErrorf/builderErrorf convention used throughout the teacher
// codebase: the sentinel stays matchable via errors.Is while the
// message carries the offending operation.
func pointsErrorf(op string, err error) error {
	return fmt.Errorf("points: %s: %w", op, err)
}
