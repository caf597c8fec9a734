package triangulate

import "errors"

// Sentinel errors for the triangulate package.
var (
	// ErrTooFewPoints indicates fewer than 3 coordinates were supplied;
	// a Delaunay triangulation needs at least a single triangle.
	ErrTooFewPoints = errors.New("triangulate: need at least 3 points")

	// ErrMismatchedAxes indicates xs and ys have different lengths.
	ErrMismatchedAxes = errors.New("triangulate: xs and ys length mismatch")

	// ErrTriangulationFailed wraps any error returned by the underlying
	// Delaunay routine (e.g. degenerate/collinear input it cannot
	// triangulate), or a result with fewer than one triangle.
	ErrTriangulationFailed = errors.New("triangulate: triangulation failed")
)
