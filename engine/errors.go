package engine

import "errors"

// Sentinel errors for the engine package.
var (
	// ErrNotInitialized indicates Iterate was called before a
	// successful SetPoints.
	ErrNotInitialized = errors.New("engine: not initialized, call SetPoints first")

	// ErrFailed indicates a previous Iterate call hit a fatal
	// triangulator error; the engine refuses further iterations until
	// SetPoints is called again.
	ErrFailed = errors.New("engine: engine failed on a previous iteration")
)
