package region

import "errors"

// Sentinel errors for the region package.
var (
	// ErrUnknownRegion indicates ByName was called with an unregistered name.
	ErrUnknownRegion = errors.New("region: unknown region name")
)
