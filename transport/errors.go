package transport

import (
	"errors"
	"fmt"
)

// Sentinel errors for the transport package.
var (
	// ErrClosed indicates a Broadcaster method was called after Close.
	ErrClosed = errors.New("transport: broadcaster is closed")

	// ErrShortFrame indicates a received message is too small to
	// contain a valid frame header.
	ErrShortFrame = errors.New("transport: message shorter than frame header")

	// ErrLengthMismatch indicates a received message's length prefix
	// does not match its actual payload length.
	ErrLengthMismatch = errors.New("transport: length prefix does not match payload size")
)

func transportErrorf(op string, err error) error {
	return fmt.Errorf("transport: %s: %w", op, err)
}
