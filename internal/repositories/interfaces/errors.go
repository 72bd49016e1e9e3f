package interfaces

import "errors"

// Sentinel errors returned by repository implementations. Services branch on
// these instead of driver-specific error types.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)
