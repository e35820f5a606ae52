package obfuscation

import "errors"

var (
	// ErrInvalidPath is returned when a path is empty or not absolute.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidSalt is returned when the vault salt is missing.
	ErrInvalidSalt = errors.New("vault salt is empty")

	// ErrWipeFailed is returned when a file could not be overwritten before
	// removal.
	ErrWipeFailed = errors.New("secure wipe failed")
)
