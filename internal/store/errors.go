package store

import "fmt"

// DeserializationError indicates a slot held data that could not be decoded
// into the expected shape. Callers are expected to recover locally (the board
// falls back to its seed set) rather than propagate it as a crash.
type DeserializationError struct {
	Key   string
	Cause error
}

// Error implements the error interface.
func (e *DeserializationError) Error() string {
	return fmt.Sprintf("decoding slot %q: %v", e.Key, e.Cause)
}

// Unwrap returns the underlying decode error.
func (e *DeserializationError) Unwrap() error {
	return e.Cause
}
