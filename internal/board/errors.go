package board

import "fmt"

// ValidationError reports a rejected task mutation. It is recoverable:
// the collection is left unchanged and the message is surfaced to the user.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation that referenced a task id no longer
// in the collection.
type NotFoundError struct {
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %s not found", e.ID)
}
