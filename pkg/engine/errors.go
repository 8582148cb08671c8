package engine

import "fmt"

// ExecutionError wraps an executor failure. The underlying diagnostic is
// preserved verbatim; whether to retry is the caller's decision.
type ExecutionError struct {
	Collection string
	Err        error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("failed to fetch collection %q: %v", e.Collection, e.Err)
}

// Unwrap exposes the executor's error for errors.Is / errors.As.
func (e *ExecutionError) Unwrap() error {
	return e.Err
}
