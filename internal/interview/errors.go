package interview

import "fmt"

// ValidationError indicates missing or malformed caller input. Always a
// client-facing failure, never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// EmptyResponseError indicates the completion service returned blank text
// where content was required. Treated as a failure, never defaulted to a
// placeholder.
type EmptyResponseError struct {
	Op string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("completion service returned an empty %s response", e.Op)
}
