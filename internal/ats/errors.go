// Package ats validates scoring input and repairs the completion service's
// ATS score output into a stable, fully-populated result.
package ats

import "fmt"

// InputError indicates the caller-supplied resume text is unusable for
// scoring (missing, too short, or too long). Never retried.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s - %s", e.Field, e.Message)
}

// ParseError indicates the completion service returned text that is not
// valid JSON. A server-side failure, not the caller's fault.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ATS response parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("ATS response parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// InvalidScoreFormatError indicates the response JSON is missing the score
// field or carries it with the wrong type. Distinct from ParseError so the
// two failure modes stay distinguishable.
type InvalidScoreFormatError struct {
	Detail string
}

func (e *InvalidScoreFormatError) Error() string {
	return fmt.Sprintf("invalid ATS score format: %s", e.Detail)
}
