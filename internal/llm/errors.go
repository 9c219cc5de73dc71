package llm

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// RateLimitedError indicates the completion service rejected the call due
// to rate limiting. Callers may retry later; this package never retries.
type RateLimitedError struct {
	Cause error
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("completion service rate limited: %v", e.Cause)
}

func (e *RateLimitedError) Unwrap() error {
	return e.Cause
}

// AuthFailedError indicates the completion service rejected the call's
// credentials. This points at misconfiguration, not caller input.
type AuthFailedError struct {
	Cause error
}

func (e *AuthFailedError) Error() string {
	return fmt.Sprintf("completion service authentication failed: %v", e.Cause)
}

func (e *AuthFailedError) Unwrap() error {
	return e.Cause
}

// classifyError wraps provider errors into the closed failure set so the
// orchestrator's callers can tell "try again later" from "misconfigured".
// Unrecognized errors pass through unchanged.
func classifyError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusTooManyRequests:
			return &RateLimitedError{Cause: err}
		case http.StatusUnauthorized, http.StatusForbidden:
			return &AuthFailedError{Cause: err}
		}
	}
	return fmt.Errorf("completion call failed: %w", err)
}
