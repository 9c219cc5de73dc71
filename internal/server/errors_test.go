package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/interview-prep/internal/ats"
	"github.com/jonathan/interview-prep/internal/followup"
	"github.com/jonathan/interview-prep/internal/interview"
	"github.com/jonathan/interview-prep/internal/llm"
)

func TestHTTPStatusAndErrorKind(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{
			name:   "validation error",
			err:    &interview.ValidationError{Field: "jobRole", Message: "required"},
			status: http.StatusBadRequest,
			kind:   "validation_error",
		},
		{
			name:   "ats input error",
			err:    &ats.InputError{Field: "resumeText", Message: "too short"},
			status: http.StatusBadRequest,
			kind:   "validation_error",
		},
		{
			name:   "budget exceeded",
			err:    &followup.BudgetExceededError{},
			status: http.StatusTooManyRequests,
			kind:   "follow_up_limit_exceeded",
		},
		{
			name:   "rate limited",
			err:    &llm.RateLimitedError{},
			status: http.StatusServiceUnavailable,
			kind:   "rate_limited",
		},
		{
			name:   "upstream auth failed",
			err:    &llm.AuthFailedError{},
			status: http.StatusBadGateway,
			kind:   "upstream_auth_failed",
		},
		{
			name:   "unparseable response",
			err:    &ats.ParseError{Message: "not JSON"},
			status: http.StatusBadGateway,
			kind:   "unparseable_response",
		},
		{
			name:   "invalid score format",
			err:    &ats.InvalidScoreFormatError{Detail: "atsScore: string"},
			status: http.StatusBadGateway,
			kind:   "invalid_score_format",
		},
		{
			name:   "empty response",
			err:    &interview.EmptyResponseError{Op: "follow-up"},
			status: http.StatusBadGateway,
			kind:   "empty_response",
		},
		{
			name:   "store error",
			err:    &followup.StoreError{Op: "record", Cause: errors.New("connection reset")},
			status: http.StatusInternalServerError,
			kind:   "storage_error",
		},
		{
			name:   "unknown error",
			err:    errors.New("something else"),
			status: http.StatusInternalServerError,
			kind:   "internal_error",
		},
		{
			name:   "wrapped domain error",
			err:    fmt.Errorf("outer: %w", &followup.BudgetExceededError{}),
			status: http.StatusTooManyRequests,
			kind:   "follow_up_limit_exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
			assert.Equal(t, tt.kind, ErrorKind(tt.err))
		})
	}
}
