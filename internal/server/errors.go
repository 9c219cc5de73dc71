package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/interview-prep/internal/ats"
	"github.com/jonathan/interview-prep/internal/followup"
	"github.com/jonathan/interview-prep/internal/interview"
	"github.com/jonathan/interview-prep/internal/llm"
)

// HTTPStatus maps domain errors onto response codes. Client mistakes are
// 4xx, upstream model failures surface as 502/503, everything else is 500.
func HTTPStatus(err error) int {
	var (
		validationErr  *interview.ValidationError
		inputErr       *ats.InputError
		budgetErr      *followup.BudgetExceededError
		rateLimitedErr *llm.RateLimitedError
		authFailedErr  *llm.AuthFailedError
		parseErr       *ats.ParseError
		scoreFormatErr *ats.InvalidScoreFormatError
		emptyRespErr   *interview.EmptyResponseError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &inputErr):
		return http.StatusBadRequest
	case errors.As(err, &budgetErr):
		return http.StatusTooManyRequests
	case errors.As(err, &rateLimitedErr):
		return http.StatusServiceUnavailable
	case errors.As(err, &authFailedErr),
		errors.As(err, &parseErr),
		errors.As(err, &scoreFormatErr),
		errors.As(err, &emptyRespErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorKind returns a stable machine-readable label for an error, used in
// the JSON error body alongside the human-readable message.
func ErrorKind(err error) string {
	var (
		validationErr  *interview.ValidationError
		inputErr       *ats.InputError
		budgetErr      *followup.BudgetExceededError
		rateLimitedErr *llm.RateLimitedError
		authFailedErr  *llm.AuthFailedError
		parseErr       *ats.ParseError
		scoreFormatErr *ats.InvalidScoreFormatError
		emptyRespErr   *interview.EmptyResponseError
		storeErr       *followup.StoreError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &inputErr):
		return "validation_error"
	case errors.As(err, &budgetErr):
		return "follow_up_limit_exceeded"
	case errors.As(err, &rateLimitedErr):
		return "rate_limited"
	case errors.As(err, &authFailedErr):
		return "upstream_auth_failed"
	case errors.As(err, &parseErr):
		return "unparseable_response"
	case errors.As(err, &scoreFormatErr):
		return "invalid_score_format"
	case errors.As(err, &emptyRespErr):
		return "empty_response"
	case errors.As(err, &storeErr):
		return "storage_error"
	default:
		return "internal_error"
	}
}
