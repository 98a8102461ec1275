package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/chartadvisor/chart-advisor/internal/generation"
)

// Client-facing error messages. These are the only texts an error body ever
// carries.
const (
	MsgInvalidRequestFormat = "invalid request format"
	MsgMissingFieldsPrefix  = "missing required field(s): "
	MsgRequestTooLarge      = "request body too large"
	MsgContentBlocked       = "the request was blocked by the model's safety filters"
	MsgUpstreamFailure      = "failed to generate recommendation"
	MsgEmptyResponse        = "the model returned an empty response"
	MsgUnexpected           = "an unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr),
		errors.Is(err, generation.ErrInvalidRequest):
		return http.StatusBadRequest

	// Everything the model side produces is reported as a server failure.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpected
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return MsgRequestTooLarge
	case errors.Is(err, generation.ErrInvalidRequest):
		return MsgInvalidRequestFormat
	case errors.Is(err, generation.ErrContentBlocked):
		return MsgContentBlocked
	case errors.Is(err, generation.ErrInvalidResponse):
		return MsgEmptyResponse
	case errors.Is(err, generation.ErrUpstream):
		return MsgUpstreamFailure
	default:
		return MsgUnexpected
	}
}

// MissingFieldsMessage renders the 400 message listing the missing fields.
func MissingFieldsMessage(fields []string) string {
	return MsgMissingFieldsPrefix + strings.Join(fields, ", ")
}

// errEmptyStream marks a stream that ended without producing any text.
var errEmptyStream = fmt.Errorf("%w: stream ended without content", generation.ErrInvalidResponse)
