package client

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput is returned when either field is empty; no request is made.
	ErrMissingInput = errors.New("data description and objective are required")

	// ErrTransport is returned when the request could not be sent or the
	// response body could not be read to the end.
	ErrTransport = errors.New("recommendation service unreachable")

	// ErrInvalidResponse is returned when a successful response does not hold
	// a valid recommendation.
	ErrInvalidResponse = errors.New("invalid recommendation response")
)

// APIError is a non-2xx answer from the recommendation service. Its message
// is the service's own error text when one was provided.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(status int, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("recommendation service returned status %d", status)
	}
	return &APIError{StatusCode: status, Message: message}
}
