package generation

import "errors"

// Common errors returned by Generator implementations
var (
	// ErrInvalidRequest is returned when the recommendation request is missing input
	ErrInvalidRequest = errors.New("invalid recommendation request")

	// ErrInvalidResponse is returned when the LLM response cannot be used
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrUpstream is returned when the call to the language model fails
	ErrUpstream = errors.New("language model request failed")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
