package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownChartType is returned when a chart type is outside the closed set.
	ErrUnknownChartType = errors.New("unknown chart type")

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrInvalidRecommendation is returned when a serialized recommendation
	// cannot be decoded or does not satisfy the recommendation contract.
	ErrInvalidRecommendation = errors.New("invalid recommendation")
)
