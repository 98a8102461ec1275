package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// RecommendationRequest is what a user submits: a free-text description of
// their data and the message they want the chart to convey.
type RecommendationRequest struct {
	DataDescription string `json:"dataDescription" validate:"required"`
	Objective       string `json:"objective"       validate:"required"`
}

// MissingFields returns the JSON names of the required fields that are empty,
// in declaration order.
func (r RecommendationRequest) MissingFields() []string {
	var missing []string
	if r.DataDescription == "" {
		missing = append(missing, "dataDescription")
	}
	if r.Objective == "" {
		missing = append(missing, "objective")
	}
	return missing
}

// Recommendation is the chart type suggested for one request, with a short
// explanation.
type Recommendation struct {
	ChartType ChartType `json:"chartType"`
	Reasoning string    `json:"reasoning"`
}

// Validate checks that the recommendation satisfies the output contract.
func (r Recommendation) Validate() error {
	if !r.ChartType.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrValidation, ErrUnknownChartType, string(r.ChartType))
	}
	if r.Reasoning == "" {
		return fmt.Errorf("%w: reasoning %w", ErrValidation, ErrEmptyContent)
	}
	return nil
}

// ParseRecommendation decodes exactly one JSON document into a validated
// Recommendation. Out-of-contract values are rejected, never coerced.
func ParseRecommendation(data []byte) (*Recommendation, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var rec Recommendation
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecommendation, err)
	}

	// Anything after the first document means the payload was not a single
	// JSON object.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON document", ErrInvalidRecommendation)
	}

	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecommendation, err)
	}

	return &rec, nil
}
