package mocks

import (
	"context"
	"iter"
	"sync"

	"github.com/chartadvisor/chart-advisor/internal/domain"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// StreamRecommendationFn allows test cases to mock the whole sequence
	StreamRecommendationFn func(ctx context.Context, req domain.RecommendationRequest) iter.Seq2[string, error]

	// Default behavior: yield Chunks in order, then Err if set.
	Chunks []string
	Err    error

	// Call tracking for verification
	StreamRecommendationCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times StreamRecommendation was called
		Count int

		// Requests contains all requests passed to StreamRecommendation calls
		Requests []domain.RecommendationRequest
	}
}

// StreamRecommendation implements the generation.Generator interface
func (m *MockGenerator) StreamRecommendation(
	ctx context.Context,
	req domain.RecommendationRequest,
) iter.Seq2[string, error] {
	m.StreamRecommendationCalls.mu.Lock()
	m.StreamRecommendationCalls.Count++
	m.StreamRecommendationCalls.Requests = append(m.StreamRecommendationCalls.Requests, req)
	m.StreamRecommendationCalls.mu.Unlock()

	if m.StreamRecommendationFn != nil {
		return m.StreamRecommendationFn(ctx, req)
	}

	chunks, streamErr := m.Chunks, m.Err
	return func(yield func(string, error) bool) {
		for _, chunk := range chunks {
			if !yield(chunk, nil) {
				return
			}
		}
		if streamErr != nil {
			yield("", streamErr)
		}
	}
}

// CallCount returns how many times StreamRecommendation was called.
func (m *MockGenerator) CallCount() int {
	m.StreamRecommendationCalls.mu.Lock()
	defer m.StreamRecommendationCalls.mu.Unlock()
	return m.StreamRecommendationCalls.Count
}

// NewMockGeneratorWithChunks creates a MockGenerator that streams the given chunks
func NewMockGeneratorWithChunks(chunks ...string) *MockGenerator {
	return &MockGenerator{Chunks: chunks}
}

// NewMockGeneratorWithError creates a MockGenerator that fails before any text
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// NewMockGeneratorWithRecommendation creates a MockGenerator that streams a
// valid recommendation split into two chunks.
func NewMockGeneratorWithRecommendation(ct domain.ChartType, reasoning string) *MockGenerator {
	return NewMockGeneratorWithChunks(
		`{"chartType":"`+ct.String()+`",`,
		`"reasoning":"`+reasoning+`"}`,
	)
}
