package mocks

import (
	"context"
	"sync"

	"github.com/chartadvisor/chart-advisor/internal/domain"
)

// MockRecommender implements session.Recommender for testing
type MockRecommender struct {
	RequestRecommendationFn func(ctx context.Context, dataDescription, objective string) (*domain.Recommendation, error)

	mu    sync.Mutex
	calls int
}

// RequestRecommendation implements the session.Recommender interface
func (m *MockRecommender) RequestRecommendation(
	ctx context.Context,
	dataDescription, objective string,
) (*domain.Recommendation, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	return m.RequestRecommendationFn(ctx, dataDescription, objective)
}

// CallCount returns how many times RequestRecommendation was called.
func (m *MockRecommender) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
