// Package mocks provides centralized mock implementations for testing.
//
// Mocks use function fields for per-test behavior and track their calls so
// tests can assert that a dependency was, or was not, reached:
//
//	gen := mocks.NewMockGeneratorWithRecommendation(domain.ChartTypeLine, "ok")
//	handler := api.NewRecommendHandler(gen, nil, logger)
//	// ... exercise handler ...
//	assert.Equal(t, 1, gen.CallCount())
package mocks
