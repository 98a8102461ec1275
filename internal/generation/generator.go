package generation

import (
	"context"
	"iter"

	"github.com/chartadvisor/chart-advisor/internal/domain"
)

// Generator defines the interface for obtaining a chart recommendation from a
// language model. This interface serves as a boundary between request
// handling and external AI/LLM services, following the hexagonal
// architecture pattern.
type Generator interface {
	// StreamRecommendation asks the model for a recommendation and yields the
	// raw response text chunk by chunk as it arrives. Concatenated, the chunks
	// form one JSON document matching domain.Recommendation.
	//
	// The sequence is finite and single-use. A non-nil error ends it; errors
	// wrap one of the sentinels in errors.go.
	StreamRecommendation(ctx context.Context, req domain.RecommendationRequest) iter.Seq2[string, error]
}
