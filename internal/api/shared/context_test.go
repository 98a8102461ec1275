package shared

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx), "Expected empty trace ID in original context")

	ctxWithTrace := SetTraceID(ctx)

	traceID := GetTraceID(ctxWithTrace)
	assert.Len(t, traceID, TraceIDLength)

	// Original context should remain unchanged
	assert.Empty(t, GetTraceID(ctx))
}

func TestGetTraceIDWithInvalidContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, 123) // Not a string

	assert.Empty(t, GetTraceID(ctx), "Expected empty trace ID when context has invalid type")
}

func TestGenerateTraceID(t *testing.T) {
	traceID := generateTraceID()
	assert.Len(t, traceID, TraceIDLength)

	_, err := hex.DecodeString(traceID)
	assert.NoError(t, err, "Expected valid hex string")

	// Probabilistic uniqueness check
	const iterations = 1000
	seen := make(map[string]bool, iterations)
	for i := 0; i < iterations; i++ {
		id := generateTraceID()
		assert.False(t, seen[id], "Generated duplicate trace ID: %s", id)
		seen[id] = true
	}
}
