package gemini

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/chartadvisor/chart-advisor/internal/generation"
)

// Error definitions for the gemini package.
var (
	// ErrEmptyPrompt is returned when template execution produced no text.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)

// wrapUpstreamError classifies an error returned by the genai stream.
// Authentication rejections keep their APIError in the chain so callers can
// tell them apart from outages.
func wrapUpstreamError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: status %d %s: %w", generation.ErrUpstream, apiErr.Code, apiErr.Status, err)
	}
	return fmt.Errorf("%w: %w", generation.ErrUpstream, err)
}

// isAuthError reports whether err carries an upstream rejection of the
// credential.
func isAuthError(err error) bool {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	case http.StatusBadRequest:
		// The Gemini API reports an invalid key as a 400 with this reason.
		for _, d := range apiErr.Details {
			if reason, ok := d["reason"].(string); ok && reason == "API_KEY_INVALID" {
				return true
			}
		}
	}
	return false
}
