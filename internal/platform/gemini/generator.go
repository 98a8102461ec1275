package gemini

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"net/http"
	"text/template"

	"google.golang.org/genai"

	"github.com/chartadvisor/chart-advisor/internal/config"
	"github.com/chartadvisor/chart-advisor/internal/domain"
	"github.com/chartadvisor/chart-advisor/internal/generation"
	"github.com/chartadvisor/chart-advisor/internal/guide"
	"github.com/chartadvisor/chart-advisor/internal/platform/logger"
	"github.com/chartadvisor/chart-advisor/internal/redact"
)

// contentStreamer is the subset of *genai.Models the generator depends on.
type contentStreamer interface {
	GenerateContentStream(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) iter.Seq2[*genai.GenerateContentResponse, error]
}

// Generator implements the generation.Generator interface using
// Google's Gemini API.
type Generator struct {
	logger         *slog.Logger
	promptTemplate *template.Template
	models         contentStreamer
	model          string
	temperature    float32
}

// Option customizes the underlying genai client.
type Option func(*genai.ClientConfig)

// WithHTTPClient sets the HTTP client used for upstream calls.
func WithHTTPClient(c *http.Client) Option {
	return func(cc *genai.ClientConfig) {
		cc.HTTPClient = c
	}
}

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(cc *genai.ClientConfig) {
		cc.HTTPOptions.BaseURL = baseURL
	}
}

// NewGenerator creates a new Generator with the provided dependencies.
//
// Parameters:
//   - ctx: Context for client initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name, and other settings
//
// Returns:
//   - A properly initialized Generator or an error wrapping
//     generation.ErrInvalidConfig if initialization fails
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig, opts ...Option) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	promptTemplate, err := loadPromptTemplate(cfg.PromptTemplatePath)
	if err != nil {
		return nil, err
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(clientConfig)
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %s",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	logger.InfoContext(ctx, "Gemini generator initialized",
		"model", cfg.ModelName,
		"temperature", cfg.Temperature,
		"guide_language", guide.Language,
		"custom_template", cfg.PromptTemplatePath != "")

	return newGenerator(logger, promptTemplate, client.Models, cfg), nil
}

func newGenerator(
	logger *slog.Logger,
	tmpl *template.Template,
	models contentStreamer,
	cfg config.LLMConfig,
) *Generator {
	return &Generator{
		logger:         logger,
		promptTemplate: tmpl,
		models:         models,
		model:          cfg.ModelName,
		temperature:    cfg.Temperature,
	}
}

// contentConfig builds the per-call generation settings.
func (g *Generator) contentConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(g.temperature),
		ResponseMIMEType: responseMIMEType,
		ResponseSchema:   recommendationSchema(),
	}
}

// StreamRecommendation implements generation.Generator.
//
// Text is yielded as soon as each upstream chunk arrives. No retries are
// attempted; the first error ends the sequence.
func (g *Generator) StreamRecommendation(
	ctx context.Context,
	req domain.RecommendationRequest,
) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		log := logger.FromContextOrDefault(ctx, g.logger)

		prompt, err := g.createPrompt(ctx, req)
		if err != nil {
			yield("", err)
			return
		}

		log.InfoContext(ctx, "Making Gemini API call",
			"model", g.model,
			"prompt_length", len(prompt))

		chunks := 0
		for resp, err := range g.models.GenerateContentStream(ctx, g.model, genai.Text(prompt), g.contentConfig()) {
			if err != nil {
				log.ErrorContext(ctx, "Gemini API stream failed",
					"error", redact.Error(err),
					"credential_rejected", isAuthError(err),
					"chunks_received", chunks)
				yield("", wrapUpstreamError(err))
				return
			}

			if err := checkBlocked(resp); err != nil {
				log.WarnContext(ctx, "Gemini API blocked the request", "error", err)
				yield("", err)
				return
			}

			text := resp.Text()
			if text == "" {
				continue
			}

			chunks++
			if !yield(text, nil) {
				log.DebugContext(ctx, "Consumer stopped reading Gemini stream",
					"chunks_received", chunks)
				return
			}
		}

		log.InfoContext(ctx, "Gemini API stream completed", "chunks_received", chunks)
	}
}

// checkBlocked reports safety-filter blocks on either the prompt or the
// first candidate.
func checkBlocked(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return fmt.Errorf("%w: prompt blocked (%s)",
			generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return fmt.Errorf("%w: candidate stopped for safety", generation.ErrContentBlocked)
	}

	return nil
}
