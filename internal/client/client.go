package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/chartadvisor/chart-advisor/internal/domain"
	"github.com/chartadvisor/chart-advisor/internal/redact"
)

// DefaultPath is where the proxy serves recommendations.
const DefaultPath = "/api/recommend"

// readChunkSize is the buffer size used while draining a streamed body.
const readChunkSize = 4096

// Client sends recommendation requests to the proxy.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithPath overrides the endpoint path, which defaults to DefaultPath.
func WithPath(path string) Option {
	return func(cl *Client) {
		cl.endpoint = path
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) {
		cl.logger = l
	}
}

// New creates a Client for the proxy at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		endpoint:   DefaultPath,
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	ref, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	c.endpoint = base.ResolveReference(ref).String()

	return c, nil
}

// RequestRecommendation asks the proxy for a chart recommendation. Exactly
// one request is made; empty input is rejected before any call.
func (c *Client) RequestRecommendation(
	ctx context.Context,
	dataDescription, objective string,
) (*domain.Recommendation, error) {
	if dataDescription == "" || objective == "" {
		return nil, ErrMissingInput
	}

	payload, err := json.Marshal(domain.RecommendationRequest{
		DataDescription: dataDescription,
		Objective:       objective,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.DebugContext(ctx, "requesting recommendation", "endpoint", c.endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "recommendation request failed", "error", redact.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, readErrorMessage(resp.Body))
		c.logger.WarnContext(ctx, "recommendation service returned an error",
			"status_code", apiErr.StatusCode,
			"error", redact.String(apiErr.Message))
		return nil, apiErr
	}

	body, chunks, err := drain(resp.Body)
	if err != nil {
		c.logger.WarnContext(ctx, "recommendation stream interrupted",
			"error", redact.Error(err),
			"bytes_received", len(body),
			"chunks_received", chunks)
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if !utf8.Valid(body) {
		return nil, fmt.Errorf("%w: body is not valid UTF-8", ErrInvalidResponse)
	}

	rec, err := domain.ParseRecommendation(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	c.logger.DebugContext(ctx, "recommendation received",
		"chart_type", rec.ChartType.String(),
		"chunks_received", chunks)

	return rec, nil
}

// drain reads r chunk by chunk until EOF.
func drain(r io.Reader) ([]byte, int, error) {
	var body bytes.Buffer
	buf := make([]byte, readChunkSize)
	chunks := 0

	for {
		n, err := r.Read(buf)
		if n > 0 {
			body.Write(buf[:n])
			chunks++
		}
		if errors.Is(err, io.EOF) {
			return body.Bytes(), chunks, nil
		}
		if err != nil {
			return body.Bytes(), chunks, err
		}
	}
}

// readErrorMessage extracts the "error" field of a JSON error body. It
// returns "" when the body is unreadable, not JSON, or has no message.
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil {
		return ""
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Error
}
