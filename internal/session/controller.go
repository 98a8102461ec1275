package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/chartadvisor/chart-advisor/internal/domain"
	"github.com/chartadvisor/chart-advisor/internal/redact"
)

var (
	// ErrMissingInput is returned when either form field is empty.
	ErrMissingInput = errors.New("please fill in both the data description and the objective")

	// ErrCredentialRequired is returned when no credential has been entered.
	ErrCredentialRequired = errors.New("an API credential is required")

	// ErrRequestInFlight is returned when a submission is already running.
	ErrRequestInFlight = errors.New("a recommendation request is already in progress")

	// ErrEmptyCredential is returned when an empty credential is submitted.
	ErrEmptyCredential = errors.New("credential cannot be empty")

	// ErrRecommendationFailed wraps any failure of the recommender.
	ErrRecommendationFailed = errors.New("recommendation failed")
)

// Recommender obtains a recommendation for the two form fields.
// *client.Client satisfies it.
type Recommender interface {
	RequestRecommendation(ctx context.Context, dataDescription, objective string) (*domain.Recommendation, error)
}

// State is a snapshot of the controller.
type State struct {
	InFlight       bool
	HasCredential  bool
	Recommendation *domain.Recommendation
	Err            error
}

// Controller drives one recommendation form.
type Controller struct {
	slot        *CredentialSlot
	recommender Recommender
	logger      *slog.Logger

	mu             sync.Mutex
	inFlight       bool
	recommendation *domain.Recommendation
	lastErr        error
}

// NewController creates a Controller over the given slot and recommender.
func NewController(slot *CredentialSlot, recommender Recommender, logger *slog.Logger) *Controller {
	if slot == nil {
		slot = NewCredentialSlot("")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		slot:        slot,
		recommender: recommender,
		logger:      logger,
	}
}

// SubmitCredential stores key in the credential slot. The value lives only
// in the slot and is never logged.
func (c *Controller) SubmitCredential(key string) error {
	if key == "" {
		return ErrEmptyCredential
	}
	c.slot.Set(key)
	c.logger.Debug("credential stored", "slot", c.slot.Name())
	return nil
}

// Submit validates the fields, checks the credential and asks the
// recommender once. Validation failures are recorded in State and keep the
// credential. A failed request clears the credential so it must be entered
// again.
func (c *Controller) Submit(ctx context.Context, dataDescription, objective string) (*domain.Recommendation, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil, ErrRequestInFlight
	}
	if dataDescription == "" || objective == "" {
		c.lastErr = ErrMissingInput
		c.mu.Unlock()
		return nil, ErrMissingInput
	}
	if _, ok := c.slot.Get(); !ok {
		c.lastErr = ErrCredentialRequired
		c.mu.Unlock()
		return nil, ErrCredentialRequired
	}
	c.inFlight = true
	c.recommendation = nil
	c.lastErr = nil
	c.mu.Unlock()

	rec, err := c.recommender.RequestRecommendation(ctx, dataDescription, objective)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false

	if err != nil {
		c.slot.Clear()
		c.lastErr = fmt.Errorf("%w: %w", ErrRecommendationFailed, err)
		c.logger.WarnContext(ctx, "recommendation failed, credential cleared",
			"slot", c.slot.Name(),
			"error", redact.Error(err))
		return nil, c.lastErr
	}

	c.recommendation = rec
	c.logger.InfoContext(ctx, "recommendation received", "chart_type", rec.ChartType.String())
	return rec, nil
}

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, hasCredential := c.slot.Get()
	return State{
		InFlight:       c.inFlight,
		HasCredential:  hasCredential,
		Recommendation: c.recommendation,
		Err:            c.lastErr,
	}
}
