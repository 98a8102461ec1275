package api

import (
	"errors"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/chartadvisor/chart-advisor/internal/api/shared"
	"github.com/chartadvisor/chart-advisor/internal/domain"
	"github.com/chartadvisor/chart-advisor/internal/generation"
	"github.com/chartadvisor/chart-advisor/internal/platform/logger"
	"github.com/chartadvisor/chart-advisor/internal/platform/metrics"
	"github.com/chartadvisor/chart-advisor/internal/redact"
)

// RecommendationRecorder receives per-request recommendation measurements.
type RecommendationRecorder interface {
	RecordOutcome(outcome string)
	RecordChartType(ct domain.ChartType)
	ObserveFirstChunk(d time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) RecordOutcome(string)             {}
func (noopRecorder) RecordChartType(domain.ChartType) {}
func (noopRecorder) ObserveFirstChunk(time.Duration)  {}

// RecommendHandler relays chart recommendations from a generation.Generator
// to HTTP clients.
type RecommendHandler struct {
	generator generation.Generator
	recorder  RecommendationRecorder
	logger    *slog.Logger
}

// NewRecommendHandler creates a new RecommendHandler. A nil recorder disables
// measurements; a nil logger falls back to slog.Default().
func NewRecommendHandler(
	generator generation.Generator,
	recorder RecommendationRecorder,
	logger *slog.Logger,
) *RecommendHandler {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RecommendHandler{
		generator: generator,
		recorder:  recorder,
		logger:    logger,
	}
}

// Recommend handles POST /api/recommend requests.
//
// Headers are committed only once the first chunk has arrived, so failures
// before that point still get a JSON error. After that the chunks are relayed
// unchanged and a later upstream failure aborts the connection.
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		shared.RespondWithMethodNotAllowed(w, r, http.MethodPost)
		return
	}

	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req domain.RecommendationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.recorder.RecordOutcome(metrics.OutcomeInvalidRequest)
		msg := MsgInvalidRequestFormat
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			msg = MsgRequestTooLarge
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msg, err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		h.recorder.RecordOutcome(metrics.OutcomeInvalidRequest)
		fields := shared.FailedFields(err)
		if len(fields) == 0 {
			fields = req.MissingFields()
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MissingFieldsMessage(fields), err)
		return
	}

	start := time.Now()
	next, stop := iter.Pull2(h.generator.StreamRecommendation(r.Context(), req))
	defer stop()

	first, err, ok := next()
	if !ok {
		err = errEmptyStream
	}
	if err != nil {
		h.recordFailure(err)
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	h.recorder.ObserveFirstChunk(time.Since(start))

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	relay := newChunkRelay(w)
	if err := relay.write(first); err != nil {
		h.clientGone(r, log, err)
		return
	}

	for {
		chunk, err, ok := next()
		if !ok {
			break
		}
		if err != nil {
			h.recorder.RecordOutcome(metrics.OutcomeAborted)
			log.ErrorContext(r.Context(), "upstream failed mid-stream, aborting response",
				"error", redact.Error(err),
				"chunks_sent", relay.chunks,
				"bytes_sent", relay.body.Len())
			panic(http.ErrAbortHandler)
		}
		if err := relay.write(chunk); err != nil {
			h.clientGone(r, log, err)
			return
		}
	}

	h.inspect(r, log, relay)
}

// recordFailure classifies an error that happened before any bytes were sent.
func (h *RecommendHandler) recordFailure(err error) {
	if errors.Is(err, generation.ErrContentBlocked) {
		h.recorder.RecordOutcome(metrics.OutcomeBlocked)
		return
	}
	h.recorder.RecordOutcome(metrics.OutcomeUpstreamError)
}

func (h *RecommendHandler) clientGone(r *http.Request, log *slog.Logger, err error) {
	h.recorder.RecordOutcome(metrics.OutcomeAborted)
	log.WarnContext(r.Context(), "client write failed, abandoning stream",
		"error", redact.Error(err))
}

// inspect checks the relayed document against the output contract. The bytes
// are already on the wire, so a violation is only logged and counted.
func (h *RecommendHandler) inspect(r *http.Request, log *slog.Logger, relay *chunkRelay) {
	rec, err := domain.ParseRecommendation([]byte(relay.body.String()))
	if err != nil {
		h.recorder.RecordOutcome(metrics.OutcomeContractViolation)
		log.WarnContext(r.Context(), "model response violates the recommendation contract",
			"error", redact.Error(err),
			"chunks_sent", relay.chunks,
			"bytes_sent", relay.body.Len())
		return
	}

	h.recorder.RecordChartType(rec.ChartType)
	h.recorder.RecordOutcome(metrics.OutcomeSuccess)
	log.InfoContext(r.Context(), "recommendation relayed",
		"chart_type", rec.ChartType.String(),
		"chunks_sent", relay.chunks,
		"bytes_sent", relay.body.Len())
}

// chunkRelay writes and flushes each chunk while keeping a copy of
// everything sent.
type chunkRelay struct {
	w      http.ResponseWriter
	rc     *http.ResponseController
	body   strings.Builder
	chunks int
}

func newChunkRelay(w http.ResponseWriter) *chunkRelay {
	return &chunkRelay{w: w, rc: http.NewResponseController(w)}
}

func (c *chunkRelay) write(chunk string) error {
	if _, err := io.WriteString(c.w, chunk); err != nil {
		return err
	}
	c.body.WriteString(chunk)
	c.chunks++

	if err := c.rc.Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
		return err
	}
	return nil
}
