package api

import (
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/okian/talkscore/internal/app"
	"github.com/okian/talkscore/internal/domain/model"
	"github.com/okian/talkscore/pkg/logger"
	"github.com/okian/talkscore/pkg/metrics"
	"golang.org/x/time/rate"
)

// scoreRequest mirrors the OpenAPI schema for POST /score.
type scoreRequest struct {
	TranscriptText string        `json:"transcript_text"`
	Options        model.Options `json:"options"`
}

// ScoreHandler handles scoring requests.
type ScoreHandler struct {
	deps         ScoreDependencies
	logger       logger.Logger
	maxBodyBytes int64
	limiter      *rate.Limiter // nil disables limiting
}

// NewScoreHandler creates a new score handler.
func NewScoreHandler(deps ScoreDependencies, l logger.Logger, maxBodyBytes int64, limiter *rate.Limiter) *ScoreHandler {
	return &ScoreHandler{deps: deps, logger: l, maxBodyBytes: maxBodyBytes, limiter: limiter}
}

// HandleScore handles POST /score requests. The result is saved to history
// by the service before it is returned.
func (h *ScoreHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_score"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if h.limiter != nil && !h.limiter.Allow() {
		metrics.RecordRateLimited("score")
		w.Header().Set("Retry-After", "1")
		writeError(w, http.StatusTooManyRequests, "rate_limited", NewKind(op, ErrRateLimited))
		return
	}

	var req scoreRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", WrapKind(op, ErrPayloadTooLarge, err))
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	res, err := h.deps.Score(r.Context(), req.TranscriptText, req.Options)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, res)
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_input", WrapKind(op, ErrBadRequest, err))
	default:
		h.logger.Error(r.Context(), "scoring failed", logger.String("op", op), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}
