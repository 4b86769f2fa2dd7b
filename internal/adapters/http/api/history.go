package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	service "github.com/okian/talkscore/internal/app"
	"github.com/okian/talkscore/pkg/logger"
)

// HistoryHandler handles history listing and clearing.
type HistoryHandler struct {
	deps         HistoryDependencies
	logger       logger.Logger
	defaultLimit int
	maxLimit     int
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(deps HistoryDependencies, l logger.Logger, defaultLimit, maxLimit int) *HistoryHandler {
	return &HistoryHandler{deps: deps, logger: l, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// HandleHistory handles GET /history?limit=N and DELETE /history requests.
func (h *HistoryHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodDelete:
		h.clear(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *HistoryHandler) list(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_history"
	n := h.defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		n, err = strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
	}
	if n > h.maxLimit {
		writeError(w, http.StatusBadRequest, "limit_exceeded",
			WrapKind(op, ErrBadRequest, fmt.Errorf("limit must not exceed %d", h.maxLimit)))
		return
	}

	entries, err := h.deps.History(r.Context(), n)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		h.logger.Error(r.Context(), "list history failed", logger.String("op", op), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *HistoryHandler) clear(w http.ResponseWriter, r *http.Request) {
	const op = "api.delete_history"
	if err := h.deps.ClearHistory(r.Context()); err != nil {
		h.logger.Error(r.Context(), "clear history failed", logger.String("op", op), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	writeJSON(w, http.StatusOK, ackResponse{Status: "cleared"})
}

// DownloadHandler serves the full history as a JSON attachment.
type DownloadHandler struct {
	deps   HistoryDependencies
	logger logger.Logger
	now    func() time.Time
}

// NewDownloadHandler creates a new download handler.
func NewDownloadHandler(deps HistoryDependencies, l logger.Logger, now func() time.Time) *DownloadHandler {
	return &DownloadHandler{deps: deps, logger: l, now: now}
}

// HandleDownload handles GET /history/download requests.
func (h *DownloadHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	const op = "api.download_history"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	entries, err := h.deps.History(r.Context(), 0)
	if err != nil {
		h.logger.Error(r.Context(), "download history failed", logger.String("op", op), logger.Error(Wrap(op, err)))
		writeError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, DownloadFilename(h.now())))
	writeJSONIndent(w, http.StatusOK, entries)
}

// DownloadFilename returns the suggested file name for a history export.
func DownloadFilename(t time.Time) string {
	return "transcript-history-" + t.UTC().Format(time.DateOnly) + ".json"
}
