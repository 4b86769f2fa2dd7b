// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/okian/talkscore/internal/domain/model"
	"github.com/okian/talkscore/pkg/logger"
	"golang.org/x/time/rate"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ScoreDependencies
	HistoryDependencies
	StatsProvider
}

// ScoreDependencies scores and records a transcript.
type ScoreDependencies interface {
	Score(ctx context.Context, transcript string, opts model.Options) (model.ScoreResult, error)
}

// HistoryDependencies exposes the score history.
type HistoryDependencies interface {
	History(ctx context.Context, limit int) ([]model.ScoreResult, error)
	ClearHistory(ctx context.Context) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	scoreHandler    *ScoreHandler
	historyHandler  *HistoryHandler
	downloadHandler *DownloadHandler

	logger         logger.Logger
	defaultLimit   int
	maxLimit       int
	maxBodyBytes   int64
	rateLimitRPS   float64
	rateLimitBurst int
	corsOrigins    []string
	now            func() time.Time
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{
		defaultLimit: defaultHistoryLimit,
		maxLimit:     defaultMaxLimit,
		maxBodyBytes: defaultMaxBodyBytes,
		corsOrigins:  []string{"*"},
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.defaultLimit > s.maxLimit {
		s.defaultLimit = s.maxLimit
	}

	var limiter *rate.Limiter
	if s.rateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(s.rateLimitRPS), max(s.rateLimitBurst, 1))
	}

	s.healthHandler = NewHealthHandler()
	s.statsHandler = NewStatsHandler(deps)
	s.scoreHandler = NewScoreHandler(deps, s.logger, s.maxBodyBytes, limiter)
	s.historyHandler = NewHistoryHandler(deps, s.logger, s.defaultLimit, s.maxLimit)
	s.downloadHandler = NewDownloadHandler(deps, s.logger, s.now)
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.Handle("/metrics", s.healthHandler.MetricsHandler())
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/score", MetricsMiddleware(s.scoreHandler.HandleScore, "score"))
	mux.HandleFunc("/history/download", MetricsMiddleware(s.downloadHandler.HandleDownload, "history_download"))
	mux.HandleFunc("/history", MetricsMiddleware(s.historyHandler.HandleHistory, "history"))

	s.logger.Debug(ctx, "api routes registered")
}

// Handler wraps next with panic recovery and CORS. It is meant to wrap the
// whole mux.
func (s *Server) Handler(next http.Handler) http.Handler {
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	})
	return corsHandler(RecoverMiddleware(next, s.logger))
}

type ackResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONIndent(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// writeError writes a JSON error. A nil err uses the status text, which is
// how internal failures avoid leaking detail.
func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
