// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/talkscore/internal/adapters/repository"
	"github.com/okian/talkscore/internal/domain/model"
	"github.com/okian/talkscore/internal/domain/scoring"
	"github.com/okian/talkscore/internal/domain/text"
	"github.com/okian/talkscore/pkg/logger"
	"github.com/okian/talkscore/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultMinWords        = 10
	defaultHistoryCapacity = 100
	defaultDuration        = 30
	defaultMinDuration     = 1
)

// TranscriptScorer scores a transcript. *scoring.Engine implements it.
type TranscriptScorer interface {
	Score(transcript string, opts model.Options) model.ScoreResult
}

// Service validates requests, scores transcripts and records history.
type Service struct {
	mu sync.RWMutex

	// Core components
	scorer  TranscriptScorer
	history repository.History

	// Configuration
	minWords        int
	historyCapacity int
	defaultDuration float64
	minDuration     float64

	// State
	started   bool
	startedAt time.Time
	scored    atomic.Int64
	rejected  atomic.Int64

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		minWords:        defaultMinWords,
		historyCapacity: defaultHistoryCapacity,
		defaultDuration: defaultDuration,
		minDuration:     defaultMinDuration,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start builds any component not injected through options.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting scoring service...")

	if s.scorer == nil {
		s.scorer = scoring.NewEngine(
			scoring.WithDefaultDuration(s.defaultDuration),
			scoring.WithMinDuration(s.minDuration),
		)
	}
	if s.history == nil {
		s.history = repository.NewRingStore(repository.WithCapacity(s.historyCapacity))
	}

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "scoring service started",
		logger.Int("minWords", s.minWords),
		logger.Int("historyCapacity", s.history.Cap()),
		logger.Float64("defaultDuration", s.defaultDuration),
	)

	return nil
}

// Stop marks the service as stopped. Stored history is kept.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "scoring service stopped")
}

func (s *Service) components() (TranscriptScorer, repository.History, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, nil, ErrNotStarted
	}
	return s.scorer, s.history, nil
}

// Validate checks the request preconditions without scoring.
func (s *Service) Validate(transcript string, opts model.Options) error {
	reason, err := s.validate(transcript, opts)
	if err != nil {
		metrics.RecordValidationFailure(reason)
	}
	return err
}

func (s *Service) validate(transcript string, opts model.Options) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "empty", fmt.Errorf("%w: transcript_text is required", ErrInvalidInput)
	}
	if n := text.WordCount(transcript); n < s.minWords {
		return "too_short", fmt.Errorf("%w: transcript must contain at least %d words, got %d", ErrInvalidInput, s.minWords, n)
	}
	if d := opts.Duration(); d < 0 || math.IsInf(d, 0) || math.IsNaN(d) {
		return "invalid_duration", fmt.Errorf("%w: transcript_duration_seconds must be a positive number", ErrInvalidInput)
	}
	return "", nil
}

// Score validates and scores a transcript, then saves the result to history.
func (s *Service) Score(ctx context.Context, transcript string, opts model.Options) (res model.ScoreResult, err error) {
	scorer, history, err := s.components()
	if err != nil {
		return model.ScoreResult{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if err := s.Validate(transcript, opts); err != nil {
		s.rejected.Add(1)
		s.logger.Warn(ctx, "transcript rejected", logger.Error(err))
		return model.ScoreResult{}, err
	}

	defer func() {
		if r := recover(); r != nil {
			metrics.RecordErrorByComponent("service", "panic")
			s.logger.Error(ctx, "scoring panicked", logger.Any("panic", r))
			res, err = model.ScoreResult{}, fmt.Errorf("%w: scoring failed: %v", ErrInternal, r)
		}
	}()

	start := time.Now()
	res = scorer.Score(transcript, opts)
	latency := float64(time.Since(start).Microseconds()) / 1000

	metrics.RecordTranscriptScored(res.OverallScore, res.WPM, latency)
	for _, c := range res.Criteria {
		if err := metrics.RecordCriterionScore(c.Name, c.Score, c.MaxScore); err != nil {
			s.logger.Warn(ctx, "criterion score out of range", logger.Error(err))
		}
	}

	if err := history.Save(ctx, res); err != nil {
		metrics.RecordErrorByComponent("service", "history_save")
		metrics.RecordErrorLatency("service", "history_save", float64(time.Since(start).Microseconds())/1000)
		s.logger.Error(ctx, "failed to save history entry", logger.String("id", res.ID), logger.Error(err))
		return model.ScoreResult{}, fmt.Errorf("%w: save history: %w", ErrInternal, err)
	}

	s.scored.Add(1)
	s.logger.Debug(ctx, "transcript scored",
		logger.String("id", res.ID),
		logger.Int("overall", res.OverallScore),
		logger.Int("words", res.WordCount),
		logger.Float64("wpm", res.WPM),
	)
	return res, nil
}

// History returns up to limit recent results, most recent first. A zero
// limit returns the full history.
func (s *Service) History(ctx context.Context, limit int) ([]model.ScoreResult, error) {
	_, history, err := s.components()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	entries, err := history.List(ctx, limit)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidLimit) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: list history: %w", ErrInternal, err)
	}
	return entries, nil
}

// ClearHistory drops every stored result.
func (s *Service) ClearHistory(ctx context.Context) error {
	_, history, err := s.components()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if err := history.Clear(ctx); err != nil {
		return fmt.Errorf("%w: clear history: %w", ErrInternal, err)
	}
	s.logger.Info(ctx, "history cleared")
	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":            s.started,
		"minWords":           s.minWords,
		"transcriptsScored":  s.scored.Load(),
		"validationFailures": s.rejected.Load(),
	}

	if s.started {
		ctx := context.Background()
		size := s.history.Len(ctx)
		stats["historySize"] = size
		stats["historyCapacity"] = s.history.Cap()
		stats["uptimeSeconds"] = int64(time.Since(s.startedAt).Seconds())

		metrics.UpdateHistorySize(size)
	}

	return stats
}
