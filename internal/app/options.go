package service

import (
	"github.com/okian/talkscore/internal/adapters/repository"
	"github.com/okian/talkscore/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithScorer replaces the scoring engine.
func WithScorer(scorer TranscriptScorer) Option {
	return func(s *Service) {
		if scorer != nil {
			s.scorer = scorer
		}
	}
}

// WithHistory replaces the history store.
func WithHistory(h repository.History) Option {
	return func(s *Service) {
		if h != nil {
			s.history = h
		}
	}
}

// WithMinWords sets the minimum number of words a transcript must carry.
func WithMinWords(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.minWords = n
		}
	}
}

// WithHistoryCapacity sets the capacity of the default history store.
func WithHistoryCapacity(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.historyCapacity = n
		}
	}
}

// WithDurations sets the default and minimum durations of the default engine.
func WithDurations(defaultSeconds, minSeconds float64) Option {
	return func(s *Service) {
		if defaultSeconds > 0 {
			s.defaultDuration = defaultSeconds
		}
		if minSeconds > 0 {
			s.minDuration = minSeconds
		}
	}
}
