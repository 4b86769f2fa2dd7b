package api

import (
	"time"

	"github.com/okian/talkscore/pkg/logger"
)

// Default API configuration constants.
const (
	defaultHistoryLimit = 20
	defaultMaxLimit     = 100
	defaultMaxBodyBytes = 1 << 20
)

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithLogger sets the logger used by handlers and middleware.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHistoryLimits sets the default and maximum GET /history limits.
func WithHistoryLimits(defaultLimit, maxLimit int) Option {
	return func(s *Server) {
		if maxLimit > 0 {
			s.maxLimit = maxLimit
		}
		if defaultLimit > 0 {
			s.defaultLimit = defaultLimit
		}
	}
}

// WithMaxBodyBytes caps the POST /score request body.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// WithRateLimit enables a token bucket on POST /score. A non-positive rps
// disables it.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		s.rateLimitRPS = rps
		s.rateLimitBurst = burst
	}
}

// WithCORSOrigins sets the origins allowed to call the API from a browser.
func WithCORSOrigins(origins []string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.corsOrigins = origins
		}
	}
}

// WithClock sets the time source used for download file names.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		if now != nil {
			s.now = now
		}
	}
}
