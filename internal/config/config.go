// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Load layers a YAML file and TALKSCORE_ environment variables on top.
// - Validation failures wrap ErrInvalidConfig, load failures wrap ErrLoadConfig.
package config

import (
	"fmt"
	"strings"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// HistoryCapacity bounds the number of results kept in history.
	HistoryCapacity int `koanf:"history_capacity"`

	// HistoryDefaultLimit is used by GET /history when limit is absent.
	HistoryDefaultLimit int `koanf:"history_default_limit"`

	// MaxHistoryLimit caps GET /history?limit.
	MaxHistoryLimit int `koanf:"max_history_limit"`

	// MinWords is the minimum number of words a transcript must carry.
	MinWords int `koanf:"min_words"`

	// DefaultDurationSeconds applies when a request carries no duration.
	DefaultDurationSeconds float64 `koanf:"default_duration_seconds"`

	// MinDurationSeconds is the floor the engine clamps durations to.
	MinDurationSeconds float64 `koanf:"min_duration_seconds"`

	// MaxBodyBytes caps the POST /score request body.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`

	// RateLimitRPS and RateLimitBurst configure the score endpoint limiter.
	// A zero RPS disables limiting.
	RateLimitRPS   float64 `koanf:"rate_limit_rps"`
	RateLimitBurst int     `koanf:"rate_limit_burst"`

	// CORSAllowedOrigins lists origins allowed to call the API.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:               "info",
		LogFormat:              "text",
		Addr:                   ":9080",
		HistoryCapacity:        100,
		HistoryDefaultLimit:    20,
		MaxHistoryLimit:        100,
		MinWords:               10,
		DefaultDurationSeconds: 30,
		MinDurationSeconds:     1,
		MaxBodyBytes:           1 << 20,
		RateLimitRPS:           20,
		RateLimitBurst:         40,
		CORSAllowedOrigins:     []string{"*"},
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	case c.HistoryCapacity <= 0:
		return fmt.Errorf("%w: history_capacity must be positive", ErrInvalidConfig)
	case c.MaxHistoryLimit <= 0:
		return fmt.Errorf("%w: max_history_limit must be positive", ErrInvalidConfig)
	case c.HistoryDefaultLimit <= 0 || c.HistoryDefaultLimit > c.MaxHistoryLimit:
		return fmt.Errorf("%w: history_default_limit must be in [1, %d]", ErrInvalidConfig, c.MaxHistoryLimit)
	case c.MinWords < 1:
		return fmt.Errorf("%w: min_words must be at least 1", ErrInvalidConfig)
	case c.MinDurationSeconds <= 0:
		return fmt.Errorf("%w: min_duration_seconds must be positive", ErrInvalidConfig)
	case c.DefaultDurationSeconds < c.MinDurationSeconds:
		return fmt.Errorf("%w: default_duration_seconds must be >= min_duration_seconds", ErrInvalidConfig)
	case c.MaxBodyBytes <= 0:
		return fmt.Errorf("%w: max_body_bytes must be positive", ErrInvalidConfig)
	case c.RateLimitRPS < 0:
		return fmt.Errorf("%w: rate_limit_rps must not be negative", ErrInvalidConfig)
	case c.RateLimitRPS > 0 && c.RateLimitBurst < 1:
		return fmt.Errorf("%w: rate_limit_burst must be at least 1 when limiting", ErrInvalidConfig)
	}
	return nil
}
