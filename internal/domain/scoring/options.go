package scoring

import "time"

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithScorers replaces the criterion scorers. Order is preserved in results.
func WithScorers(scorers ...Scorer) Option {
	return func(e *Engine) {
		if len(scorers) > 0 {
			e.scorers = scorers
		}
	}
}

// WithClock sets the time source used for result timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithIDGenerator sets the function that produces result identifiers.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		if newID != nil {
			e.newID = newID
		}
	}
}

// WithDefaultDuration sets the duration used when a request carries none.
func WithDefaultDuration(seconds float64) Option {
	return func(e *Engine) {
		if seconds > 0 {
			e.defaultDuration = seconds
		}
	}
}

// WithMinDuration sets the floor that shorter durations are clamped to.
func WithMinDuration(seconds float64) Option {
	return func(e *Engine) {
		if seconds > 0 {
			e.minDuration = seconds
		}
	}
}
