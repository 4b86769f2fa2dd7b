package samples

import "errors"

// Error values returned by the samples tooling.
var (
	ErrNoSamples        = errors.New("no samples")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrVerification     = errors.New("verification failed")
)
