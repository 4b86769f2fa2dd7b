package service

import "errors"

// Sentinel kinds for service errors. The HTTP layer maps ErrInvalidInput to
// 4xx and everything else to 5xx.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrNotStarted   = errors.New("service not started")
)
