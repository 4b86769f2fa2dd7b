// Package repository defines the score history store interface and errors.
package repository

import (
	"context"

	"github.com/okian/talkscore/internal/domain/model"
)

// History keeps recent scoring results.
type History interface {
	// Save records entry as the most recent result, evicting the oldest when full.
	Save(ctx context.Context, entry model.ScoreResult) error

	// List returns up to limit results, most recent first. A zero limit
	// returns everything; a negative limit returns ErrInvalidLimit.
	List(ctx context.Context, limit int) ([]model.ScoreResult, error)

	// Clear drops every stored result.
	Clear(ctx context.Context) error

	// Len returns the number of stored results.
	Len(ctx context.Context) int

	// Cap returns the maximum number of stored results.
	Cap() int
}
