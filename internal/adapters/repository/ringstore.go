package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/okian/talkscore/internal/domain/model"
	"github.com/okian/talkscore/pkg/metrics"
)

const defaultCapacity = 100

// RingStore is a bounded, in-memory History backed by a ring buffer.
//
// Writes take the exclusive lock so insertion order and the size bound hold
// under concurrent savers. Results are immutable once produced, so stored
// values are shared with callers rather than deep-copied.
type RingStore struct {
	mu       sync.RWMutex
	buf      []model.ScoreResult
	head     int // next write position
	size     int
	capacity int
}

var _ History = (*RingStore)(nil)

// NewRingStore constructs a ring store with configuration options.
func NewRingStore(opts ...Option) *RingStore {
	s := &RingStore{capacity: defaultCapacity}

	for _, opt := range opts {
		opt(s)
	}

	s.buf = make([]model.ScoreResult, s.capacity)
	metrics.UpdateHistoryCapacity(s.capacity)
	metrics.UpdateHistorySize(0)

	return s
}

// Save implements History.Save in O(1).
func (s *RingStore) Save(ctx context.Context, entry model.ScoreResult) error {
	if err := ctx.Err(); err != nil {
		metrics.RecordErrorByComponent("repository", "cancelled")
		return fmt.Errorf("save history entry: %w", err)
	}

	s.mu.Lock()
	s.buf[s.head] = entry
	s.head = (s.head + 1) % s.capacity
	evicted := s.size == s.capacity
	if !evicted {
		s.size++
	}
	size := s.size
	s.mu.Unlock()

	// Update metrics outside lock
	if evicted {
		metrics.RecordHistoryEviction()
	}
	metrics.UpdateHistorySize(size)
	return nil
}

// List implements History.List.
func (s *RingStore) List(_ context.Context, limit int) ([]model.ScoreResult, error) {
	if limit < 0 {
		metrics.RecordErrorByComponent("repository", "invalid_limit")
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	n := s.size
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]model.ScoreResult, n)
	for i := range n {
		out[i] = s.buf[(s.head-1-i+s.capacity)%s.capacity]
	}
	return out, nil
}

// Clear implements History.Clear.
func (s *RingStore) Clear(_ context.Context) error {
	s.mu.Lock()
	clear(s.buf)
	s.head = 0
	s.size = 0
	s.mu.Unlock()

	metrics.RecordHistoryClear()
	metrics.UpdateHistorySize(0)
	return nil
}

// Len implements History.Len.
func (s *RingStore) Len(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}

// Cap implements History.Cap.
func (s *RingStore) Cap() int {
	return s.capacity
}
