package repository

// Option applies a configuration option to the RingStore.
type Option func(*RingStore)

// WithCapacity sets the maximum number of results kept.
func WithCapacity(capacity int) Option {
	return func(s *RingStore) {
		if capacity > 0 {
			s.capacity = capacity
		}
	}
}
