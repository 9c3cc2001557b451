package queue

import (
	"log/slog"
	"time"
)

// MemoryQueueOption is a functional option for configuring a MemoryQueue
type MemoryQueueOption func(*memoryQueueOptions)

type memoryQueueOptions struct {
	clock  func() time.Time
	logger *slog.Logger
}

// WithClock sets the time source used for expiry checks and TTL resolution
func WithClock(clock func() time.Time) MemoryQueueOption {
	return func(o *memoryQueueOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLogger sets the logger for eviction and drop diagnostics
func WithLogger(logger *slog.Logger) MemoryQueueOption {
	return func(o *memoryQueueOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
