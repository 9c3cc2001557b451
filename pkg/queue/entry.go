package queue

import "time"

// entry pairs a stored item with its expiry deadline and remaining retries.
type entry[T any] struct {
	item        T
	expiry      time.Time
	retryBudget int
}

func (e *entry[T]) expired(now time.Time) bool {
	return hasDeadline(e.expiry) && e.expiry.Before(now)
}

// consumeRetry decrements a finite budget and reports whether it ran out.
// Unlimited budgets are left untouched.
func (e *entry[T]) consumeRetry() bool {
	if e.retryBudget <= 0 {
		return false
	}
	e.retryBudget--
	return e.retryBudget == 0
}
