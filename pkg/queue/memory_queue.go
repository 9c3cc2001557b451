package queue

import (
	"container/list"
	"log/slog"
	"time"

	"github.com/dmitrymomot/tape/pkg/logger"
)

var _ ObjectQueue[any] = (*MemoryQueue[any])(nil)

// MemoryQueue keeps entries in memory only. Nothing is serialized and
// nothing survives the process.
//
// Expiry is evaluated lazily: an expired entry is evicted only when Peek
// finds it at the head. There is no timer and no background sweep.
//
// MemoryQueue is not safe for concurrent use.
type MemoryQueue[T any] struct {
	entries  *list.List
	listener Listener[T]
	now      func() time.Time
	logger   *slog.Logger
}

// NewMemoryQueue creates an empty in-memory queue
func NewMemoryQueue[T any](opts ...MemoryQueueOption) *MemoryQueue[T] {
	options := &memoryQueueOptions{
		clock:  time.Now,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(options)
	}

	return &MemoryQueue[T]{
		entries: list.New(),
		now:     options.clock,
		logger:  options.logger.With(logger.Component("queue.memory")),
	}
}

// Size returns the number of stored entries
func (q *MemoryQueue[T]) Size() int {
	return q.entries.Len()
}

// Add appends an item to the tail of the queue
func (q *MemoryQueue[T]) Add(item T, opts ...AddOption) error {
	options := newAddOptions(opts)

	q.entries.PushBack(&entry[T]{
		item:        item,
		expiry:      options.deadline(q.now()),
		retryBudget: options.retryBudget,
	})

	if q.listener != nil {
		return q.listener.OnAdd(q, item)
	}
	return nil
}

// Peek returns the first non-expired item, evicting expired heads on the way
func (q *MemoryQueue[T]) Peek() (T, bool, error) {
	var zero T

	for {
		head := q.head()
		if head == nil {
			return zero, false, nil
		}

		if !head.expired(q.now()) {
			return head.item, true, nil
		}

		q.logger.Debug("evicting expired entry",
			logger.Event("expired"),
			logger.Expiry(head.expiry),
			logger.Size(q.Size()),
		)

		if err := q.Remove(); err != nil {
			return zero, false, err
		}
	}
}

// Remove removes the head entry
func (q *MemoryQueue[T]) Remove() error {
	front := q.entries.Front()
	if front == nil {
		return ErrEmptyQueue
	}
	q.entries.Remove(front)

	if q.listener != nil {
		return q.listener.OnRemove(q)
	}
	return nil
}

// Drop removes the head entry when its retry budget runs out or its
// deadline has passed. A finite budget is decremented on every call, even
// when the entry is removed for being expired.
func (q *MemoryQueue[T]) Drop() (bool, error) {
	head := q.head()
	if head == nil {
		return false, nil
	}

	exhausted := head.consumeRetry()
	expired := head.expired(q.now())
	if !exhausted && !expired {
		return false, nil
	}

	q.logger.Debug("dropping head entry",
		logger.Event("dropped"),
		logger.RetryBudget(head.retryBudget),
		slog.Bool("expired", expired),
	)

	if err := q.Remove(); err != nil {
		return true, err
	}
	return true, nil
}

// Clear removes all entries. The listener is not notified.
func (q *MemoryQueue[T]) Clear() {
	q.entries.Init()
}

// SetListener replaces the active listener, replaying stored items to it first
func (q *MemoryQueue[T]) SetListener(l Listener[T]) error {
	if l != nil {
		for e := q.entries.Front(); e != nil; e = e.Next() {
			if err := l.OnAdd(q, e.Value.(*entry[T]).item); err != nil {
				return err
			}
		}
	}

	q.listener = l
	return nil
}

func (q *MemoryQueue[T]) head() *entry[T] {
	front := q.entries.Front()
	if front == nil {
		return nil
	}
	return front.Value.(*entry[T])
}
