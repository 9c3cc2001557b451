package queue

import "time"

// UnlimitedRetries marks an entry that Drop never removes on retry budget alone.
const UnlimitedRetries = -1

// ObjectQueue is a FIFO queue of items with per-item expiry and retry policy.
//
// Implementations are not safe for concurrent use. A queue, and any decorators
// around it, belongs to a single owner; callers that share one across goroutines
// must provide their own synchronization.
type ObjectQueue[T any] interface {
	// Size returns the number of stored entries, including expired entries
	// that have not been evicted yet.
	Size() int

	// Add appends an item to the tail of the queue and notifies the listener.
	// Without options the item never expires and has unlimited retries.
	Add(item T, opts ...AddOption) error

	// Peek returns the head item without removing it. Expired heads are
	// evicted first. ok is false when the queue is empty.
	Peek() (item T, ok bool, err error)

	// Remove removes the head entry and notifies the listener.
	// It returns ErrEmptyQueue when there is nothing to remove.
	Remove() error

	// Drop applies the retry and expiry policy to the head entry and
	// reports whether it was removed.
	Drop() (bool, error)

	// Clear removes all entries without notifying the listener.
	Clear()

	// SetListener replaces the active listener. A non-nil listener receives
	// OnAdd for every stored item, in FIFO order, before SetListener returns.
	// If one of those calls fails the error is returned and the listener is
	// not installed. A nil listener detaches the current one.
	SetListener(l Listener[T]) error
}

// Listener observes changes to a queue. Callbacks run synchronously inside
// the mutating call, after storage has been updated.
type Listener[T any] interface {
	// OnAdd is called after an item is added.
	OnAdd(q ObjectQueue[T], item T) error

	// OnRemove is called after the head entry is removed.
	OnRemove(q ObjectQueue[T]) error
}

// Injector populates members of an item handed out by a TaskQueue.
type Injector[T any] interface {
	InjectMembers(item T) error
}

// InjectorFunc adapts a function to the Injector interface
type InjectorFunc[T any] func(item T) error

// InjectMembers calls f(item)
func (f InjectorFunc[T]) InjectMembers(item T) error {
	return f(item)
}

// AddOption is a functional option for the Add method
type AddOption func(*addOptions)

type addOptions struct {
	expiry      time.Time
	ttl         time.Duration
	retryBudget int
}

// WithExpiry sets an absolute deadline after which the item is stale.
// A zero or non-positive timestamp means the item never expires.
func WithExpiry(t time.Time) AddOption {
	return func(o *addOptions) {
		o.expiry = t
	}
}

// WithTTL sets the deadline relative to the queue clock at the time of Add.
// WithExpiry takes precedence when both are given.
func WithTTL(d time.Duration) AddOption {
	return func(o *addOptions) {
		if d > 0 {
			o.ttl = d
		}
	}
}

// WithRetryBudget sets how many Drop calls the item survives.
// Zero and negative values mean unlimited retries.
func WithRetryBudget(n int) AddOption {
	return func(o *addOptions) {
		o.retryBudget = n
	}
}

func newAddOptions(opts []AddOption) addOptions {
	o := addOptions{retryBudget: UnlimitedRetries}
	for _, opt := range opts {
		opt(&o)
	}
	o.retryBudget = normalizeRetryBudget(o.retryBudget)
	return o
}

// deadline resolves the effective expiry against now.
func (o addOptions) deadline(now time.Time) time.Time {
	if hasDeadline(o.expiry) {
		return o.expiry
	}
	if o.ttl > 0 {
		return now.Add(o.ttl)
	}
	return time.Time{}
}

// forward rebuilds the options so a decorator can pass them to its delegate.
func (o addOptions) forward() []AddOption {
	opts := []AddOption{WithRetryBudget(o.retryBudget)}
	if hasDeadline(o.expiry) {
		opts = append(opts, WithExpiry(o.expiry))
	} else if o.ttl > 0 {
		opts = append(opts, WithTTL(o.ttl))
	}
	return opts
}

func normalizeRetryBudget(n int) int {
	if n <= 0 {
		return UnlimitedRetries
	}
	return n
}

func hasDeadline(t time.Time) bool {
	return !t.IsZero() && t.UnixMilli() > 0
}
