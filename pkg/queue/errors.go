package queue

import "errors"

// Common errors
var (
	// ErrEmptyQueue is returned by Remove when the queue holds no entries
	ErrEmptyQueue = errors.New("queue is empty")

	// ErrNilDelegate is returned when a decorator is built without a delegate queue
	ErrNilDelegate = errors.New("delegate queue cannot be nil")

	// ErrNilQueue is returned when a runner is built without a queue
	ErrNilQueue = errors.New("queue cannot be nil")

	// ErrNilHandler is returned when a runner is built without a handler
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrTaskFailed wraps errors returned by a runner handler
	ErrTaskFailed = errors.New("task handler failed")
)
