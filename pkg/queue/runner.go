package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/tape/pkg/logger"
)

// HandlerFunc processes a single item taken from the head of a queue
type HandlerFunc[T any] func(ctx context.Context, item T) error

// Outcome reports what RunOnce did with the head item
type Outcome string

const (
	// OutcomeEmpty means the queue had nothing to process
	OutcomeEmpty Outcome = "empty"
	// OutcomeCompleted means the handler succeeded and the item was removed
	OutcomeCompleted Outcome = "completed"
	// OutcomeRetained means the handler failed and the item stays at the head
	OutcomeRetained Outcome = "retained"
	// OutcomeDropped means the handler failed and the item was dropped by policy
	OutcomeDropped Outcome = "dropped"
	// OutcomeFailed means the head could not be read; the queue may still hold items
	OutcomeFailed Outcome = "failed"
)

// Stats summarizes a Drain run
type Stats struct {
	Completed int
	Dropped   int
}

// Runner consumes a queue on the caller's goroutine: the head item is handed
// to the handler, removed on success and dropped by policy on failure.
type Runner[T any] struct {
	queue   ObjectQueue[T]
	handler HandlerFunc[T]
	logger  *slog.Logger
}

// NewRunner creates a runner for q
func NewRunner[T any](q ObjectQueue[T], handler HandlerFunc[T], opts ...RunnerOption) (*Runner[T], error) {
	if q == nil {
		return nil, ErrNilQueue
	}
	if handler == nil {
		return nil, ErrNilHandler
	}

	options := &runnerOptions{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Runner[T]{
		queue:   q,
		handler: handler,
		logger:  options.logger.With(logger.Component("queue.runner")),
	}, nil
}

// RunOnce processes the head item. Handler failures are returned wrapped in
// ErrTaskFailed together with OutcomeRetained or OutcomeDropped; queue errors
// are returned as-is. A failing Peek yields OutcomeFailed.
func (r *Runner[T]) RunOnce(ctx context.Context) (Outcome, error) {
	item, ok, err := r.queue.Peek()
	if err != nil {
		return OutcomeFailed, err
	}
	if !ok {
		return OutcomeEmpty, nil
	}

	start := time.Now()
	herr := r.handler(ctx, item)
	if herr == nil {
		if err := r.queue.Remove(); err != nil {
			return OutcomeCompleted, err
		}
		r.logger.DebugContext(ctx, "task completed",
			logger.Outcome(string(OutcomeCompleted)),
			logger.Duration(time.Since(start)),
		)
		return OutcomeCompleted, nil
	}

	dropped, err := r.queue.Drop()
	outcome := OutcomeRetained
	if dropped {
		outcome = OutcomeDropped
	}
	if err != nil {
		return outcome, err
	}

	r.logger.WarnContext(ctx, "task failed",
		logger.Outcome(string(outcome)),
		logger.Duration(time.Since(start)),
		logger.Error(herr),
	)
	return outcome, fmt.Errorf("%w: %w", ErrTaskFailed, herr)
}

// Drain processes items until the queue is empty, ctx is done, or a failed
// item is retained at the head. Dropped items do not stop the run.
func (r *Runner[T]) Drain(ctx context.Context) (Stats, error) {
	var stats Stats
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		outcome, err := r.RunOnce(ctx)
		switch outcome {
		case OutcomeEmpty, OutcomeFailed:
			return stats, err
		case OutcomeCompleted:
			stats.Completed++
			if err != nil {
				return stats, err
			}
		case OutcomeDropped:
			stats.Dropped++
			if err != nil && !isTaskFailure(err) {
				return stats, err
			}
		case OutcomeRetained:
			return stats, err
		}
	}
}

func isTaskFailure(err error) bool {
	return errors.Is(err, ErrTaskFailed)
}
