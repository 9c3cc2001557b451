package queue_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tape/pkg/logger"
	"github.com/dmitrymomot/tape/pkg/queue"
)

// fakeClock is a manually advanced time source
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type callKind string

const (
	callAdd    callKind = "add"
	callRemove callKind = "remove"
)

type call[T any] struct {
	kind  callKind
	queue queue.ObjectQueue[T]
	item  T
}

// recordingListener records every callback in order
type recordingListener[T any] struct {
	calls     []call[T]
	addErr    error
	removeErr error
}

func (l *recordingListener[T]) OnAdd(q queue.ObjectQueue[T], item T) error {
	l.calls = append(l.calls, call[T]{kind: callAdd, queue: q, item: item})
	return l.addErr
}

func (l *recordingListener[T]) OnRemove(q queue.ObjectQueue[T]) error {
	l.calls = append(l.calls, call[T]{kind: callRemove, queue: q})
	return l.removeErr
}

func (l *recordingListener[T]) count(kind callKind) int {
	n := 0
	for _, c := range l.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

func (l *recordingListener[T]) items() []T {
	var items []T
	for _, c := range l.calls {
		if c.kind == callAdd {
			items = append(items, c.item)
		}
	}
	return items
}

func newTestQueue[T any](clock *fakeClock) *queue.MemoryQueue[T] {
	return queue.NewMemoryQueue[T](
		queue.WithClock(clock.Now),
		queue.WithLogger(logger.Discard()),
	)
}

func mustPeek[T any](t *testing.T, q queue.ObjectQueue[T]) (T, bool) {
	t.Helper()
	item, ok, err := q.Peek()
	require.NoError(t, err)
	return item, ok
}
