package queue_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tape/pkg/queue"
)

func receive[T any](t *testing.T, sub *queue.Subscription[T]) queue.Event[T] {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		require.True(t, ok, "events channel closed")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return queue.Event[T]{}
	}
}

func TestNotifier_Events(t *testing.T) {
	notifier := queue.NewNotifier[string](8)
	defer notifier.Close()

	sub := notifier.Subscribe(context.Background())
	q := newTestQueue[string](newFakeClock())
	require.NoError(t, q.Add("existing"))
	require.NoError(t, q.SetListener(notifier))

	require.NoError(t, q.Add("new"))
	require.NoError(t, q.Remove())

	replayed := receive(t, sub)
	assert.Equal(t, queue.EventAdded, replayed.Type)
	assert.Equal(t, "existing", replayed.Item)
	assert.Equal(t, 1, replayed.Size)
	assert.NotEqual(t, uuid.Nil, replayed.ID)
	assert.False(t, replayed.At.IsZero())

	added := receive(t, sub)
	assert.Equal(t, queue.EventAdded, added.Type)
	assert.Equal(t, "new", added.Item)
	assert.Equal(t, 2, added.Size)
	assert.NotEqual(t, replayed.ID, added.ID)

	removed := receive(t, sub)
	assert.Equal(t, queue.EventRemoved, removed.Type)
	assert.Empty(t, removed.Item)
	assert.Equal(t, 1, removed.Size)
}

func TestNotifier_SlowSubscriber(t *testing.T) {
	notifier := queue.NewNotifier[int](1)
	defer notifier.Close()

	sub := notifier.Subscribe(context.Background())
	q := newTestQueue[int](newFakeClock())
	require.NoError(t, q.SetListener(notifier))

	// Buffer holds one event; the rest are discarded without blocking
	for i := range 5 {
		require.NoError(t, q.Add(i))
	}

	first := receive(t, sub)
	assert.Equal(t, 0, first.Item)

	select {
	case ev := <-sub.Events():
		t.Fatalf("unexpected event %+v", ev)
	default:
	}

	// The subscriber stays registered after missing events
	require.NoError(t, q.Add(99))
	next := receive(t, sub)
	assert.Equal(t, 99, next.Item)
}

func TestNotifier_Subscribe(t *testing.T) {
	t.Run("context cancellation closes subscription", func(t *testing.T) {
		notifier := queue.NewNotifier[string](4)
		defer notifier.Close()

		ctx, cancel := context.WithCancel(context.Background())
		sub := notifier.Subscribe(ctx)
		cancel()

		require.Eventually(t, func() bool {
			select {
			case _, ok := <-sub.Events():
				return !ok
			default:
				return false
			}
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("closed notifier returns closed subscription", func(t *testing.T) {
		notifier := queue.NewNotifier[string](4)
		require.NoError(t, notifier.Close())

		sub := notifier.Subscribe(context.Background())
		_, ok := <-sub.Events()
		assert.False(t, ok)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		notifier := queue.NewNotifier[string](4)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sub := notifier.Subscribe(ctx)
		require.NoError(t, notifier.Close())
		require.NoError(t, notifier.Close())
		require.NoError(t, sub.Close())

		_, ok := <-sub.Events()
		assert.False(t, ok)
	})

	t.Run("events after close are discarded", func(t *testing.T) {
		notifier := queue.NewNotifier[string](4)
		require.NoError(t, notifier.Close())

		q := newTestQueue[string](newFakeClock())
		require.NoError(t, q.SetListener(notifier))
		assert.NoError(t, q.Add("A"))
	})
}
