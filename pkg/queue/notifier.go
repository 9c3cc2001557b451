package queue

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ Listener[any] = (*Notifier[any])(nil)

// EventType identifies the queue change carried by an Event
type EventType string

const (
	// EventAdded is published after an item is appended
	EventAdded EventType = "added"
	// EventRemoved is published after the head is removed, evicted or dropped
	EventRemoved EventType = "removed"
)

// Event describes a single queue change delivered by a Notifier.
// Item is the zero value for EventRemoved.
type Event[T any] struct {
	ID   uuid.UUID `json:"id"`
	Type EventType `json:"type"`
	Item T         `json:"item,omitempty"`
	Size int       `json:"size"`
	At   time.Time `json:"at"`
}

// Notifier is a Listener that turns queue callbacks into events and fans
// them out to subscribers on other goroutines.
//
// Sends never block the queue owner: a subscriber whose buffer is full
// misses the event. Notifier methods are safe for concurrent use; the queue
// it listens to is still single-owner.
type Notifier[T any] struct {
	mu          sync.RWMutex
	subscribers map[*Subscription[T]]struct{}
	bufferSize  int
	closed      bool
	now         func() time.Time
	done        chan struct{}
	cleanupWg   sync.WaitGroup
}

// NewNotifier creates a notifier with the given per-subscriber buffer size.
// A buffer smaller than 1 is raised to 1.
func NewNotifier[T any](bufferSize int) *Notifier[T] {
	return &Notifier[T]{
		subscribers: make(map[*Subscription[T]]struct{}),
		bufferSize:  max(bufferSize, 1),
		now:         time.Now,
		done:        make(chan struct{}),
	}
}

// Subscription receives events from a Notifier
type Subscription[T any] struct {
	mu     sync.RWMutex
	ch     chan Event[T]
	closed bool
}

// Events returns the channel events are delivered on. It is closed when the
// subscription or the notifier is closed.
func (s *Subscription[T]) Events() <-chan Event[T] {
	return s.ch
}

// Close stops delivery and closes the events channel. It is idempotent.
func (s *Subscription[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

func (s *Subscription[T]) send(ev Event[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- ev:
		return true
	default:
		return false
	}
}

// Subscribe registers a new subscription. It is removed automatically when
// ctx is cancelled. Subscribing to a closed notifier returns a closed
// subscription.
func (n *Notifier[T]) Subscribe(ctx context.Context) *Subscription[T] {
	n.mu.Lock()
	defer n.mu.Unlock()

	sub := &Subscription[T]{ch: make(chan Event[T], n.bufferSize)}
	if n.closed {
		_ = sub.Close()
		return sub
	}

	n.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		n.cleanupWg.Add(1)
		go func() {
			defer n.cleanupWg.Done()
			select {
			case <-ctx.Done():
				n.unsubscribe(sub)
			case <-n.done:
			}
		}()
	}

	return sub
}

// OnAdd publishes an EventAdded event
func (n *Notifier[T]) OnAdd(q ObjectQueue[T], item T) error {
	n.publish(Event[T]{Type: EventAdded, Item: item, Size: q.Size()})
	return nil
}

// OnRemove publishes an EventRemoved event
func (n *Notifier[T]) OnRemove(q ObjectQueue[T]) error {
	n.publish(Event[T]{Type: EventRemoved, Size: q.Size()})
	return nil
}

// Close closes all subscriptions. Later events are discarded.
func (n *Notifier[T]) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	close(n.done)

	for sub := range n.subscribers {
		_ = sub.Close()
	}
	clear(n.subscribers)
	n.mu.Unlock()

	n.cleanupWg.Wait()
	return nil
}

func (n *Notifier[T]) publish(ev Event[T]) {
	ev.ID = uuid.New()
	ev.At = n.now()

	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.closed {
		return
	}

	for sub := range n.subscribers {
		// Full buffers drop the event; the subscriber stays registered.
		_ = sub.send(ev)
	}
}

func (n *Notifier[T]) unsubscribe(sub *Subscription[T]) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.subscribers, sub)
	_ = sub.Close()
}
