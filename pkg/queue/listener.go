package queue

import (
	"log/slog"

	"github.com/dmitrymomot/tape/pkg/logger"
)

// ListenerFuncs adapts plain functions to the Listener interface.
// Nil functions are treated as no-ops.
type ListenerFuncs[T any] struct {
	AddFunc    func(q ObjectQueue[T], item T) error
	RemoveFunc func(q ObjectQueue[T]) error
}

// OnAdd calls AddFunc if set
func (f ListenerFuncs[T]) OnAdd(q ObjectQueue[T], item T) error {
	if f.AddFunc == nil {
		return nil
	}
	return f.AddFunc(q, item)
}

// OnRemove calls RemoveFunc if set
func (f ListenerFuncs[T]) OnRemove(q ObjectQueue[T]) error {
	if f.RemoveFunc == nil {
		return nil
	}
	return f.RemoveFunc(q)
}

// ChainListeners combines several listeners into one so they can share the
// single listener slot of a queue. Listeners are called in order and the
// first error stops delivery; listeners after it miss that notification.
func ChainListeners[T any](listeners ...Listener[T]) Listener[T] {
	chain := make(listenerChain[T], 0, len(listeners))
	for _, l := range listeners {
		if l != nil {
			chain = append(chain, l)
		}
	}
	return chain
}

type listenerChain[T any] []Listener[T]

func (c listenerChain[T]) OnAdd(q ObjectQueue[T], item T) error {
	for _, l := range c {
		if err := l.OnAdd(q, item); err != nil {
			return err
		}
	}
	return nil
}

func (c listenerChain[T]) OnRemove(q ObjectQueue[T]) error {
	for _, l := range c {
		if err := l.OnRemove(q); err != nil {
			return err
		}
	}
	return nil
}

// NewLogListener returns a listener that writes queue changes to log at
// debug level. It never fails.
func NewLogListener[T any](log *slog.Logger, name string) Listener[T] {
	if log == nil {
		log = slog.Default()
	}
	return &logListener[T]{
		logger: log.With(logger.Component("queue.listener"), logger.Queue(name)),
	}
}

type logListener[T any] struct {
	logger *slog.Logger
}

func (l *logListener[T]) OnAdd(q ObjectQueue[T], item T) error {
	l.logger.Debug("item added",
		logger.Event("added"),
		logger.Item(item),
		logger.Size(q.Size()),
	)
	return nil
}

func (l *logListener[T]) OnRemove(q ObjectQueue[T]) error {
	l.logger.Debug("item removed",
		logger.Event("removed"),
		logger.Size(q.Size()),
	)
	return nil
}
