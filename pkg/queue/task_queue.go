package queue

var _ ObjectQueue[any] = (*TaskQueue[any])(nil)

// TaskQueue decorates another queue. It injects members into items handed
// out by Peek and reports itself, not the delegate, to listeners.
//
// TaskQueue stores nothing itself and is not safe for concurrent use.
type TaskQueue[T any] struct {
	delegate ObjectQueue[T]
	injector Injector[T]
}

// NewTaskQueue wraps delegate. The injector is optional.
func NewTaskQueue[T any](delegate ObjectQueue[T], injector Injector[T]) (*TaskQueue[T], error) {
	if delegate == nil {
		return nil, ErrNilDelegate
	}

	return &TaskQueue[T]{
		delegate: delegate,
		injector: injector,
	}, nil
}

// Peek returns the delegate's head item after running the injector on it.
// Injector errors are returned as-is; the item stays in the queue.
func (q *TaskQueue[T]) Peek() (T, bool, error) {
	item, ok, err := q.delegate.Peek()
	if err != nil || !ok {
		return item, ok, err
	}

	if q.injector != nil {
		if err := q.injector.InjectMembers(item); err != nil {
			var zero T
			return zero, false, err
		}
	}
	return item, true, nil
}

// Size returns the delegate's size
func (q *TaskQueue[T]) Size() int {
	return q.delegate.Size()
}

// Add forwards to the delegate with the retry budget normalized
func (q *TaskQueue[T]) Add(item T, opts ...AddOption) error {
	return q.delegate.Add(item, newAddOptions(opts).forward()...)
}

// Remove forwards to the delegate
func (q *TaskQueue[T]) Remove() error {
	return q.delegate.Remove()
}

// Drop forwards to the delegate
func (q *TaskQueue[T]) Drop() (bool, error) {
	return q.delegate.Drop()
}

// Clear forwards to the delegate
func (q *TaskQueue[T]) Clear() {
	q.delegate.Clear()
}

// SetListener installs l on the delegate behind a listener that substitutes
// this TaskQueue as the queue argument.
func (q *TaskQueue[T]) SetListener(l Listener[T]) error {
	if l == nil {
		return q.delegate.SetListener(nil)
	}
	return q.delegate.SetListener(&ownerListener[T]{owner: q, next: l})
}

// ownerListener rewrites the queue argument of every callback to owner.
type ownerListener[T any] struct {
	owner ObjectQueue[T]
	next  Listener[T]
}

func (l *ownerListener[T]) OnAdd(_ ObjectQueue[T], item T) error {
	return l.next.OnAdd(l.owner, item)
}

func (l *ownerListener[T]) OnRemove(_ ObjectQueue[T]) error {
	return l.next.OnRemove(l.owner)
}
