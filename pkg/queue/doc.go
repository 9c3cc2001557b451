// Package queue provides an in-process FIFO task queue with per-item expiry
// and retry budgets, a single change listener per queue, and a decorator that
// injects dependencies into items as they are handed out.
//
// The package is organised around three pieces:
//
//   - ObjectQueue: the capability contract every queue implements
//   - MemoryQueue: a FIFO kept in memory, nothing is persisted
//   - TaskQueue:   a decorator adding member injection and stable listener identity
//
// Supporting types build on the contract: ListenerFuncs, ChainListeners and
// NewLogListener for observing changes, Notifier for fanning changes out to
// other goroutines, and Runner for the peek, handle, remove-or-drop loop.
//
// # Policy
//
// Each item is stored with an optional expiry deadline and a retry budget.
// Expiry is lazy: Peek evicts expired heads (notifying OnRemove) and never
// returns them, but an expired entry behind a valid head stays until it
// reaches the head. Drop decrements a finite retry budget and removes the
// head once the budget reaches zero or its deadline has passed. A budget of
// zero passed to WithRetryBudget means unlimited, the same as UnlimitedRetries.
//
// # Usage
//
//	import (
//	    "context"
//	    "time"
//
//	    "github.com/dmitrymomot/tape/pkg/queue"
//	)
//
//	type UploadTask struct {
//	    Path   string
//	    Client *http.Client
//	}
//
//	func example(client *http.Client) error {
//	    q, err := queue.NewTaskQueue[*UploadTask](queue.NewMemoryQueue[*UploadTask](),
//	        queue.InjectorFunc[*UploadTask](func(t *UploadTask) error {
//	            t.Client = client
//	            return nil
//	        }),
//	    )
//	    if err != nil {
//	        return err
//	    }
//
//	    // Give up after three failed attempts or ten minutes
//	    return q.Add(&UploadTask{Path: "/tmp/a.jpg"},
//	        queue.WithTTL(10*time.Minute),
//	        queue.WithRetryBudget(3),
//	    )
//	}
//
// # Concurrency
//
// Queues are not safe for concurrent use and take no locks. Listener
// callbacks run synchronously on the caller's goroutine inside Add, Remove,
// Peek, Drop and SetListener. Only Notifier is safe to use from several
// goroutines.
//
// # Error Handling
//
// Remove on an empty queue returns ErrEmptyQueue. Errors returned by
// listeners and injectors are passed back to the caller unchanged, after the
// queue has already applied its own change. Runner wraps handler errors with
// ErrTaskFailed. All sentinels can be checked with errors.Is.
package queue
