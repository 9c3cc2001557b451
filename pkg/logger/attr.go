package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Queue records the queue name under the key "queue".
// An empty name returns an empty Attr.
func Queue(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("queue", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Item records a queued item under the key "item".
func Item(item any) slog.Attr {
	return slog.Any("item", item)
}

// Size records a queue size under the key "size".
func Size(n int) slog.Attr {
	return slog.Int("size", n)
}

// RetryBudget records the remaining retry budget under the key "retry_budget".
func RetryBudget(n int) slog.Attr {
	return slog.Int("retry_budget", n)
}

// Expiry records an expiry deadline under the key "expiry".
// A zero time returns an empty Attr.
func Expiry(t time.Time) slog.Attr {
	if t.IsZero() {
		return slog.Attr{}
	}
	return slog.Time("expiry", t)
}

// Outcome records a processing outcome under the key "outcome".
func Outcome(outcome string) slog.Attr {
	return slog.String("outcome", outcome)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
