package queue

import "time"

// Config holds enqueue defaults and notifier sizing for a queue
type Config struct {
	DefaultTTL         time.Duration `env:"QUEUE_DEFAULT_TTL" envDefault:"0s"`
	DefaultRetryBudget int           `env:"QUEUE_DEFAULT_RETRY_BUDGET" envDefault:"-1"`
	EventBufferSize    int           `env:"QUEUE_EVENT_BUFFER_SIZE" envDefault:"16"`
}

// AddOptions converts the configured defaults into options for Add.
// Options passed after these to Add override them.
func (c Config) AddOptions() []AddOption {
	opts := make([]AddOption, 0, 2)
	if c.DefaultTTL > 0 {
		opts = append(opts, WithTTL(c.DefaultTTL))
	}
	if c.DefaultRetryBudget != 0 {
		opts = append(opts, WithRetryBudget(c.DefaultRetryBudget))
	}
	return opts
}
