package queue

import "log/slog"

// RunnerOption is a functional option for configuring a Runner
type RunnerOption func(*runnerOptions)

type runnerOptions struct {
	logger *slog.Logger
}

// WithRunnerLogger sets the logger for the runner
func WithRunnerLogger(logger *slog.Logger) RunnerOption {
	return func(o *runnerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
