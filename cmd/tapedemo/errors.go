package main

import "errors"

var (
	// ErrJobNameRequired is returned when a manifest job has no name
	ErrJobNameRequired = errors.New("job name is required")

	// ErrNegativeFailures is returned when a manifest job has a negative failure count
	ErrNegativeFailures = errors.New("failures cannot be negative")

	// ErrSimulatedFailure is returned by jobs that are configured to fail
	ErrSimulatedFailure = errors.New("simulated failure")
)
