package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Job is the demo item stored in the queue
type Job struct {
	ID       uuid.UUID
	Name     string
	Failures int

	// Attempts is injected when the job is peeked
	Attempts *AttemptLog
}

// String keeps log output readable
func (j *Job) String() string {
	return j.Name
}

// AttemptLog counts handler attempts per job. It is shared by every job in
// a run and, like the queue, used from a single goroutine.
type AttemptLog struct {
	counts map[uuid.UUID]int
}

// NewAttemptLog returns an empty attempt log
func NewAttemptLog() *AttemptLog {
	return &AttemptLog{counts: make(map[uuid.UUID]int)}
}

// Inject attaches the log to a job. It is used as the queue injector.
func (l *AttemptLog) Inject(job *Job) error {
	job.Attempts = l
	return nil
}

// Record counts an attempt and returns its number, starting at 1
func (l *AttemptLog) Record(id uuid.UUID) int {
	l.counts[id]++
	return l.counts[id]
}

// Count returns how many attempts were recorded for id
func (l *AttemptLog) Count(id uuid.UUID) int {
	return l.counts[id]
}

// handleJob fails until the job has used up its configured failures
func handleJob(_ context.Context, job *Job) error {
	if job.Attempts == nil {
		return fmt.Errorf("job %q has no attempt log injected", job.Name)
	}

	attempt := job.Attempts.Record(job.ID)
	if attempt <= job.Failures {
		return fmt.Errorf("job %q attempt %d: %w", job.Name, attempt, ErrSimulatedFailure)
	}
	return nil
}
