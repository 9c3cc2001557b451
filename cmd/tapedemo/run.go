package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/tape/pkg/logger"
	"github.com/dmitrymomot/tape/pkg/queue"
)

// Summary reports the result of a demo run
type Summary struct {
	Enqueued  int
	Completed int
	Dropped   int
	Remaining int
	Rounds    int
	Added     int
	Removed   int

	// Delivered counts events the subscriber received. It can be lower than
	// Added+Removed because the notifier skips subscribers with full buffers.
	Delivered int
}

func (s Summary) String() string {
	return fmt.Sprintf(
		"enqueued=%d completed=%d dropped=%d remaining=%d rounds=%d events(added=%d removed=%d delivered=%d)",
		s.Enqueued, s.Completed, s.Dropped, s.Remaining, s.Rounds, s.Added, s.Removed, s.Delivered,
	)
}

// run enqueues the manifest jobs and drains the queue in rounds. A round
// ends when a failed job is retained at the head; the next round retries it.
func run(ctx context.Context, log *slog.Logger, cfg queue.Config, manifest Manifest, maxRounds int) (Summary, error) {
	var summary Summary

	attempts := NewAttemptLog()
	tasks, err := queue.NewTaskQueue[*Job](
		queue.NewMemoryQueue[*Job](queue.WithLogger(log)),
		queue.InjectorFunc[*Job](attempts.Inject),
	)
	if err != nil {
		return summary, err
	}

	notifier := queue.NewNotifier[*Job](cfg.EventBufferSize)
	sub := notifier.Subscribe(ctx)

	var g errgroup.Group
	g.Go(func() error {
		for range sub.Events() {
			summary.Delivered++
		}
		return nil
	})

	// The counting goroutine owns Delivered until Wait returns
	runErr := drive(ctx, log, cfg, manifest, maxRounds, tasks, notifier, &summary)

	_ = notifier.Close()
	if err := g.Wait(); err != nil {
		return summary, err
	}
	return summary, runErr
}

func drive(
	ctx context.Context,
	log *slog.Logger,
	cfg queue.Config,
	manifest Manifest,
	maxRounds int,
	tasks *queue.TaskQueue[*Job],
	notifier *queue.Notifier[*Job],
	summary *Summary,
) error {
	counter := queue.ListenerFuncs[*Job]{
		AddFunc: func(queue.ObjectQueue[*Job], *Job) error {
			summary.Added++
			return nil
		},
		RemoveFunc: func(queue.ObjectQueue[*Job]) error {
			summary.Removed++
			return nil
		},
	}
	listener := queue.ChainListeners[*Job](
		counter,
		queue.NewLogListener[*Job](log, "demo"),
		notifier,
	)
	if err := tasks.SetListener(listener); err != nil {
		return err
	}

	for _, js := range manifest.Jobs {
		opts := cfg.AddOptions()
		if js.TTL > 0 {
			opts = append(opts, queue.WithTTL(time.Duration(js.TTL)))
		}
		if js.Retries != 0 {
			opts = append(opts, queue.WithRetryBudget(js.Retries))
		}

		job := &Job{ID: uuid.New(), Name: js.Name, Failures: js.Failures}
		if err := tasks.Add(job, opts...); err != nil {
			return fmt.Errorf("failed to enqueue job %q: %w", js.Name, err)
		}
		summary.Enqueued++
	}

	runner, err := queue.NewRunner[*Job](tasks, handleJob, queue.WithRunnerLogger(log))
	if err != nil {
		return err
	}

	for summary.Rounds < maxRounds {
		summary.Rounds++
		stats, err := runner.Drain(ctx)
		summary.Completed += stats.Completed
		summary.Dropped += stats.Dropped

		if err == nil {
			break
		}
		if !errors.Is(err, queue.ErrTaskFailed) {
			return err
		}
		log.InfoContext(ctx, "round ended with a retained job",
			slog.Int("round", summary.Rounds),
			logger.Size(tasks.Size()),
			logger.Error(err),
		)
	}

	summary.Remaining = tasks.Size()
	return nil
}
