// Package worker runs background job feed refreshes, either on River (when
// storage has a job queue) or on an in-process ticker.
package worker

import (
	"context"
	"fmt"
	"time"

	"careerguide/internal/config"
	"careerguide/internal/jobboard"
	"careerguide/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap"
)

// Options configure the refresh schedule.
type Options struct {
	// MaxWorkers is the number of refresh jobs processed concurrently.
	MaxWorkers int
	// RefreshInterval is how often every source is refreshed.
	RefreshInterval time.Duration
	// MaxAttempts is the maximum number of attempts of a periodic refresh job.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:      cfg.Worker.MaxWorkers,
		RefreshInterval: cfg.JobFeed.RefreshInterval,
		MaxAttempts:     cfg.JobFeed.MaxAttempts,
	}
}

// PeriodicJobs returns one periodic refresh job per source of board. Each runs
// on start and then every interval.
func PeriodicJobs(board jobboard.Board, options Options) []*river.PeriodicJob {
	sources := board.Sources()
	jobs := make([]*river.PeriodicJob, 0, len(sources))
	for _, source := range sources {
		jobs = append(jobs, river.NewPeriodicJob(
			river.PeriodicInterval(options.RefreshInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobboard.NewRefreshArgs(source, options.MaxAttempts, options.RefreshInterval), nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		))
	}

	return jobs
}

// Start creates and starts a River client processing refresh jobs.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	board jobboard.Board,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewFeedRefreshWorker(board))

	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: PeriodicJobs(board, options),
		Logger:       logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}

// Schedule refreshes every source of board once immediately and then every
// interval until ctx is done. It is used when storage has no job queue, in
// which case Refresh imports inline.
func Schedule(ctx context.Context, board jobboard.Board, interval time.Duration) {
	refresh := func() {
		results, err := board.Refresh(ctx, "")
		if err != nil {
			logger.Error(ctx, "could not refresh job feeds", zap.Error(err))

			return
		}
		logger.Debug(ctx, "job feeds refreshed", zap.Int("sources", len(results)))
	}

	refresh()
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			refresh()
		}
	}
}
