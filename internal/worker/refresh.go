package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"careerguide/internal/jobboard"
	"careerguide/pkg/jobfeed"
	"careerguide/pkg/logger"
	"careerguide/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// RateLimitSnooze is how long a rate-limited refresh waits when the provider
// did not say when its window resets, or reported a reset in the past.
const RateLimitSnooze = 30 * time.Second

// snoozeFor returns the wait before retrying a rate-limited refresh.
func snoozeFor(status jobfeed.RateLimitStatus) time.Duration {
	if d := time.Until(status.ResetAt); !status.ResetAt.IsZero() && d > 0 {
		return max(d, time.Second)
	}

	return RateLimitSnooze
}

// FeedRefreshWorker is a River worker importing a job feed through a
// jobboard.Board.
//
// Every source gets its own jobfeed.Budget so that concurrent refreshes never
// exceed the provider's reported rate limit. Until a provider reports a limit
// its refreshes run one at a time.
//
// A conflict or an unknown source cancels the job. A rate-limited fetch
// snoozes the job until the provider's window resets, or for RateLimitSnooze
// when the reset is unknown. Other errors are
// returned so River retries them.
type FeedRefreshWorker struct {
	river.WorkerDefaults[jobboard.RefreshArgs]

	board jobboard.Board

	mu      sync.Mutex
	budgets map[string]*jobfeed.Budget
}

// NewFeedRefreshWorker constructs a FeedRefreshWorker importing through board.
func NewFeedRefreshWorker(board jobboard.Board) *FeedRefreshWorker {
	return &FeedRefreshWorker{
		board:   board,
		budgets: make(map[string]*jobfeed.Budget),
	}
}

// Budget returns the rate-limit budget of source.
func (w *FeedRefreshWorker) Budget(source string) *jobfeed.Budget {
	w.mu.Lock()
	defer w.mu.Unlock()

	b, ok := w.budgets[source]
	if !ok {
		b = jobfeed.NewBudget()
		w.budgets[source] = b
	}

	return b
}

// Work executes a single refresh job.
func (w *FeedRefreshWorker) Work(ctx context.Context, job *river.Job[jobboard.RefreshArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("source", job.Args.Source))

	budget := w.Budget(job.Args.Source)
	if err := budget.Reserve(ctx); err != nil {
		logger.Error(ctx, "error reserving feed budget", zap.Error(err))

		return fmt.Errorf("could not reserve feed budget: %w", err)
	}

	event, status, err := w.board.Import(ctx, job.Args.Source)
	budget.Release(ctx, status)
	if err != nil {
		// a kind that is not temporary will fail the same way on every attempt
		if serrors.KindOf(err) != nil && !serrors.IsTemporary(err) {
			logger.Warn(ctx, "cancelling job feed refresh", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in refreshing job feed", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) {
			return river.JobSnooze(snoozeFor(status)) //nolint: wrapcheck
		}

		return fmt.Errorf("could not refresh job feed: %w", err)
	}

	logger.Info(ctx, "job feed refreshed", zap.Int("imported", event.Imported), zap.Int64("pruned", event.Pruned))

	return nil
}
