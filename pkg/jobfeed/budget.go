package jobfeed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"careerguide/pkg/logger"

	"go.uber.org/zap"
)

// Budget shares a provider's rate limit between concurrent fetches.
//
// A fetch may start while Remaining (or Limit, once ResetAt has passed) is
// greater than the number of fetches in flight. Before the provider reported
// any status a single probe fetch is allowed. Waiters wake up when a fetch
// finishes or when the window resets.
//
// Reported statuses are merged conservatively: a new ResetAt is always
// adopted, otherwise only a lower Remaining replaces the current one.
type Budget struct {
	mu       sync.Mutex
	inFlight int
	last     *RateLimitStatus
	// finished wakes one waiter; sends never block.
	finished chan struct{}
}

// NewBudget returns a budget with no known status.
func NewBudget() *Budget {
	return &Budget{finished: make(chan struct{})}
}

// Reserve blocks until a fetch may start or ctx is done. Every successful
// Reserve must be paired with a Release.
func (b *Budget) Reserve(ctx context.Context) error {
	for {
		b.mu.Lock()

		if b.last == nil {
			b.last = &RateLimitStatus{
				Limit:     1,
				Remaining: 1,
				ResetAt:   time.Now().Add(365 * 24 * time.Hour),
			}
		}

		remaining := b.last.Remaining
		if time.Now().After(b.last.ResetAt) {
			remaining = b.last.Limit
		}

		if remaining-b.inFlight > 0 {
			b.inFlight++
			b.mu.Unlock()

			return nil
		}

		resetAt := b.last.ResetAt
		inFlight := b.inFlight
		b.mu.Unlock()

		logger.Debug(ctx, "waiting for feed budget",
			zap.Int("remaining", remaining),
			zap.Time("resetAt", resetAt),
			zap.Int("inFlight", inFlight))

		timer := time.NewTimer(time.Until(resetAt))
		select {
		case <-ctx.Done():
			timer.Stop()

			return fmt.Errorf("timeout waiting for feed budget: %w", ctx.Err())
		case <-b.finished:
			timer.Stop()
		case <-timer.C:
		}
	}
}

// Release returns a reservation and records the status the provider reported.
// A zero status leaves the known status unchanged.
func (b *Budget) Release(ctx context.Context, status RateLimitStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.inFlight > 0 {
		b.inFlight--
	}

	select {
	case b.finished <- struct{}{}:
	default:
	}

	if status.ResetAt.IsZero() {
		return
	}

	switch {
	case b.last == nil, !b.last.ResetAt.Equal(status.ResetAt), status.Remaining < b.last.Remaining:
		b.last = &status
		logger.Debug(ctx, "feed rate limit updated",
			zap.Int("limit", status.Limit),
			zap.Int("remaining", status.Remaining),
			zap.Time("resetAt", status.ResetAt))
	}
}

// Status returns the last known status and the number of fetches in flight.
func (b *Budget) Status() (RateLimitStatus, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.last == nil {
		return RateLimitStatus{}, b.inFlight
	}

	return *b.last, b.inFlight
}
