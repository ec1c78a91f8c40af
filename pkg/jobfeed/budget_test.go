package jobfeed_test

import (
	"context"
	"testing"
	"time"

	"careerguide/pkg/jobfeed"

	"github.com/stretchr/testify/require"
)

func reserveAsync(ctx context.Context, b *jobfeed.Budget) <-chan error {
	done := make(chan error, 1)
	go func() { done <- b.Reserve(ctx) }()

	return done
}

func TestBudget_FirstProbeThenBlocks(t *testing.T) {
	b := jobfeed.NewBudget()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	require.NoError(t, b.Reserve(ctx))

	second := reserveAsync(ctx, b)
	select {
	case <-second:
		t.Fatal("second reservation granted before the probe finished")
	case <-time.After(100 * time.Millisecond):
	}

	b.Release(ctx, jobfeed.RateLimitStatus{Limit: 1, Remaining: 1, ResetAt: time.Now().Add(time.Minute)})

	select {
	case err := <-second:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("second reservation not granted after release")
	}
}

func TestBudget_AllowsUpToRemaining(t *testing.T) {
	b := jobfeed.NewBudget()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	require.NoError(t, b.Reserve(ctx))
	b.Release(ctx, jobfeed.RateLimitStatus{Limit: 2, Remaining: 2, ResetAt: time.Now().Add(time.Minute)})

	require.NoError(t, b.Reserve(ctx))
	require.NoError(t, b.Reserve(ctx))
	_, inFlight := b.Status()
	require.Equal(t, 2, inFlight)

	third := reserveAsync(ctx, b)
	select {
	case <-third:
		t.Fatal("third reservation granted while two are in flight")
	case <-time.After(150 * time.Millisecond):
	}

	b.Release(ctx, jobfeed.RateLimitStatus{})

	select {
	case err := <-third:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("third reservation not granted after release")
	}
}

func TestBudget_WaitsForReset(t *testing.T) {
	b := jobfeed.NewBudget()
	ctx := context.Background()

	resetDelay := 300 * time.Millisecond
	require.NoError(t, b.Reserve(ctx))
	b.Release(ctx, jobfeed.RateLimitStatus{Limit: 5, Remaining: 0, ResetAt: time.Now().Add(resetDelay)})

	start := time.Now()
	require.NoError(t, b.Reserve(ctx))
	require.GreaterOrEqual(t, time.Since(start), resetDelay-75*time.Millisecond)
}

func TestBudget_ContextCanceled(t *testing.T) {
	b := jobfeed.NewBudget()
	require.NoError(t, b.Reserve(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, b.Reserve(ctx), context.DeadlineExceeded)
}

func TestBudget_MergesConservatively(t *testing.T) {
	b := jobfeed.NewBudget()
	ctx := context.Background()
	resetAt := time.Now().Add(time.Minute)

	require.NoError(t, b.Reserve(ctx))
	b.Release(ctx, jobfeed.RateLimitStatus{Limit: 10, Remaining: 5, ResetAt: resetAt})

	// same window, higher remaining is ignored
	require.NoError(t, b.Reserve(ctx))
	b.Release(ctx, jobfeed.RateLimitStatus{Limit: 10, Remaining: 8, ResetAt: resetAt})
	st, _ := b.Status()
	require.Equal(t, 5, st.Remaining)

	// new window is always adopted
	require.NoError(t, b.Reserve(ctx))
	b.Release(ctx, jobfeed.RateLimitStatus{Limit: 10, Remaining: 9, ResetAt: resetAt.Add(time.Minute)})
	st, inFlight := b.Status()
	require.Equal(t, 9, st.Remaining)
	require.Zero(t, inFlight)
}
