package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"careerguide/internal/jobboard"
	mockjobboard "careerguide/internal/jobboard/mock"
	"careerguide/internal/worker"
	"careerguide/pkg/domain"
	"careerguide/pkg/jobfeed"
	"careerguide/pkg/logger"
	"careerguide/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, source string) *river.Job[jobboard.RefreshArgs] {
	return &river.Job[jobboard.RefreshArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   jobboard.RefreshArgs{Source: source},
	}
}

func TestFeedRefreshWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	board := mockjobboard.NewMockBoard(ctrl)
	w := worker.NewFeedRefreshWorker(board)

	rl := jobfeed.RateLimitStatus{Limit: 100, Remaining: 99, ResetAt: time.Now().Add(time.Minute)}
	board.EXPECT().Import(gomock.Any(), "static").Return(&domain.FeedEvent{Source: "static", Imported: 12}, rl, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, "static")))

	status, inFlight := w.Budget("static").Status()
	require.Equal(t, rl, status)
	require.Zero(t, inFlight)
}

func TestFeedRefreshWorker_Work_Cancels(t *testing.T) {
	for name, err := range map[string]error{
		"conflict":       serrors.With(serrors.ErrConflict, "dupe"),
		"unknown source": serrors.With(serrors.ErrNotFound, "unknown job feed"),
		"bad payload":    serrors.Wrap(serrors.ErrBadRequest, errors.New("eof"), "decoding feed"),
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			board := mockjobboard.NewMockBoard(ctrl)
			w := worker.NewFeedRefreshWorker(board)

			board.EXPECT().Import(gomock.Any(), "feed").Return(nil, jobfeed.RateLimitStatus{}, err)

			workErr := w.Work(context.Background(), makeJob(2, "feed"))
			var cancelErr *river.JobCancelError
			require.ErrorAs(t, workErr, &cancelErr)
		})
	}
}

func TestFeedRefreshWorker_Work_RateLimitedSnoozes(t *testing.T) {
	ctrl := gomock.NewController(t)
	board := mockjobboard.NewMockBoard(ctrl)
	w := worker.NewFeedRefreshWorker(board)

	resetAt := time.Now().Add(1500 * time.Millisecond)
	rl := jobfeed.RateLimitStatus{Limit: 100, Remaining: 0, ResetAt: resetAt}
	board.EXPECT().Import(gomock.Any(), "mirror").Return(nil, rl, serrors.With(serrors.ErrRateLimited, "provider rl"))

	err := w.Work(context.Background(), makeJob(3, "mirror"))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.GreaterOrEqual(t, snoozeErr.Duration, 1200*time.Millisecond)
	require.LessOrEqual(t, snoozeErr.Duration, 2*time.Second)
}

func TestFeedRefreshWorker_Work_RateLimitedWithoutResetSnoozes(t *testing.T) {
	for name, rl := range map[string]jobfeed.RateLimitStatus{
		"no status":  {},
		"past reset": {Limit: 100, ResetAt: time.Now().Add(-time.Minute)},
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			board := mockjobboard.NewMockBoard(ctrl)
			w := worker.NewFeedRefreshWorker(board)

			board.EXPECT().Import(gomock.Any(), "mirror").Return(nil, rl, serrors.With(serrors.ErrRateLimited, "provider rl"))

			err := w.Work(context.Background(), makeJob(4, "mirror"))
			var snoozeErr *river.JobSnoozeError
			require.ErrorAs(t, err, &snoozeErr)
			require.Equal(t, worker.RateLimitSnooze, snoozeErr.Duration)
		})
	}
}

func TestFeedRefreshWorker_Work_RetriesOtherErrors(t *testing.T) {
	for name, importErr := range map[string]error{
		"plain":       errors.New("boom"),
		"unavailable": serrors.With(serrors.ErrUnavailable, "feed is down"),
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			board := mockjobboard.NewMockBoard(ctrl)
			w := worker.NewFeedRefreshWorker(board)

			board.EXPECT().Import(gomock.Any(), "feed").Return(nil, jobfeed.RateLimitStatus{}, importErr)

			err := w.Work(context.Background(), makeJob(4, "feed"))
			require.ErrorIs(t, err, importErr)
			var cancelErr *river.JobCancelError
			require.NotErrorAs(t, err, &cancelErr)
			var snoozeErr *river.JobSnoozeError
			require.NotErrorAs(t, err, &snoozeErr)
		})
	}
}

func TestFeedRefreshWorker_SerializesUntilLimitKnown(t *testing.T) {
	ctrl := gomock.NewController(t)
	board := mockjobboard.NewMockBoard(ctrl)
	w := worker.NewFeedRefreshWorker(board)

	firstStarted := make(chan struct{})
	allowFirstToFinish := make(chan struct{})
	secondStarted := make(chan struct{})

	gomock.InOrder(
		board.EXPECT().Import(gomock.Any(), "static").DoAndReturn(
			func(context.Context, string) (*domain.FeedEvent, jobfeed.RateLimitStatus, error) {
				close(firstStarted)
				<-allowFirstToFinish

				return &domain.FeedEvent{}, jobfeed.RateLimitStatus{}, nil
			}),
		board.EXPECT().Import(gomock.Any(), "static").DoAndReturn(
			func(context.Context, string) (*domain.FeedEvent, jobfeed.RateLimitStatus, error) {
				close(secondStarted)

				return &domain.FeedEvent{}, jobfeed.RateLimitStatus{}, nil
			}),
	)
	// other sources have their own budget
	board.EXPECT().Import(gomock.Any(), "mirror").Return(&domain.FeedEvent{}, jobfeed.RateLimitStatus{}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	done := make(chan struct{}, 2)
	go func() { _ = w.Work(ctx, makeJob(10, "static")); done <- struct{}{} }()
	<-firstStarted

	go func() { _ = w.Work(ctx, makeJob(11, "static")); done <- struct{}{} }()

	require.NoError(t, w.Work(ctx, makeJob(12, "mirror")))

	select {
	case <-secondStarted:
		t.Fatal("second refresh started before the first finished")
	case <-time.After(100 * time.Millisecond):
	}

	close(allowFirstToFinish)

	select {
	case <-secondStarted:
	case <-time.After(2 * time.Second):
		t.Fatal("second refresh did not start after the first finished")
	}

	<-done
	<-done
}

func TestPeriodicJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	board := mockjobboard.NewMockBoard(ctrl)
	board.EXPECT().Sources().Return([]string{"static", "mirror"})

	jobs := worker.PeriodicJobs(board, worker.Options{RefreshInterval: time.Hour, MaxAttempts: 3})
	require.Len(t, jobs, 2)
}

func TestSchedule_RefreshesUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	board := mockjobboard.NewMockBoard(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	board.EXPECT().Refresh(gomock.Any(), "").DoAndReturn(
		func(context.Context, string) ([]jobboard.RefreshResult, error) {
			calls++
			if calls == 3 {
				cancel()
			}
			if calls == 2 {
				return nil, errors.New("boom")
			}

			return []jobboard.RefreshResult{{Source: "static"}}, nil
		}).Times(3)

	finished := make(chan struct{})
	go func() {
		worker.Schedule(ctx, board, 10*time.Millisecond)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("schedule did not stop after cancel")
	}
}
