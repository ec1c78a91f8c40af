package jobboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	careerguide "careerguide"
	"careerguide/internal/jobboard"
	"careerguide/pkg/domain"
	"careerguide/pkg/jobfeed"
	mockjobfeed "careerguide/pkg/jobfeed/mock"
	"careerguide/pkg/jobfeed/static"
	mocknotify "careerguide/pkg/notify/mock"
	"careerguide/pkg/serrors"
	"careerguide/pkg/storage"
	"careerguide/pkg/storage/memory"
	mockstorage "careerguide/pkg/storage/mock"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return now }

func newMemoryBoard(t *testing.T, retention time.Duration) jobboard.Board {
	t.Helper()

	b, err := jobboard.New(memory.New(), nil, jobboard.Options{
		MaxAttempts:     3,
		RefreshInterval: time.Hour,
		Retention:       retention,
		Now:             fixedNow,
	}, static.New(careerguide.MockJobFeed, static.Options{Now: fixedNow}))
	require.NoError(t, err)

	return b
}

// expectWithTx wires Storage.WithTx to execute the callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestBoard_RefreshImportsInlineWithoutQueue(t *testing.T) {
	b := newMemoryBoard(t, 30*24*time.Hour)
	ctx := context.Background()

	results, err := b.Refresh(ctx, "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, static.Name, results[0].Source)
	require.False(t, results[0].Queued)
	require.NotNil(t, results[0].Event)
	require.Equal(t, 12, results[0].Event.Imported)
	require.Equal(t, int64(2), results[0].Event.Pruned)

	listings, next, err := b.Search(ctx, storage.ListingFilter{}, "", 0)
	require.NoError(t, err)
	require.Len(t, listings, 10)
	require.Empty(t, next)
	require.Equal(t, "feed-001", listings[0].ExternalID)
	require.Equal(t, "feed-010", listings[9].ExternalID)
}

func TestBoard_SearchPaginates(t *testing.T) {
	b := newMemoryBoard(t, 0)
	ctx := context.Background()

	_, _, err := b.Import(ctx, static.Name)
	require.NoError(t, err)

	var seen []string
	cursor := ""
	for range 3 {
		page, next, err := b.Search(ctx, storage.ListingFilter{}, cursor, 5)
		require.NoError(t, err)
		for _, l := range page {
			seen = append(seen, l.ExternalID)
		}
		cursor = next
		if cursor == "" {
			break
		}
	}
	require.Empty(t, cursor)
	require.Len(t, seen, 12)
	require.Equal(t, "feed-012", seen[11])
}

func TestBoard_SearchPaginatesTiedTimestamps(t *testing.T) {
	store := memory.New()
	b, err := jobboard.New(store, nil, jobboard.Options{Now: fixedNow})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.UpsertListings(ctx,
		domain.JobListing{Source: "static", ExternalID: "1", Title: "A", Type: domain.JobTypeFullTime, PostedAt: now},
		domain.JobListing{Source: "mirror", ExternalID: "1", Title: "B", Type: domain.JobTypeFullTime, PostedAt: now},
	)
	require.NoError(t, err)

	page, next, err := b.Search(ctx, storage.ListingFilter{}, "", 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.NotEmpty(t, next)
	sources := []string{page[0].Source}

	page, next, err = b.Search(ctx, storage.ListingFilter{}, next, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Empty(t, next)
	sources = append(sources, page[0].Source)

	require.ElementsMatch(t, []string{"static", "mirror"}, sources)
}

func TestBoard_SearchRejectsInvalidCursor(t *testing.T) {
	b := newMemoryBoard(t, 0)

	for _, cursor := range []string{"2026-03-09T08:00:00Z", "yesterday_00000000-0000-0000-0000-000000000000", "2026-03-09T08:00:00Z_nope"} {
		_, _, err := b.Search(context.Background(), storage.ListingFilter{}, cursor, 1)
		require.ErrorIs(t, err, serrors.ErrBadRequest, "cursor %q", cursor)
	}
}

func TestBoard_SearchFilters(t *testing.T) {
	b := newMemoryBoard(t, 0)
	ctx := context.Background()

	_, _, err := b.Import(ctx, static.Name)
	require.NoError(t, err)

	tech, _, err := b.Search(ctx, storage.ListingFilter{Location: "bengaluru", Category: "Technology"}, "", 0)
	require.NoError(t, err)
	require.Len(t, tech, 3)

	interns, _, err := b.Search(ctx, storage.ListingFilter{Type: "Internship"}, "", 0)
	require.NoError(t, err)
	require.Len(t, interns, 2)

	partTime, _, err := b.Search(ctx, storage.ListingFilter{Type: "part-time"}, "", 0)
	require.NoError(t, err)
	require.Len(t, partTime, 1)
	require.Equal(t, "feed-009", partTime[0].ExternalID)

	_, _, err = b.Search(ctx, storage.ListingFilter{Type: "gig"}, "", 0)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, _, err = b.Search(ctx, storage.ListingFilter{}, "yesterday", 0)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestBoard_Listing(t *testing.T) {
	b := newMemoryBoard(t, 0)
	ctx := context.Background()

	_, _, err := b.Import(ctx, static.Name)
	require.NoError(t, err)

	page, _, err := b.Search(ctx, storage.ListingFilter{}, "", 1)
	require.NoError(t, err)

	got, err := b.Listing(ctx, page[0].ID)
	require.NoError(t, err)
	require.Equal(t, page[0].Title, got.Title)

	_, err = b.Listing(ctx, domain.JobID{})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestBoard_ImportIsIdempotent(t *testing.T) {
	b := newMemoryBoard(t, 0)
	ctx := context.Background()

	for range 2 {
		_, _, err := b.Import(ctx, static.Name)
		require.NoError(t, err)
	}

	listings, _, err := b.Search(ctx, storage.ListingFilter{}, "", jobboard.MaxPageSize)
	require.NoError(t, err)
	require.Len(t, listings, 12)
}

func TestBoard_UnknownSource(t *testing.T) {
	b := newMemoryBoard(t, 0)
	ctx := context.Background()

	_, err := b.Refresh(ctx, "indeed")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, _, err = b.Import(ctx, "indeed")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestBoard_RefreshEnqueuesJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	a := mockjobfeed.NewMockProvider(ctrl)
	a.EXPECT().Name().Return("a").AnyTimes()
	c := mockjobfeed.NewMockProvider(ctrl)
	c.EXPECT().Name().Return("c").AnyTimes()

	b, err := jobboard.New(st, nil, jobboard.Options{MaxAttempts: 4, RefreshInterval: time.Hour}, a, c)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, b.Sources())

	gomock.InOrder(
		st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				refresh, ok := args.(jobboard.RefreshArgs)
				require.True(t, ok)
				require.Equal(t, "a", refresh.Source)
				require.Equal(t, 4, refresh.InsertOpts().MaxAttempts)
				require.Equal(t, time.Hour, refresh.InsertOpts().UniqueOpts.ByPeriod)

				return true, nil
			}),
		st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil),
	)

	results, err := b.Refresh(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, []jobboard.RefreshResult{
		{Source: "a", Queued: true},
		{Source: "c", Queued: false},
	}, results)
}

func TestBoard_DuplicateProviders(t *testing.T) {
	p := static.New(careerguide.MockJobFeed, static.Options{})
	_, err := jobboard.New(memory.New(), nil, jobboard.Options{}, p, p)
	require.Error(t, err)
}

func TestBoard_ImportPublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	pub := mocknotify.NewMockPublisher(ctrl)
	p := mockjobfeed.NewMockProvider(ctrl)
	p.EXPECT().Name().Return("feed").AnyTimes()

	b, err := jobboard.New(st, pub, jobboard.Options{Retention: 24 * time.Hour, Now: fixedNow}, p)
	require.NoError(t, err)

	status := jobfeed.RateLimitStatus{Limit: 10, Remaining: 9, ResetAt: now.Add(time.Minute)}
	listings := []domain.JobListing{{Source: "feed", ExternalID: "1", Title: "Tester", PostedAt: now}}
	p.EXPECT().Fetch(gomock.Any()).Return(listings, status, nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpsertListings(gomock.Any(), listings[0]).Return(listings, nil)
		tx.EXPECT().PruneListings(gomock.Any(), "feed", now.Add(-24*time.Hour)).Return(int64(3), nil)
	})

	// publish failures are logged only
	pub.EXPECT().Publish(gomock.Any(), domain.FeedEvent{Source: "feed", Imported: 1, Pruned: 3, At: now}).
		Return(errors.New("broker down"))

	event, gotStatus, err := b.Import(context.Background(), "feed")
	require.NoError(t, err)
	require.Equal(t, status, gotStatus)
	require.Equal(t, int64(3), event.Pruned)
}

func TestBoard_ImportErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	p := mockjobfeed.NewMockProvider(ctrl)
	p.EXPECT().Name().Return("feed").AnyTimes()

	b, err := jobboard.New(st, nil, jobboard.Options{}, p)
	require.NoError(t, err)

	status := jobfeed.RateLimitStatus{Limit: 1, ResetAt: now}
	p.EXPECT().Fetch(gomock.Any()).Return(nil, status, serrors.KindOnly(serrors.ErrRateLimited))

	_, gotStatus, err := b.Import(context.Background(), "feed")
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Equal(t, status, gotStatus)

	p.EXPECT().Fetch(gomock.Any()).Return([]domain.JobListing{{ExternalID: "1"}}, jobfeed.RateLimitStatus{}, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpsertListings(gomock.Any(), gomock.Any()).Return(nil, storage.ErrConflict)
	})

	_, _, err = b.Import(context.Background(), "feed")
	require.ErrorIs(t, err, serrors.ErrConflict)
}
