package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"careerguide/pkg/domain"
	"careerguide/pkg/storage"
	"careerguide/pkg/storage/memory"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
)

func listing(source, externalID string, posted time.Time) domain.JobListing {
	return domain.JobListing{
		Source:     source,
		ExternalID: externalID,
		Title:      "Title " + externalID,
		Company:    "Acme",
		Location:   "Pune",
		Type:       domain.JobTypeFullTime,
		Category:   "engineering",
		PostedAt:   posted,
	}
}

func TestMemory_UpsertListings(t *testing.T) {
	ctx := context.Background()
	m := memory.New()
	now := time.Now().UTC()

	res, err := m.UpsertListings(ctx, listing("feed", "1", now), listing("feed", "2", now))
	require.NoError(t, err)
	require.Len(t, res, 2)
	firstID := res[0].ID

	updated := listing("feed", "1", now)
	updated.Title = "Renamed"
	res, err = m.UpsertListings(ctx, updated)
	require.NoError(t, err)
	require.Equal(t, firstID, res[0].ID)
	require.False(t, res[0].UpdatedAt.IsZero())

	got, err := m.ListingByID(ctx, firstID)
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Title)

	missing, err := m.ListingByID(ctx, domain.JobID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestMemory_ListingsPagination(t *testing.T) {
	ctx := context.Background()
	m := memory.New()
	base := time.Now().UTC().Truncate(time.Second)

	for i := range 5 {
		_, err := m.UpsertListings(ctx, listing("feed", string(rune('a'+i)), base.Add(-time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}

	page, err := m.Listings(ctx, storage.ListingFilter{}, storage.ListingCursor{}, 2)
	require.NoError(t, err)
	require.Len(t, page.Listings, 2)
	require.Equal(t, "a", page.Listings[0].ExternalID)
	require.NotNil(t, page.NextCursor)

	page, err = m.Listings(ctx, storage.ListingFilter{}, *page.NextCursor, 10)
	require.NoError(t, err)
	require.Len(t, page.Listings, 3)
	require.Equal(t, "c", page.Listings[0].ExternalID)
	require.Nil(t, page.NextCursor)
}

func TestMemory_ListingsPaginationTies(t *testing.T) {
	ctx := context.Background()
	m := memory.New()
	posted := time.Now().UTC().Truncate(time.Second)

	_, err := m.UpsertListings(ctx, listing("static", "1", posted), listing("mirror", "1", posted))
	require.NoError(t, err)

	var (
		seen   []string
		cursor storage.ListingCursor
	)
	for range 3 {
		page, err := m.Listings(ctx, storage.ListingFilter{}, cursor, 1)
		require.NoError(t, err)
		for _, l := range page.Listings {
			seen = append(seen, l.Source)
		}
		if page.NextCursor == nil {
			break
		}
		cursor = *page.NextCursor
	}
	require.ElementsMatch(t, []string{"static", "mirror"}, seen)
}

func TestMemory_ListingsFilter(t *testing.T) {
	ctx := context.Background()
	m := memory.New()
	now := time.Now().UTC()

	a := listing("feed", "a", now)
	a.Title = "Junior Data Analyst"
	a.Location = "Bengaluru"
	b := listing("feed", "b", now.Add(-time.Hour))
	b.Type = domain.JobTypeInternship
	b.Category = "design"
	_, err := m.UpsertListings(ctx, a, b)
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter storage.ListingFilter
		want   []string
	}{
		{"query on title", storage.ListingFilter{Query: "data"}, []string{"a"}},
		{"query on company", storage.ListingFilter{Query: "acme"}, []string{"a", "b"}},
		{"location", storage.ListingFilter{Location: "bengaluru"}, []string{"a"}},
		{"type", storage.ListingFilter{Type: domain.JobTypeInternship}, []string{"b"}},
		{"category", storage.ListingFilter{Category: "Design"}, []string{"b"}},
		{"source", storage.ListingFilter{Source: "other"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := m.Listings(ctx, tt.filter, storage.ListingCursor{}, 10)
			require.NoError(t, err)
			var ids []string
			for _, l := range page.Listings {
				ids = append(ids, l.ExternalID)
			}
			require.Equal(t, tt.want, ids)
		})
	}
}

func TestMemory_PruneListings(t *testing.T) {
	ctx := context.Background()
	m := memory.New()
	now := time.Now().UTC()

	_, err := m.UpsertListings(ctx,
		listing("feed", "new", now),
		listing("feed", "old", now.Add(-48*time.Hour)),
		listing("other", "old", now.Add(-48*time.Hour)),
	)
	require.NoError(t, err)

	n, err := m.PruneListings(ctx, "feed", now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	page, err := m.Listings(ctx, storage.ListingFilter{}, storage.ListingCursor{}, 10)
	require.NoError(t, err)
	require.Len(t, page.Listings, 2)
}

func TestMemory_SavedItems(t *testing.T) {
	ctx := context.Background()
	m := memory.New()
	user := domain.UserID(uuid.New())
	other := domain.UserID(uuid.New())

	item, err := m.StoreSavedItem(ctx, domain.SavedItem{UserID: user, Kind: domain.SavedKindCareer, Ref: "doctor"})
	require.NoError(t, err)
	require.NotEqual(t, domain.SavedItemID(uuid.Nil), item.ID)

	_, err = m.StoreSavedItem(ctx, domain.SavedItem{UserID: user, Kind: domain.SavedKindCareer, Ref: "doctor"})
	require.ErrorIs(t, err, storage.ErrConflict)

	_, err = m.StoreSavedItem(ctx, domain.SavedItem{UserID: other, Kind: domain.SavedKindCareer, Ref: "doctor"})
	require.NoError(t, err)
	_, err = m.StoreSavedItem(ctx, domain.SavedItem{UserID: user, Kind: domain.SavedKindIdea, Ref: "cloud_kitchen"})
	require.NoError(t, err)

	all, err := m.SavedItems(ctx, user, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	careers, err := m.SavedItems(ctx, user, domain.SavedKindCareer)
	require.NoError(t, err)
	require.Len(t, careers, 1)

	deleted, err := m.DeleteSavedItem(ctx, other, item.ID)
	require.NoError(t, err)
	require.Nil(t, deleted, "users cannot delete each other's items")

	deleted, err = m.DeleteSavedItem(ctx, user, item.ID)
	require.NoError(t, err)
	require.Equal(t, "doctor", deleted.Ref)

	// saving again after delete is allowed
	_, err = m.StoreSavedItem(ctx, domain.SavedItem{UserID: user, Kind: domain.SavedKindCareer, Ref: "doctor"})
	require.NoError(t, err)
}

func TestMemory_Tx(t *testing.T) {
	ctx := context.Background()
	m := memory.New()

	require.ErrorIs(t, m.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, m.Rollback(), storage.ErrNotInTx)

	tx, err := m.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.(*memory.Memory).Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	require.NoError(t, tx.Commit())
	require.ErrorIs(t, tx.Commit(), storage.ErrNotInTx)

	boom := errors.New("boom")
	err = m.WithTx(ctx, func(s storage.AllStorage) error {
		_, err := s.UpsertListings(ctx, listing("feed", "x", time.Now()))
		require.NoError(t, err)

		return boom
	})
	require.ErrorIs(t, err, boom)

	// writes are not rolled back
	page, err := m.Listings(ctx, storage.ListingFilter{}, storage.ListingCursor{}, 10)
	require.NoError(t, err)
	require.Len(t, page.Listings, 1)
}

type noopArgs struct{}

func (noopArgs) Kind() string { return "noop" }

func TestMemory_AddJob(t *testing.T) {
	_, err := memory.New().AddJob(context.Background(), noopArgs{}, &river.InsertOpts{})
	require.ErrorIs(t, err, storage.ErrNoQueue)
}
