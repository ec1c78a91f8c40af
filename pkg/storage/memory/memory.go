// Package memory is the default storage backend. Everything lives in process
// memory and is lost on restart. Transactions are not isolated: writes made
// inside WithTx are visible immediately and are not undone on rollback.
package memory

import (
	"bytes"
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"careerguide/pkg/domain"
	"careerguide/pkg/storage"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
)

type listingKey struct {
	source     string
	externalID string
}

type savedKey struct {
	userID domain.UserID
	kind   domain.SavedKind
	ref    string
}

type state struct {
	mu sync.RWMutex

	listings    map[domain.JobID]domain.JobListing
	listingKeys map[listingKey]domain.JobID

	saved     map[domain.SavedItemID]domain.SavedItem
	savedKeys map[savedKey]domain.SavedItemID
}

// Memory implements storage.Storage with mutex-guarded maps.
type Memory struct {
	*state

	inTx bool
	done bool
	now  func() time.Time
}

var _ storage.Storage = (*Memory)(nil)

// New returns an empty in-memory storage.
func New() *Memory {
	return &Memory{
		state: &state{
			listings:    make(map[domain.JobID]domain.JobListing),
			listingKeys: make(map[listingKey]domain.JobID),
			saved:       make(map[domain.SavedItemID]domain.SavedItem),
			savedKeys:   make(map[savedKey]domain.SavedItemID),
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (m *Memory) Close() error { return nil }

func (m *Memory) Begin(context.Context) (storage.TxStorage, error) {
	if m.inTx {
		return nil, storage.ErrAlreadyInTx
	}

	return &Memory{state: m.state, inTx: true, now: m.now}, nil
}

func (m *Memory) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit()
}

func (m *Memory) Commit() error {
	if !m.inTx || m.done {
		return storage.ErrNotInTx
	}
	m.done = true

	return nil
}

func (m *Memory) Rollback() error {
	if !m.inTx || m.done {
		return storage.ErrNotInTx
	}
	m.done = true

	return nil
}

// AddJob always fails with storage.ErrNoQueue.
func (m *Memory) AddJob(context.Context, river.JobArgs, *river.InsertOpts) (bool, error) {
	return false, storage.ErrNoQueue
}

func (m *Memory) UpsertListings(_ context.Context, listings ...domain.JobListing) ([]domain.JobListing, error) {
	if len(listings) == 0 {
		return nil, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	out := make([]domain.JobListing, 0, len(listings))
	for _, l := range listings {
		key := listingKey{source: l.Source, externalID: l.ExternalID}
		if id, ok := m.listingKeys[key]; ok {
			l.ID = id
			l.CreatedAt = m.listings[id].CreatedAt
			l.UpdatedAt = now
		} else {
			l.ID = domain.JobID(uuid.New())
			l.CreatedAt = now
			l.UpdatedAt = time.Time{}
			m.listingKeys[key] = l.ID
		}
		l.Skills = slices.Clone(l.Skills)
		m.listings[l.ID] = l
		out = append(out, l)
	}

	return out, nil
}

func matchesListing(l domain.JobListing, f storage.ListingFilter) bool {
	if f.Source != "" && l.Source != f.Source {
		return false
	}
	if f.Type != "" && l.Type != f.Type {
		return false
	}
	if f.Category != "" && !strings.EqualFold(l.Category, f.Category) {
		return false
	}
	if f.Location != "" && !containsFold(l.Location, f.Location) {
		return false
	}
	if f.Query != "" &&
		!containsFold(l.Title, f.Query) &&
		!containsFold(l.Company, f.Query) &&
		!containsFold(l.Category, f.Query) {
		return false
	}

	return true
}

// compareListings orders l against (postedAt, id) ascending; uuids compare
// bytewise like they do in postgres.
func compareListings(l domain.JobListing, postedAt time.Time, id domain.JobID) int {
	if c := l.PostedAt.Compare(postedAt); c != 0 {
		return c
	}

	return bytes.Compare(l.ID[:], id[:])
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func (m *Memory) Listings(_ context.Context,
	filter storage.ListingFilter,
	cursor storage.ListingCursor,
	limit uint,
) (storage.ListingPage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var rows []domain.JobListing
	for _, l := range m.listings {
		if !cursor.IsZero() && compareListings(l, cursor.PostedAt, cursor.ID) >= 0 {
			continue
		}
		if matchesListing(l, filter) {
			rows = append(rows, l)
		}
	}

	slices.SortFunc(rows, func(a, b domain.JobListing) int {
		return -compareListings(a, b.PostedAt, b.ID)
	})

	var next *storage.ListingCursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			last := rows[len(rows)-1]
			next = &storage.ListingCursor{PostedAt: last.PostedAt, ID: last.ID}
		}
	}

	return storage.ListingPage{Listings: rows, NextCursor: next}, nil
}

func (m *Memory) ListingByID(_ context.Context, id domain.JobID) (*domain.JobListing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	l, ok := m.listings[id]
	if !ok {
		return nil, nil
	}

	return &l, nil
}

func (m *Memory) PruneListings(_ context.Context, source string, postedBefore time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for id, l := range m.listings {
		if l.Source == source && l.PostedAt.Before(postedBefore) {
			delete(m.listings, id)
			delete(m.listingKeys, listingKey{source: l.Source, externalID: l.ExternalID})
			n++
		}
	}

	return n, nil
}

func (m *Memory) StoreSavedItem(_ context.Context, item domain.SavedItem) (*domain.SavedItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := savedKey{userID: item.UserID, kind: item.Kind, ref: item.Ref}
	if _, dup := m.savedKeys[key]; dup {
		return nil, storage.ErrConflict
	}

	item.ID = domain.SavedItemID(uuid.New())
	item.CreatedAt = m.now()
	m.saved[item.ID] = item
	m.savedKeys[key] = item.ID

	return &item, nil
}

func (m *Memory) SavedItems(_ context.Context, userID domain.UserID, kind domain.SavedKind) ([]domain.SavedItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.SavedItem
	for _, it := range m.saved {
		if it.UserID != userID || (kind != "" && it.Kind != kind) {
			continue
		}
		out = append(out, it)
	}
	slices.SortFunc(out, func(a, b domain.SavedItem) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(uuid.UUID(b.ID).String(), uuid.UUID(a.ID).String())
	})

	return out, nil
}

func (m *Memory) DeleteSavedItem(_ context.Context, userID domain.UserID, id domain.SavedItemID) (*domain.SavedItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	it, ok := m.saved[id]
	if !ok || it.UserID != userID {
		return nil, nil
	}
	delete(m.saved, id)
	delete(m.savedKeys, savedKey{userID: it.UserID, kind: it.Kind, ref: it.Ref})

	return &it, nil
}
