// Package storage defines the persistence interfaces for job listings, saved
// items and background jobs. Backends live in sub-packages (memory, postgres).
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"time"

	"careerguide/pkg/domain"
)

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	ListingStorage
	SavedStorage
	JobStorage
}

// TxStorage describes a storage handle that operates within a transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb and commits on success or rolls
	// back if cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}

// ListingFilter narrows a listing search. Empty fields match everything.
type ListingFilter struct {
	// Query is matched case-insensitively against title, company and category.
	Query    string
	Location string
	Type     domain.JobType
	Category string
	Source   string
}

// ListingCursor is the keyset position of a listing in posted_at DESC, id DESC
// order. The zero cursor starts from the newest listing.
type ListingCursor struct {
	PostedAt time.Time
	ID       domain.JobID
}

func (c ListingCursor) IsZero() bool { return c.PostedAt.IsZero() }

// ListingPage is a page of listings ordered by posted_at descending.
type ListingPage struct {
	Listings []domain.JobListing
	// NextCursor points at the last listing when more pages exist.
	NextCursor *ListingCursor
}

// ListingStorage persists job listings imported from feeds.
type ListingStorage interface {
	// UpsertListings inserts listings or updates the existing row with the same
	// (source, external_id). The stored rows are returned.
	UpsertListings(ctx context.Context, listings ...domain.JobListing) ([]domain.JobListing, error)
	// Listings returns listings ordered strictly after cursor by
	// (posted_at DESC, id DESC) matching filter, at most limit of them.
	Listings(ctx context.Context, filter ListingFilter, cursor ListingCursor, limit uint) (ListingPage, error)
	// ListingByID returns nil when the listing does not exist.
	ListingByID(ctx context.Context, id domain.JobID) (*domain.JobListing, error)
	// PruneListings deletes listings of source posted before the given time
	// and returns how many were removed.
	PruneListings(ctx context.Context, source string, postedBefore time.Time) (int64, error)
}

// SavedStorage persists per-user saved items.
type SavedStorage interface {
	// StoreSavedItem returns ErrConflict when the user already saved the same
	// (kind, ref).
	StoreSavedItem(ctx context.Context, item domain.SavedItem) (*domain.SavedItem, error)
	// SavedItems lists the user's items, newest first. An empty kind lists all.
	SavedItems(ctx context.Context, userID domain.UserID, kind domain.SavedKind) ([]domain.SavedItem, error)
	// DeleteSavedItem returns the deleted item, or nil if it was not found.
	DeleteSavedItem(ctx context.Context, userID domain.UserID, id domain.SavedItemID) (*domain.SavedItem, error)
}
