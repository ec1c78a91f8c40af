package jobboard

import (
	"context"

	"careerguide/pkg/domain"
	"careerguide/pkg/jobfeed"
	"careerguide/pkg/storage"
)

// RefreshResult reports what Refresh did for one provider.
type RefreshResult struct {
	Source string
	// Queued is true when a refresh job was enqueued. It is false when an
	// identical job was already waiting or when the import ran inline.
	Queued bool
	// Event is set when the import ran inline.
	Event *domain.FeedEvent
}

//go:generate mockgen -package mockjobboard -source=interface.go -destination=mock/mockjobboard.go *
type Board interface {
	Search(ctx context.Context, filter storage.ListingFilter, cursor string, limit uint) ([]domain.JobListing, string, error)
	Listing(ctx context.Context, id domain.JobID) (*domain.JobListing, error)
	Sources() []string
	Refresh(ctx context.Context, source string) ([]RefreshResult, error)
	Import(ctx context.Context, source string) (*domain.FeedEvent, jobfeed.RateLimitStatus, error)
}
