// Package jobboard serves job listings imported from the configured feed
// providers and schedules their periodic refresh.
package jobboard

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"careerguide/internal/config"
	"careerguide/pkg/domain"
	"careerguide/pkg/jobfeed"
	"careerguide/pkg/logger"
	"careerguide/pkg/notify"
	"careerguide/pkg/serrors"
	"careerguide/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultPageSize is used when a search does not ask for a limit.
	DefaultPageSize = 20
	// MaxPageSize caps the limit of a single search.
	MaxPageSize = 100
)

// Options configure refresh jobs and listing retention.
type Options struct {
	// MaxAttempts is the maximum number of attempts of a refresh job.
	MaxAttempts int
	// RefreshInterval is the period during which a second refresh of the same
	// source is considered a duplicate.
	RefreshInterval time.Duration
	// Retention drops listings posted longer ago than this after an import.
	// Zero keeps everything.
	Retention time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:     cfg.JobFeed.MaxAttempts,
		RefreshInterval: cfg.JobFeed.RefreshInterval,
		Retention:       cfg.JobFeed.Retention,
	}
}

type board struct {
	options   Options
	storage   storage.Storage
	providers map[string]jobfeed.Provider
	sources   []string
	publisher notify.Publisher
}

// New creates a Board importing from providers. Provider names must be unique.
func New(strg storage.Storage, publisher notify.Publisher, options Options, providers ...jobfeed.Provider) (Board, error) {
	if options.Now == nil {
		options.Now = time.Now
	}
	if publisher == nil {
		publisher = notify.Nop{}
	}

	b := &board{
		options:   options,
		storage:   strg,
		providers: make(map[string]jobfeed.Provider, len(providers)),
		publisher: publisher,
	}
	for _, p := range providers {
		name := p.Name()
		if _, dup := b.providers[name]; dup {
			return nil, fmt.Errorf("duplicate job feed provider %q", name)
		}
		b.providers[name] = p
		b.sources = append(b.sources, name)
	}

	return b, nil
}

// Sources returns the provider names in registration order.
func (b *board) Sources() []string {
	return slices.Clone(b.sources)
}

// ParseJobType accepts job types written with dashes or spaces and in any
// case. The empty string is accepted and matches every type.
func ParseJobType(s string) (domain.JobType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	if s == "" {
		return "", nil
	}

	t := domain.JobType(s)
	if !t.Valid() {
		return "", serrors.With(serrors.ErrBadRequest, "invalid job type %q", s)
	}

	return t, nil
}

// cursorSep joins the posted_at and id halves of a page cursor.
const cursorSep = "_"

func encodeCursor(c storage.ListingCursor) string {
	return c.PostedAt.UTC().Format(time.RFC3339Nano) + cursorSep + uuid.UUID(c.ID).String()
}

func parseCursor(s string) (storage.ListingCursor, error) {
	ts, id, ok := strings.Cut(s, cursorSep)
	if !ok {
		return storage.ListingCursor{}, serrors.With(serrors.ErrBadRequest, "invalid cursor")
	}
	postedAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return storage.ListingCursor{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return storage.ListingCursor{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	return storage.ListingCursor{PostedAt: postedAt, ID: domain.JobID(u)}, nil
}

// Search returns a page of listings matching filter. The cursor is taken from
// the previous page and names its last listing by posted_at and id, so
// listings sharing a timestamp are never skipped. The returned cursor is
// empty on the last page.
func (b *board) Search(ctx context.Context,
	filter storage.ListingFilter,
	cursor string,
	limit uint) ([]domain.JobListing, string, error) {
	var after storage.ListingCursor
	if cursor != "" {
		c, err := parseCursor(cursor)
		if err != nil {
			return nil, "", err
		}
		after = c
	}

	jobType, err := ParseJobType(string(filter.Type))
	if err != nil {
		return nil, "", err
	}
	filter.Type = jobType

	switch {
	case limit == 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}

	page, err := b.storage.Listings(ctx, filter, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get listings: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = encodeCursor(*page.NextCursor)
	}

	return page.Listings, next, nil
}

// Listing fetches a single listing by ID.
func (b *board) Listing(ctx context.Context, id domain.JobID) (*domain.JobListing, error) {
	res, err := b.storage.ListingByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get listing: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job listing not found")
	}

	return res, nil
}

func (b *board) provider(source string) (jobfeed.Provider, error) {
	p, ok := b.providers[source]
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "unknown job feed %q", source)
	}

	return p, nil
}

// Refresh enqueues a refresh job for source, or for every provider when
// source is empty. Backends without a job queue import inline instead.
func (b *board) Refresh(ctx context.Context, source string) ([]RefreshResult, error) {
	sources := b.sources
	if source != "" {
		if _, err := b.provider(source); err != nil {
			return nil, err
		}
		sources = []string{source}
	}

	results := make([]RefreshResult, 0, len(sources))
	for _, src := range sources {
		queued, err := b.storage.AddJob(ctx, NewRefreshArgs(src, b.options.MaxAttempts, b.options.RefreshInterval), nil)
		switch {
		case errors.Is(err, storage.ErrNoQueue):
			event, _, err := b.Import(ctx, src)
			if err != nil {
				return results, err
			}
			results = append(results, RefreshResult{Source: src, Event: event})
		case err != nil:
			return results, fmt.Errorf("could not add refresh job: %w", err)
		default:
			results = append(results, RefreshResult{Source: src, Queued: queued})
		}
	}

	return results, nil
}

// Import fetches every listing of source, upserts them, prunes listings
// beyond the retention window and publishes a FeedEvent. The provider's
// rate-limit status is returned even when the fetch failed.
func (b *board) Import(ctx context.Context, source string) (*domain.FeedEvent, jobfeed.RateLimitStatus, error) {
	p, err := b.provider(source)
	if err != nil {
		return nil, jobfeed.RateLimitStatus{}, err
	}

	ctx = logger.WithFields(ctx, zap.String("source", source))

	listings, status, err := p.Fetch(ctx)
	if err != nil {
		return nil, status, fmt.Errorf("could not fetch job feed: %w", err)
	}

	now := b.options.Now()
	event := &domain.FeedEvent{Source: source, Imported: len(listings), At: now.UTC()}

	if err := b.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if len(listings) > 0 {
			if _, err := tx.UpsertListings(ctx, listings...); err != nil {
				if errors.Is(err, storage.ErrConflict) {
					return serrors.Wrap(serrors.ErrConflict, err, "conflicting job listings")
				}

				return fmt.Errorf("could not upsert listings: %w", err)
			}
		}

		if b.options.Retention > 0 {
			pruned, err := tx.PruneListings(ctx, source, now.Add(-b.options.Retention))
			if err != nil {
				return fmt.Errorf("could not prune listings: %w", err)
			}
			event.Pruned = pruned
		}

		return nil
	}); err != nil {
		return nil, status, fmt.Errorf("could not import job feed: %w", err)
	}

	logger.Info(ctx, "job feed imported", zap.Int("imported", event.Imported), zap.Int64("pruned", event.Pruned))

	if err := b.publisher.Publish(ctx, *event); err != nil {
		logger.Warn(ctx, "could not publish feed event", zap.Error(err))
	}

	return event, status, nil
}
