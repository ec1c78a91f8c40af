package postgres

import (
	"context"
	"fmt"
	"time"

	"careerguide/pkg/domain"
	"careerguide/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	listingsTable = "job_listings"
)

// UpsertListings inserts listings and refreshes the mutable columns of rows
// that already exist for the same (source, external_id).
func (p *PgSQL) UpsertListings(ctx context.Context, listings ...domain.JobListing) ([]domain.JobListing, error) {
	if len(listings) == 0 {
		return nil, nil
	}

	rows, err := domainListingsToPg(listings)
	if err != nil {
		return nil, err
	}

	update := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	for _, col := range []string{
		"title", "company", "location", "type", "category",
		"salary", "description", "skills", "url", "posted_at",
	} {
		update[col] = goqu.L("EXCLUDED." + col)
	}

	var result []PgListing
	if err := p.Builder.Insert(listingsTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("source, external_id", update)).
		Returning(&PgListing{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not upsert listings into pg: %w", err)
	}

	return pgListingsToDomain(result)
}

func listingConditions(filter storage.ListingFilter) []exp.Expression {
	var w []exp.Expression
	if filter.Source != "" {
		w = append(w, goqu.I("source").Eq(filter.Source))
	}
	if filter.Type != "" {
		w = append(w, goqu.I("type").Eq(string(filter.Type)))
	}
	if filter.Category != "" {
		w = append(w, goqu.I("category").ILike(filter.Category))
	}
	if filter.Location != "" {
		w = append(w, goqu.I("location").ILike("%"+filter.Location+"%"))
	}
	if filter.Query != "" {
		q := "%" + filter.Query + "%"
		w = append(w, goqu.Or(
			goqu.I("title").ILike(q),
			goqu.I("company").ILike(q),
			goqu.I("category").ILike(q),
		))
	}

	return w
}

// Listings returns a page ordered by posted_at DESC, id DESC.
func (p *PgSQL) Listings(ctx context.Context,
	filter storage.ListingFilter,
	cursor storage.ListingCursor,
	limit uint,
) (storage.ListingPage, error) {
	w := listingConditions(filter)
	if !cursor.IsZero() {
		w = append(w, goqu.L("(?, ?) < (?, ?)",
			goqu.I("posted_at"), goqu.I("id"), cursor.PostedAt, uuid.UUID(cursor.ID)))
	}

	// fetch one extra to determine if there is a next page
	ds := p.Builder.From(listingsTable).
		Where(w...).
		Order(goqu.I("posted_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)

	var rows []PgListing
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.ListingPage{}, fmt.Errorf("could not fetch listings from pg: %w", err)
	}

	var more bool
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		more = limit > 0
	}

	listings, err := pgListingsToDomain(rows)
	if err != nil {
		return storage.ListingPage{}, err
	}

	var nextCursor *storage.ListingCursor
	if more {
		last := listings[len(listings)-1]
		nextCursor = &storage.ListingCursor{PostedAt: last.PostedAt.UTC(), ID: last.ID}
	}

	return storage.ListingPage{
		Listings:   listings,
		NextCursor: nextCursor,
	}, nil
}

func (p *PgSQL) ListingByID(ctx context.Context, id domain.JobID) (*domain.JobListing, error) {
	var row PgListing
	found, err := p.Builder.From(listingsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch listing by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) PruneListings(ctx context.Context, source string, postedBefore time.Time) (int64, error) {
	res, err := p.Builder.Delete(listingsTable).
		Where(
			goqu.I("source").Eq(source),
			goqu.I("posted_at").Lt(postedBefore),
		).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not prune listings in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count pruned listings: %w", err)
	}

	return n, nil
}
