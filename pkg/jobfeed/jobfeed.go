// Package jobfeed defines job feed providers and the wire format they share.
//
// A feed is a JSON array of entries. Entries carry a relative posting age
// (posted_days_ago) instead of a date so that a static feed never goes stale:
// dates are rebased on the time of the fetch.
//
//go:generate mockgen -package mockjobfeed -source=jobfeed.go -destination=mock/mockjobfeed.go *
package jobfeed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"careerguide/pkg/domain"
)

// RateLimitStatus describes the provider's request budget as last reported.
// A zero ResetAt means the provider did not report one.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining is how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the window resets.
}

// Provider fetches the full current set of listings from one feed.
type Provider interface {
	// Name identifies the provider. It is stored as the listings' source.
	Name() string
	// Fetch returns the listings along with the provider's rate-limit status.
	// A serrors.ErrRateLimited error means the caller should retry after
	// ResetAt.
	Fetch(ctx context.Context) ([]domain.JobListing, RateLimitStatus, error)
}

// Entry is a single feed record.
type Entry struct {
	ExternalID    string   `json:"external_id"`
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	Type          string   `json:"type"`
	Category      string   `json:"category"`
	Salary        string   `json:"salary"`
	Skills        []string `json:"skills"`
	Description   string   `json:"description"`
	URL           string   `json:"url"`
	PostedDaysAgo int      `json:"posted_days_ago"`
}

// Decode parses a feed payload into listings for source, posted relative to
// now. Entries without an external ID or title, or with an unknown job type,
// are rejected.
func Decode(source string, data []byte, now time.Time) ([]domain.JobListing, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var entries []Entry
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("could not decode %s feed: %w", source, err)
	}

	day := now.UTC().Truncate(24 * time.Hour)
	out := make([]domain.JobListing, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.ExternalID) == "" || strings.TrimSpace(e.Title) == "" {
			return nil, fmt.Errorf("%s feed entry %d: external_id and title are required", source, i)
		}
		if _, dup := seen[e.ExternalID]; dup {
			return nil, fmt.Errorf("%s feed entry %d: duplicate external_id %q", source, i, e.ExternalID)
		}
		seen[e.ExternalID] = struct{}{}

		typ := domain.JobType(e.Type)
		if !typ.Valid() {
			return nil, fmt.Errorf("%s feed entry %s: unknown type %q", source, e.ExternalID, e.Type)
		}

		// keep the order of the feed for listings posted on the same day
		posted := day.Add(-time.Duration(e.PostedDaysAgo) * 24 * time.Hour).Add(-time.Duration(i) * time.Second)

		out = append(out, domain.JobListing{
			Source:      source,
			ExternalID:  e.ExternalID,
			Title:       e.Title,
			Company:     e.Company,
			Location:    e.Location,
			Type:        typ,
			Category:    e.Category,
			Salary:      e.Salary,
			Description: e.Description,
			Skills:      e.Skills,
			URL:         e.URL,
			PostedAt:    posted,
		})
	}

	return out, nil
}
