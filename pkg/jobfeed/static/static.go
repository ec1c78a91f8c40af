// Package static serves the bundled mock job feed. It stands in for a real
// job source: nothing is scraped or fetched over the network.
package static

import (
	"context"
	"time"

	"careerguide/pkg/domain"
	"careerguide/pkg/jobfeed"
)

// Name is the source name of the bundled feed.
const Name = "static"

// Options configures the provider.
type Options struct {
	// Name overrides the source name. Defaults to Name.
	Name string
	// Latency simulates a slow upstream.
	Latency time.Duration
	// Now returns the time posted dates are rebased on. Defaults to time.Now.
	Now func() time.Time
}

// Provider implements jobfeed.Provider over an in-memory payload.
type Provider struct {
	payload []byte
	opts    Options
}

var _ jobfeed.Provider = (*Provider)(nil)

// New returns a provider serving payload, which must be in the jobfeed format.
func New(payload []byte, opts Options) *Provider {
	if opts.Name == "" {
		opts.Name = Name
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Provider{payload: payload, opts: opts}
}

func (p *Provider) Name() string { return p.opts.Name }

// Fetch decodes the payload. The rate-limit status is always zero.
func (p *Provider) Fetch(ctx context.Context) ([]domain.JobListing, jobfeed.RateLimitStatus, error) {
	if p.opts.Latency > 0 {
		t := time.NewTimer(p.opts.Latency)
		defer t.Stop()

		select {
		case <-ctx.Done():
			return nil, jobfeed.RateLimitStatus{}, ctx.Err() //nolint: wrapcheck
		case <-t.C:
		}
	}

	listings, err := jobfeed.Decode(p.opts.Name, p.payload, p.opts.Now())
	if err != nil {
		return nil, jobfeed.RateLimitStatus{}, err
	}

	return listings, jobfeed.RateLimitStatus{}, nil
}
