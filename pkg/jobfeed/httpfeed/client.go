// Package httpfeed fetches a job feed published as a JSON document over HTTP,
// for example a copy of the bundled mock feed hosted next to the site. The
// document uses the jobfeed wire format.
package httpfeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"careerguide/pkg/domain"
	"careerguide/pkg/jobfeed"
	"careerguide/pkg/serrors"
)

// MaxBodySize caps how much of a feed response is read.
const MaxBodySize = 8 << 20

// Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	name       string
	url        string
	token      string
	now        func() time.Time
}

var _ jobfeed.Provider = (*Client)(nil)

// New returns a provider named name that GETs url. A non-empty token is sent
// as a bearer token.
func New(httpClient *http.Client, name, url, token string) *Client {
	return &Client{
		httpClient: httpClient,
		name:       name,
		url:        url,
		token:      token,
		now:        time.Now,
	}
}

func (c *Client) Name() string { return c.name }

// ParseRateLimit reads the X-RateLimit-* headers. Missing headers yield a zero
// status.
func ParseRateLimit(h http.Header) (jobfeed.RateLimitStatus, error) {
	resetStr := h.Get("X-RateLimit-Reset")
	if resetStr == "" {
		return jobfeed.RateLimitStatus{}, nil
	}

	resetAt, err := time.Parse(time.RFC3339Nano, resetStr)
	if err != nil {
		return jobfeed.RateLimitStatus{}, fmt.Errorf("could not parse reset at: %w", err)
	}

	atoi := func(s string) int {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}

		return n
	}

	return jobfeed.RateLimitStatus{
		Limit:     atoi(h.Get("X-RateLimit-Limit")),
		Remaining: atoi(h.Get("X-RateLimit-Remaining")),
		ResetAt:   resetAt,
	}, nil
}

// retryAfter parses a Retry-After header given in seconds or as an HTTP date.
func retryAfter(v string, now time.Time) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return now.Add(time.Duration(secs) * time.Second), true
	}
	if t, err := http.ParseTime(v); err == nil {
		return t, true
	}

	return time.Time{}, false
}

func (c *Client) Fetch(ctx context.Context) ([]domain.JobListing, jobfeed.RateLimitStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, jobfeed.RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, jobfeed.RateLimitStatus{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl, err := ParseRateLimit(resp.Header)
	if err != nil {
		return nil, rl, fmt.Errorf("could not parse rate limit: %w", err)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, rl, fmt.Errorf("could not read response body: %w", err)
	}
	if len(b) > MaxBodySize {
		return nil, rl, fmt.Errorf("feed %s response exceeds %d bytes", c.name, MaxBodySize)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		if rl.ResetAt.IsZero() {
			if at, ok := retryAfter(resp.Header.Get("Retry-After"), c.now()); ok {
				rl.ResetAt = at
			}
		}

		return nil, rl, serrors.With(serrors.ErrRateLimited, "feed %s rate limited: %s", c.name, strings.TrimSpace(string(b)))
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, rl, serrors.With(serrors.ErrUnavailable, "feed %s returned %d: %s", c.name, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, rl, fmt.Errorf("feed %s returned %d: %s", c.name, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	listings, err := jobfeed.Decode(c.name, b, c.now())
	if err != nil {
		return nil, rl, err
	}

	return listings, rl, nil
}
