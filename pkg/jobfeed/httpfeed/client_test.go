package httpfeed_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"careerguide/pkg/jobfeed/httpfeed"
	"careerguide/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *httpfeed.Client {
	return httpfeed.New(&http.Client{Transport: fn}, "mirror", "https://feeds.example.com/jobs.json", "test-token")
}

func rateLimitHeaders(limit, remaining string, resetAt time.Time) http.Header {
	h := http.Header{}
	h.Set("X-RateLimit-Limit", limit)
	h.Set("X-RateLimit-Remaining", remaining)
	h.Set("X-RateLimit-Reset", resetAt.Format(time.RFC3339Nano))

	return h
}

func TestParseRateLimit(t *testing.T) {
	resetAt := time.Date(2025, 1, 2, 3, 4, 5, 678900000, time.UTC)

	rl, err := httpfeed.ParseRateLimit(rateLimitHeaders("120", "80", resetAt))
	require.NoError(t, err)
	require.Equal(t, 120, rl.Limit)
	require.Equal(t, 80, rl.Remaining)
	require.True(t, rl.ResetAt.Equal(resetAt))

	rl, err = httpfeed.ParseRateLimit(http.Header{})
	require.NoError(t, err)
	require.True(t, rl.ResetAt.IsZero())

	h := http.Header{}
	h.Set("X-Rate-Limit-Reset", resetAt.Format(time.RFC3339Nano))
	rl, err = httpfeed.ParseRateLimit(h)
	require.NoError(t, err)
	require.True(t, rl.ResetAt.IsZero(), "only X-RateLimit-* headers are read")

	h = http.Header{}
	h.Set("X-RateLimit-Reset", "not-a-time")
	_, err = httpfeed.ParseRateLimit(h)
	require.Error(t, err)
}

func TestClient_Fetch_success(t *testing.T) {
	resetAt := time.Now().Add(time.Hour).UTC()
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "feeds.example.com", r.URL.Host)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		body := `[{"external_id":"m-1","title":"Accounts Trainee","company":"Tally","type":"internship","posted_days_ago":1}]`

		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     rateLimitHeaders("60", "59", resetAt),
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	})
	require.Equal(t, "mirror", c.Name())

	listings, rl, err := c.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)
	require.Equal(t, "mirror", listings[0].Source)
	require.Equal(t, "Accounts Trainee", listings[0].Title)
	require.Equal(t, 59, rl.Remaining)
}

func TestClient_Fetch_rateLimited429(t *testing.T) {
	resetAt := time.Now().Add(5 * time.Minute).UTC()
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Header:     rateLimitHeaders("100", "0", resetAt),
			Body:       io.NopCloser(strings.NewReader("slow down")),
		}, nil
	})

	_, rl, err := c.Fetch(context.Background())
	require.ErrorIs(t, err, serrors.ErrRateLimited, "expected ErrRateLimited kind: %v", err)
	require.Equal(t, 0, rl.Remaining)
	require.True(t, rl.ResetAt.Equal(resetAt))
}

func TestClient_Fetch_rateLimitedRetryAfter(t *testing.T) {
	for name, retry := range map[string]string{
		"seconds":   "90",
		"http date": time.Now().Add(90 * time.Second).UTC().Format(http.TimeFormat),
	} {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(func(r *http.Request) (*http.Response, error) {
				h := http.Header{}
				h.Set("Retry-After", retry)

				return &http.Response{
					StatusCode: http.StatusTooManyRequests,
					Header:     h,
					Body:       io.NopCloser(strings.NewReader("slow down")),
				}, nil
			})

			_, rl, err := c.Fetch(context.Background())
			require.ErrorIs(t, err, serrors.ErrRateLimited)
			require.WithinDuration(t, time.Now().Add(90*time.Second), rl.ResetAt, 2*time.Second)
		})
	}
}

// fill is an endless reader of a single byte.
type fill byte

func (f fill) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(f)
	}

	return len(p), nil
}

func TestClient_Fetch_oversizedBody(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
			Body:       io.NopCloser(io.LimitReader(fill(' '), httpfeed.MaxBodySize+1024)),
		}, nil
	})

	_, _, err := c.Fetch(context.Background())
	require.ErrorContains(t, err, "exceeds")
}

func TestClient_Fetch_non2xx(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader("upstream bad")),
		}, nil
	})

	_, _, err := c.Fetch(context.Background())
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Contains(t, err.Error(), "upstream bad")
}

func TestClient_Fetch_badPayload(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader(`{"jobs":[]}`)),
		}, nil
	})

	_, _, err := c.Fetch(context.Background())
	require.Error(t, err)
}
