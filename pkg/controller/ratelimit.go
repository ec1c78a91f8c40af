package controller

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client key. Buckets that have not
// been used for IdleTTL are dropped by the janitor started with StartJanitor.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket

	rps     rate.Limit
	burst   int
	idleTTL time.Duration
}

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing rps requests per second with the
// given burst per client. A non-positive rps disables limiting.
func NewRateLimiter(rps float64, burst int, idleTTL time.Duration) *RateLimiter {
	if idleTTL <= 0 {
		idleTTL = 15 * time.Minute
	}

	return &RateLimiter{
		buckets: make(map[string]*bucket),
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: idleTTL,
	}
}

// Allow consumes a token for key and reports whether the request may proceed.
func (l *RateLimiter) Allow(key string) bool {
	if l.rps <= 0 {
		return true
	}

	now := time.Now()

	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.rps, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	l.mu.Unlock()

	return b.lim.AllowN(now, 1)
}

// Cleanup drops buckets idle for longer than the idle TTL.
func (l *RateLimiter) Cleanup() {
	cutoff := time.Now().Add(-l.idleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()

	for k, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, k)
		}
	}
}

// Len returns the number of tracked clients.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.buckets)
}

// StartJanitor runs Cleanup every interval until ctx is done.
func (l *RateLimiter) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}

	go func() {
		t := time.NewTicker(every)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				l.Cleanup()
			}
		}
	}()
}

// WithRateLimit returns a middleware rejecting requests with 429 once the
// client exhausted its bucket. Clients are keyed by proxies.ClientIP, so
// forwarding headers only count when sent by a trusted proxy.
func WithRateLimit(l *RateLimiter, proxies TrustedProxies, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(proxies.ClientIP(r)) {
			w.Header().Set("Retry-After", strconv.Itoa(1))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"code":"RATE_LIMITED","message":"too many requests"}`))

			return
		}

		next.ServeHTTP(w, r)
	})
}
