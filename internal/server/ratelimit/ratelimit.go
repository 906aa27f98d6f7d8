// Package ratelimit provides per-client rate limiting using a token bucket.
package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// tokenBucket allows a burst of requests, refilling at a steady rate.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func (tb *tokenBucket) allow(now time.Time) bool {
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens += elapsed.Seconds() * tb.refillRate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Limiter tracks one bucket per client IP. Document extraction is the
// expensive path, so the parse endpoint sits behind it.
type Limiter struct {
	mu         sync.Mutex
	buckets    map[string]*tokenBucket
	capacity   int
	refillRate float64
}

// NewLimiter creates a limiter allowing a burst of capacity requests per
// client, refilling at refillRate tokens per second.
func NewLimiter(capacity int, refillRate float64) *Limiter {
	return &Limiter{
		buckets:    make(map[string]*tokenBucket),
		capacity:   capacity,
		refillRate: refillRate,
	}
}

// Allow reports whether the client identified by key may proceed.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	tb, ok := l.buckets[key]
	if !ok {
		tb = &tokenBucket{
			capacity:   l.capacity,
			refillRate: l.refillRate,
			tokens:     float64(l.capacity),
			lastRefill: time.Now(),
		}
		l.buckets[key] = tb
	}
	return tb.allow(time.Now())
}

// ClientKey derives the limiter key from the request's remote address.
func ClientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
