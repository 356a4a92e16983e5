package ratelimit

import (
	"sync"
	"time"
)

// bucket tracks remaining tokens for one key. Capacity and refill rate are
// supplied per call so the handler layer owns the policy.
type bucket struct {
	tokens float64
	last   time.Time
}

// Limiter is a keyed token bucket, typically keyed by client IP.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
}

func New() *Limiter {
	return &Limiter{buckets: make(map[string]*bucket)}
}

// Allow consumes one token for key, refilling at refillPerSec up to
// capacity. A new key starts with a full bucket.
func (l *Limiter) Allow(key string, capacity, refillPerSec float64) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: capacity, last: now}
		l.buckets[key] = b
	}

	if elapsed := now.Sub(b.last).Seconds(); elapsed > 0 {
		b.tokens += elapsed * refillPerSec
		if b.tokens > capacity {
			b.tokens = capacity
		}
		b.last = now
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}
