// Package ratelimiter throttles outbound calls to stay inside an upstream
// API's per-interval budget.
package ratelimiter

import (
	"log/slog"
	"sync"
	"time"
)

// RateLimiterInterface limits how often an operation may run.
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter counts calls per interval and sleeps once the budget is spent.
// Safe for concurrent use; HTTP handlers share one instance.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // calls allowed per interval
	interval  time.Duration // reset window
	count     int
	lastReset time.Time
}

// NewRateLimiter returns a limiter allowing limit calls per interval.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded blocks until the next call fits inside the budget.
func (rl *RateLimiter) WaitIfNeeded() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			slog.Warn("rate limit reached, sleeping", "limit", rl.limit, "sleep", sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}
