package limiter

import (
	"context"
	"sync"
	"time"
)

// RateLimiter caps the number of outbound API requests per second.
type RateLimiter struct {
	requestTimes []time.Time
	maxRequests  int
	mu           sync.Mutex
}

func NewRateLimiter(maxRequests int) *RateLimiter {
	return &RateLimiter{
		requestTimes: make([]time.Time, 0, maxRequests),
		maxRequests:  maxRequests,
	}
}

// Allow reports whether a new request may be issued now.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	oneSecondAgo := now.Add(-1 * time.Second)

	// Drop requests older than one second
	validTimes := make([]time.Time, 0, len(r.requestTimes))
	for _, t := range r.requestTimes {
		if t.After(oneSecondAgo) {
			validTimes = append(validTimes, t)
		}
	}
	r.requestTimes = validTimes

	if len(r.requestTimes) < r.maxRequests {
		r.requestTimes = append(r.requestTimes, now)
		return true
	}

	return false
}

// Wait blocks until a request slot opens or ctx is done. throttleDelay is
// the pause between retries.
func (r *RateLimiter) Wait(ctx context.Context, throttleDelay time.Duration) error {
	for !r.Allow() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(throttleDelay):
		}
	}
	return nil
}
