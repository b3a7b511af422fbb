package ratelimit

import (
	"context"
	"sync"
	"time"
)

// RateLimiter is a per-key sliding-window limiter
type RateLimiter struct {
	requests map[string][]time.Time
	limit    int
	window   time.Duration
	mu       sync.RWMutex
}

// New creates a limiter allowing limit requests per window for each key
func New(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}
}

// Allow records a request for key and reports whether it fits the window
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	valid := inWindow(rl.requests[key], now.Add(-rl.window))
	if len(valid) >= rl.limit {
		rl.requests[key] = valid
		return false
	}

	rl.requests[key] = append(valid, now)
	return true
}

// GetRemaining returns how many more requests key may make in the window
func (rl *RateLimiter) GetRemaining(key string) int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	used := len(inWindow(rl.requests[key], time.Now().Add(-rl.window)))
	return max(rl.limit-used, 0)
}

// GetResetTime returns when the oldest request of key leaves the window
func (rl *RateLimiter) GetResetTime(key string) time.Time {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	now := time.Now()
	valid := inWindow(rl.requests[key], now.Add(-rl.window))
	if len(valid) == 0 {
		return now
	}
	return valid[0].Add(rl.window)
}

// Limit returns the number of requests allowed per window
func (rl *RateLimiter) Limit() int { return rl.limit }

// Window returns the sliding window length
func (rl *RateLimiter) Window() time.Duration { return rl.window }

// Cleanup drops keys with no requests left in the window
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-rl.window)
	for key, requests := range rl.requests {
		valid := inWindow(requests, cutoff)
		if len(valid) == 0 {
			delete(rl.requests, key)
			continue
		}
		rl.requests[key] = valid
	}
}

// StartCleanup prunes expired entries every interval until ctx is done.
// A non-positive interval disables the cleanup loop.
func (rl *RateLimiter) StartCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.Cleanup()
			}
		}
	}()
}

// inWindow returns the suffix of requests newer than cutoff. Requests are
// appended in time order, so the slice is sorted.
func inWindow(requests []time.Time, cutoff time.Time) []time.Time {
	for i, t := range requests {
		if t.After(cutoff) {
			return requests[i:]
		}
	}
	return nil
}
