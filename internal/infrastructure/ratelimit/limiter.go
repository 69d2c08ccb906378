package ratelimit

import (
	"context"
	"sync"
	"time"

	"TextHumanizer/internal/ports"
)

// SlidingWindow is the process-wide admission ledger: per key, the
// timestamps of requests inside the current window. It is the only
// mutable state shared across requests.
type SlidingWindow struct {
	mu   sync.Mutex
	hits map[string][]time.Time
	now  func() time.Time
}

var _ ports.RateLimiter = (*SlidingWindow)(nil)

// NewSlidingWindow builds an empty ledger.
func NewSlidingWindow() *SlidingWindow {
	return &SlidingWindow{
		hits: map[string][]time.Time{},
		now:  time.Now,
	}
}

// Check records one request attempt for key and reports whether it is
// admitted under limit requests per window.
func (l *SlidingWindow) Check(key string, limit int, window time.Duration) ports.RateDecision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-window)

	recent := l.hits[key][:0]
	for _, t := range l.hits[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= limit {
		l.hits[key] = recent
		return ports.RateDecision{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: recent[0].Add(window).Sub(now),
		}
	}

	l.hits[key] = append(recent, now)
	return ports.RateDecision{
		Allowed:   true,
		Remaining: limit - len(recent) - 1,
	}
}

// Janitor drops keys with no activity inside window, on the given
// interval, until ctx is done. Keeps the ledger from growing with every
// client IP ever seen.
func (l *SlidingWindow) Janitor(ctx context.Context, interval, window time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.sweep(window)
		}
	}
}

func (l *SlidingWindow) sweep(window time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-window)
	for key, times := range l.hits {
		idle := true
		for _, t := range times {
			if t.After(cutoff) {
				idle = false
				break
			}
		}
		if idle {
			delete(l.hits, key)
		}
	}
}
