package ratelimit

import (
	"sync"
	"time"
)

// Defaults for the ask endpoint quota.
const (
	DefaultLimit  = 10
	DefaultWindow = 60 * time.Second
)

// Limiter keeps a sliding log of request times per token and rejects a
// request once the trailing window is full. Logs are pruned lazily on the
// next check for that token, never on a timer.
type Limiter struct {
	mu     sync.Mutex
	events map[string][]time.Time
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewLimiter returns a limiter allowing limit requests per window.
func NewLimiter(limit int, window time.Duration) *Limiter {
	return &Limiter{
		events: make(map[string][]time.Time),
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow records the request and returns true when the token is under its
// quota. A rejected request is not recorded and does not extend the window.
func (l *Limiter) Allow(token string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := l.events[token][:0]
	for _, t := range l.events[token] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.limit {
		l.events[token] = recent
		return false
	}

	l.events[token] = append(recent, now)
	return true
}
