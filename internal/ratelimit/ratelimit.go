// Package ratelimit caps contact-form submissions per client key within a
// sliding one-minute window. Counters live in process memory; each instance
// enforces its own cap.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter tracks submission timestamps per client key.
type Limiter struct {
	max    int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	clients map[string]*clientWindow
}

type clientWindow struct {
	timestamps []time.Time
}

// New creates a limiter allowing max operations per window and starts its
// background cleanup loop.
func New(max int, window time.Duration) *Limiter {
	l := &Limiter{
		max:     max,
		window:  window,
		now:     time.Now,
		clients: make(map[string]*clientWindow),
	}
	go l.cleanupLoop()
	return l
}

// Allow records one operation for key if the key is under its cap and reports
// whether the operation may proceed. A rejected attempt does not consume
// quota. retryAfter is the wait until the oldest counted operation leaves the
// window; it is zero when ok is true.
func (l *Limiter) Allow(key string) (ok bool, retryAfter time.Duration) {
	now := l.now()
	windowStart := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	cw, exists := l.clients[key]
	if !exists {
		cw = &clientWindow{}
		l.clients[key] = cw
	}

	// Prune timestamps outside the window; in-place filter on shared backing array
	valid := cw.timestamps[:0]
	for _, ts := range cw.timestamps {
		if ts.After(windowStart) {
			valid = append(valid, ts)
		}
	}
	cw.timestamps = valid

	if len(cw.timestamps) >= l.max {
		oldest := cw.timestamps[0]
		return false, oldest.Add(l.window).Sub(now)
	}

	cw.timestamps = append(cw.timestamps, now)
	return true, 0
}

// cleanupLoop periodically removes stale entries from the clients map.
func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		windowStart := l.now().Add(-l.window)
		l.mu.Lock()
		for key, cw := range l.clients {
			valid := cw.timestamps[:0]
			for _, ts := range cw.timestamps {
				if ts.After(windowStart) {
					valid = append(valid, ts)
				}
			}
			cw.timestamps = valid
			if len(cw.timestamps) == 0 {
				delete(l.clients, key)
			}
		}
		l.mu.Unlock()
	}
}
