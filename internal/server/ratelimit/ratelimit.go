// Package ratelimit provides per-client request limiting using a fixed
// window counter. The counter lives in process memory: it resets on restart
// and is an approximation under multi-instance deployment, which is
// acceptable for this system's risk profile.
package ratelimit

import (
	"sync"
	"time"
)

// window tracks one client's request count within the current fixed window.
type window struct {
	count   int
	resetAt time.Time
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages fixed-window counters for multiple clients.
type Limiter struct {
	windows map[string]*window
	mu      sync.Mutex
	config  *Config

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}

	limiter := &Limiter{
		windows: make(map[string]*window),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		limiter.cleanupTicker = time.NewTicker(config.CleanupInterval)
		limiter.cleanupStop = make(chan struct{})
		go limiter.cleanup()
	}

	return limiter
}

// Allow checks whether a request from the given client key is allowed.
// The first request of a window starts the window; once the limit is
// reached, further requests are rejected until the window elapses.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}
	if l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false, Limit: l.config.Limit}
	}

	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, exists := l.windows[clientID]
	if !exists || now.After(w.resetAt) {
		w = &window{count: 0, resetAt: now.Add(l.config.Window)}
		l.windows[clientID] = w
	}

	if w.count >= l.config.Limit {
		return false, Info{
			Allowed:    false,
			Limit:      l.config.Limit,
			Remaining:  0,
			ResetTime:  w.resetAt,
			RetryAfter: l.config.Window,
		}
	}

	w.count++
	return true, Info{
		Allowed:   true,
		Limit:     l.config.Limit,
		Remaining: l.config.Limit - w.count,
		ResetTime: w.resetAt,
	}
}

// cleanup periodically drops expired windows to keep the map bounded.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.dropExpired()
		case <-l.cleanupStop:
			return
		}
	}
}

func (l *Limiter) dropExpired() {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, w := range l.windows {
		if now.After(w.resetAt) {
			delete(l.windows, key)
		}
	}
}

// Stop stops the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
