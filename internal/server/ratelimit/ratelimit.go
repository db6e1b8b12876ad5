// Package ratelimit provides per-client token bucket rate limiting for the
// scoring endpoint.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// tokenBucket allows a burst of requests with tokens refilling at a steady rate.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.tokens += now.Sub(tb.lastRefill).Seconds() * tb.refillRate
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

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	Burst           int     // bucket capacity
	RefillPerSecond float64 // sustained request rate
	CleanupInterval time.Duration
}

// LoadConfig reads rate limit settings from the environment, falling back to
// defaults suitable for a scoring API.
func LoadConfig() *Config {
	cfg := &Config{
		Enabled:         true,
		Burst:           20,
		RefillPerSecond: 5,
		CleanupInterval: 5 * time.Minute,
	}

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if burst, err := strconv.Atoi(v); err == nil && burst > 0 {
			cfg.Burst = burst
		}
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if rps, err := strconv.ParseFloat(v, 64); err == nil && rps > 0 {
			cfg.RefillPerSecond = rps
		}
	}

	return cfg
}

// Limiter manages token buckets for multiple clients.
type Limiter struct {
	config     *Config
	buckets    map[string]*tokenBucket
	lastAccess map[string]time.Time
	mu         sync.Mutex

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a rate limiter and starts its idle-bucket cleanup loop.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = LoadConfig()
	}

	l := &Limiter{
		config:      config,
		buckets:     make(map[string]*tokenBucket),
		lastAccess:  make(map[string]time.Time),
		cleanupStop: make(chan struct{}),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		go l.cleanupLoop()
	}

	return l
}

// Allow reports whether the client may proceed.
func (l *Limiter) Allow(clientID string) bool {
	if !l.config.Enabled {
		return true
	}

	l.mu.Lock()
	bucket, ok := l.buckets[clientID]
	if !ok {
		bucket = newTokenBucket(l.config.Burst, l.config.RefillPerSecond)
		l.buckets[clientID] = bucket
	}
	l.lastAccess[clientID] = time.Now()
	l.mu.Unlock()

	return bucket.allow()
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
		close(l.cleanupStop)
	}
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.cleanup()
		case <-l.cleanupStop:
			return
		}
	}
}

// cleanup drops buckets idle for longer than two cleanup intervals.
func (l *Limiter) cleanup() {
	cutoff := time.Now().Add(-2 * l.config.CleanupInterval)

	l.mu.Lock()
	defer l.mu.Unlock()
	for clientID, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, clientID)
			delete(l.lastAccess, clientID)
		}
	}
}
