// Package timeouts provides centralized timeout values for the site's
// blocking operations.
//
// Values can be overridden at startup using Configure(). If not configured,
// defaults are used.
//
//   - Probe: one request checking a remote image
//   - Settle: how long GET /work/state?wait=1 waits for a pending filter
//   - Shutdown: stopping background workers
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultProbe    = 5 * time.Second
	DefaultSettle   = 5 * time.Second
	DefaultShutdown = 10 * time.Second
)

var mu sync.RWMutex

var (
	probe    = DefaultProbe
	settle   = DefaultSettle
	shutdown = DefaultShutdown
)

// Probe returns the per-request timeout for media probes.
func Probe() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return probe
}

// Settle returns the longest a request may wait for a filter to commit.
func Settle() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return settle
}

// Shutdown returns the time allowed for workers to stop.
func Shutdown() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return shutdown
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Probe    time.Duration
	Settle   time.Duration
	Shutdown time.Duration
}

// Configure sets custom timeout values. Zero values in the config are ignored,
// keeping the current (or default) values. Call it during startup before
// handlers are built.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Probe > 0 {
		probe = cfg.Probe
	}
	if cfg.Settle > 0 {
		settle = cfg.Settle
	}
	if cfg.Shutdown > 0 {
		shutdown = cfg.Shutdown
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	probe = DefaultProbe
	settle = DefaultSettle
	shutdown = DefaultShutdown
}

// Current returns the current timeout configuration as a Config struct.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{
		Probe:    probe,
		Settle:   settle,
		Shutdown: shutdown,
	}
}

// WithTimeout creates a context with timeout and returns a cancel function that
// logs a warning if the context was canceled due to deadline exceeded.
//
// Example:
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Settle(), h.Log, "work state wait")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
