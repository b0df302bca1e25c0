// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"
	"sync"

	"github.com/dalemusser/studiosite/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown stops the background workers and closes every visitor's filter
// controller so no pending selection fires after the server stops.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Shutdown(), logger, "worker shutdown")
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		var wg sync.WaitGroup
		if deps.VisitorSweep != nil {
			wg.Add(1)
			go func() { defer wg.Done(); deps.VisitorSweep.Stop() }()
		}
		if deps.MediaProbe != nil {
			wg.Add(1)
			go func() { defer wg.Done(); deps.MediaProbe.Stop() }()
		}
		wg.Wait()
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn("workers did not stop in time", zap.Error(ctx.Err()))
	}

	if deps.Limiter != nil {
		deps.Limiter.Stop()
	}
	if deps.Visitors != nil {
		logger.Info("closing visitor controllers", zap.Int("visitors", deps.Visitors.Len()))
		deps.Visitors.Close()
	}
	return nil
}
