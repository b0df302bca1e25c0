// internal/app/system/workers/visitorsweep.go
package workers

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sweeper removes visitors idle longer than a threshold and reports how many
// it removed. *visitors.Registry satisfies it.
type Sweeper interface {
	Sweep(idle time.Duration) int
}

// VisitorSweep is a background worker that drops idle visitor controllers.
type VisitorSweep struct {
	visitors Sweeper
	log      *zap.Logger
	interval time.Duration
	idleTTL  time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewVisitorSweep creates a new visitor sweep worker.
//
// Parameters:
//   - visitors: the visitor registry
//   - logger: zap logger for logging
//   - interval: how often to sweep (e.g., 1 minute)
//   - idleTTL: how long a visitor must be idle before their controller is closed
func NewVisitorSweep(visitors Sweeper, logger *zap.Logger, interval, idleTTL time.Duration) *VisitorSweep {
	return &VisitorSweep{
		visitors: visitors,
		log:      logger,
		interval: interval,
		idleTTL:  idleTTL,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background sweep loop.
func (w *VisitorSweep) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("visitor sweep worker started",
		zap.Duration("interval", w.interval),
		zap.Duration("idle_ttl", w.idleTTL))
}

// Stop signals the worker to stop and waits for it to finish. Safe to call
// more than once.
func (w *VisitorSweep) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
	w.log.Info("visitor sweep worker stopped")
}

func (w *VisitorSweep) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *VisitorSweep) sweep() {
	if n := w.visitors.Sweep(w.idleTTL); n > 0 {
		w.log.Info("closed idle visitors", zap.Int("count", n))
	}
}
