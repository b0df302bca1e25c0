// internal/app/system/workers/mediaprobe.go
package workers

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Prober checks every tracked media URL once. *media.Prober satisfies it.
type Prober interface {
	Run(ctx context.Context) error
}

// MediaProbe runs a Prober once in the background. Stop cancels a probe
// still in flight; URLs it had not reached stay pending.
type MediaProbe struct {
	prober Prober
	log    *zap.Logger
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// NewMediaProbe creates a one-shot media probe worker.
func NewMediaProbe(prober Prober, logger *zap.Logger) *MediaProbe {
	return &MediaProbe{prober: prober, log: logger, done: make(chan struct{})}
}

// Start launches the probe. It must be called at most once.
func (w *MediaProbe) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	go func() {
		defer close(w.done)
		if err := w.prober.Run(ctx); err != nil && ctx.Err() == nil {
			w.log.Warn("media probe failed", zap.Error(err))
			return
		}
		w.log.Info("media probe finished")
	}()
	w.log.Info("media probe worker started")
}

// Done is closed when the probe has finished or been canceled.
func (w *MediaProbe) Done() <-chan struct{} {
	return w.done
}

// Stop cancels the probe and waits for it to return. Stop without Start is
// a no-op.
func (w *MediaProbe) Stop() {
	w.once.Do(func() {
		if w.cancel == nil {
			return
		}
		w.cancel()
		<-w.done
	})
}
