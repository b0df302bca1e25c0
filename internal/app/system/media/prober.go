package media

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds simultaneous probe requests.
const DefaultConcurrency = 4

// Prober resolves Pending images by requesting them once. A 2xx/3xx answer
// marks the image Loaded; anything else, including a transport error, marks
// it Errored. There are no retries.
type Prober struct {
	Client      *http.Client
	Tracker     *Tracker
	Concurrency int
	Timeout     time.Duration // per request; zero means no extra limit
	Log         *zap.Logger
}

// NewProber returns a Prober with the default client and concurrency.
func NewProber(tracker *Tracker, timeout time.Duration, logger *zap.Logger) *Prober {
	return &Prober{
		Client:      http.DefaultClient,
		Tracker:     tracker,
		Concurrency: DefaultConcurrency,
		Timeout:     timeout,
		Log:         logger,
	}
}

// Run probes every Pending image and returns when all probes are done or ctx
// is canceled. Images whose probe was cut short by ctx stay Pending.
func (p *Prober) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	limit := p.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	g.SetLimit(limit)

	for _, url := range p.Tracker.URLs() {
		img, _ := p.Tracker.Image(url)
		if img.State().Terminal() {
			continue
		}
		g.Go(func() error {
			p.probe(gctx, url, img)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (p *Prober) probe(parent context.Context, url string, img *Image) {
	ctx := parent
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, p.Timeout)
		defer cancel()
	}

	err := p.check(ctx, url)
	if err != nil && parent.Err() != nil {
		// Shutting down; leave the image for the browser.
		return
	}

	log := p.logger().With(zap.String("url", url))
	if err != nil {
		if img.MarkErrored() {
			log.Warn("media probe failed", zap.Error(err))
		}
		return
	}
	if img.MarkLoaded() {
		log.Debug("media probe ok")
	}
}

func (p *Prober) check(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (p *Prober) logger() *zap.Logger {
	if p.Log == nil {
		return zap.NewNop()
	}
	return p.Log
}
