// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dalemusser/studiosite/internal/app/store/content"
	"github.com/dalemusser/studiosite/internal/app/system/media"
	"github.com/dalemusser/studiosite/internal/app/system/ratelimit"
	"github.com/dalemusser/studiosite/internal/app/system/visitors"
	"github.com/dalemusser/studiosite/internal/app/system/workers"
	"github.com/dalemusser/studiosite/internal/app/system/workfilter"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// routedPages are the paths BuildHandler serves as pages. Navigation may
// only point at these.
var routedPages = []string{"/", "/about", "/services", "/work", "/contact"}

// ConnectDB loads the content catalog and builds the in-memory state the
// handlers share: the media tracker, the visitor registry and the filter
// rate limiter. Workers are created here and started in Startup.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	catalog, err := content.Load(appCfg.ContentPath)
	if err != nil {
		logger.Error("content catalog load failed",
			zap.String("path", appCfg.ContentPath), zap.Error(err))
		return DBDeps{}, fmt.Errorf("load content catalog: %w", err)
	}
	logger.Info("content catalog loaded",
		zap.String("path", appCfg.ContentPath),
		zap.Int("work", len(catalog.Work())))

	secure := coreCfg != nil && coreCfg.Env == "prod"
	store, err := visitors.NewCookieStore(appCfg.SessionKey, secure, logger)
	if err != nil {
		return DBDeps{}, fmt.Errorf("visitor cookie store: %w", err)
	}

	work := catalog.Work()
	delay := appCfg.WorkFilterDelay
	registry := visitors.NewRegistry(store, appCfg.SessionName, appCfg.VisitorMax, func() *workfilter.Controller {
		return workfilter.New(work, delay, workfilter.WithLogger(logger))
	}, logger)

	tracker := media.NewTracker(catalog.ImageURLs()...)

	deps := DBDeps{
		Catalog:      catalog,
		Media:        tracker,
		Visitors:     registry,
		Limiter:      ratelimit.New(appCfg.FilterRateLimit, appCfg.FilterRateWindow),
		VisitorSweep: workers.NewVisitorSweep(registry, logger, appCfg.VisitorSweepInterval, appCfg.VisitorIdleTTL),
	}

	if appCfg.MediaProbe {
		prober := media.NewProber(tracker, appCfg.MediaProbeTimeout, logger)
		prober.Concurrency = appCfg.MediaProbeConcurrency
		deps.MediaProbe = workers.NewMediaProbe(prober, logger)
	}

	return deps, nil
}

// EnsureSchema checks the loaded catalog against what the router serves.
// The catalog validates its own shape on load; this catches content that is
// well-formed but points at pages that do not exist.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Catalog == nil {
		return errors.New("content catalog not loaded")
	}

	var errs []error
	for _, item := range deps.Catalog.Nav() {
		if !slices.Contains(routedPages, item.Path) {
			errs = append(errs, fmt.Errorf("nav %q points at unrouted path %q", item.Label, item.Path))
		}
	}
	for _, p := range deps.Catalog.WhyUs() {
		if !slices.Contains(routedPages, p.Link) {
			errs = append(errs, fmt.Errorf("why-us %q links to unrouted path %q", p.Title, p.Link))
		}
	}
	for _, it := range deps.Catalog.Work() {
		if it.Image == "" {
			logger.Warn("work item has no image; fallback will be shown", zap.String("id", it.ID))
		}
	}

	if err := errors.Join(errs...); err != nil {
		logger.Error("content catalog inconsistent with routes", zap.Error(err))
		return fmt.Errorf("%w: %w", content.ErrInvalid, err)
	}
	return nil
}
