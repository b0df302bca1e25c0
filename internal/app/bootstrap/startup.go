// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/studiosite/internal/app/resources"
	"github.com/dalemusser/studiosite/internal/app/system/timeouts"
	"github.com/dalemusser/studiosite/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the catalog is
// loaded and checked, but before the HTTP handler is built. It registers
// the shared templates, applies configured timeouts and starts the
// background workers.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	viewdata.Init(appCfg.SiteName)

	timeouts.Configure(timeouts.Config{
		Probe:  appCfg.MediaProbeTimeout,
		Settle: appCfg.SettleWaitTimeout,
	})
	cur := timeouts.Current()
	logger.Info("timeouts configured",
		zap.Duration("probe", cur.Probe),
		zap.Duration("settle", cur.Settle),
		zap.Duration("shutdown", cur.Shutdown))

	if deps.VisitorSweep != nil {
		deps.VisitorSweep.Start()
	}
	if deps.MediaProbe != nil {
		deps.MediaProbe.Start()
	}
	return nil
}
