// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/studiosite/internal/app/store/content"
	"github.com/dalemusser/studiosite/internal/app/system/media"
	"github.com/dalemusser/studiosite/internal/app/system/ratelimit"
	"github.com/dalemusser/studiosite/internal/app/system/visitors"
	"github.com/dalemusser/studiosite/internal/app/system/workers"
)

// DBDeps holds the back-end dependencies for the app. The site has no
// database; its "backend" is the read-only content catalog plus the
// in-memory state built around it.
type DBDeps struct {
	Catalog  *content.Catalog
	Media    *media.Tracker
	Visitors *visitors.Registry
	Limiter  *ratelimit.Limiter

	// Background workers, started in Startup and stopped in Shutdown.
	// MediaProbe is nil when probing is disabled.
	VisitorSweep *workers.VisitorSweep
	MediaProbe   *workers.MediaProbe
}
