// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	aboutfeature "github.com/dalemusser/studiosite/internal/app/features/about"
	contactfeature "github.com/dalemusser/studiosite/internal/app/features/contact"
	errorsfeature "github.com/dalemusser/studiosite/internal/app/features/errors"
	healthfeature "github.com/dalemusser/studiosite/internal/app/features/health"
	homefeature "github.com/dalemusser/studiosite/internal/app/features/home"
	servicesfeature "github.com/dalemusser/studiosite/internal/app/features/services"
	workfeature "github.com/dalemusser/studiosite/internal/app/features/work"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, catalog loading, schema checks and
// the Startup hook have completed. It boots the template engine and mounts
// the feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return newRouter(deps, logger), nil
}

// newRouter mounts every feature. It is separate from BuildHandler so the
// routing can be exercised without booting templates.
func newRouter(deps DBDeps, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators. A nil
	// registry must stay a nil interface or Len would be called on it.
	var visitorCount healthfeature.VisitorCounter
	if deps.Visitors != nil {
		visitorCount = deps.Visitors
	}
	healthHandler := healthfeature.NewHandler(deps.Catalog, deps.Media, visitorCount, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Pages
	homeHandler := homefeature.NewHandler(deps.Catalog, deps.Media, logger)
	r.Get("/", homeHandler.ServeRoot)

	aboutHandler := aboutfeature.NewHandler(deps.Catalog, deps.Media, logger)
	r.Mount("/about", aboutfeature.Routes(aboutHandler))

	servicesHandler := servicesfeature.NewHandler(deps.Catalog, logger)
	r.Mount("/services", servicesfeature.Routes(servicesHandler))

	contactHandler := contactfeature.NewHandler(deps.Catalog, logger)
	r.Mount("/contact", contactfeature.Routes(contactHandler))

	// Work page, grid fragment and filter endpoints. Filter changes are
	// rate limited per client IP.
	var limit func(http.Handler) http.Handler
	if deps.Limiter != nil {
		limit = deps.Limiter.Middleware(logger)
	}
	workHandler := workfeature.NewHandler(deps.Catalog, deps.Visitors, deps.Media, logger)
	r.Mount("/work", workfeature.Routes(workHandler, limit))

	// Everything else
	errorsHandler := errorsfeature.NewHandler(deps.Catalog)
	r.NotFound(errorsHandler.NotFound)

	return r
}
