// internal/app/features/work/routes.go
package work

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the work subrouter, mounted at /work. limit, when non-nil,
// wraps the POST endpoints and page loads that carry a ?filter= selection.
func Routes(h *Handler, limit func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	if limit != nil {
		r.With(limitSelections(limit)).Get("/", h.ServeWork)
	} else {
		r.Get("/", h.ServeWork)
	}
	r.Get("/grid", h.ServeGrid)
	r.Get("/state", h.ServeState)

	r.Group(func(pr chi.Router) {
		if limit != nil {
			pr.Use(limit)
		}
		pr.Post("/filter", h.HandleFilter)
		pr.Post("/reset", h.HandleReset)
	})
	return r
}

// limitSelections applies limit only to requests that select a filter.
// A plain page view is not throttled.
func limitSelections(limit func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limited := limit(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("filter") != "" {
				limited.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
