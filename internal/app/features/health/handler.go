package health

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/studiosite/internal/app/store/content"
	"github.com/dalemusser/studiosite/internal/app/system/media"
	"go.uber.org/zap"
)

// VisitorCounter reports how many visitors are tracked.
// *visitors.Registry satisfies it.
type VisitorCounter interface {
	Len() int
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	Catalog  *content.Catalog
	Media    *media.Tracker
	Visitors VisitorCounter
	Log      *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(catalog *content.Catalog, tracker *media.Tracker, visitors VisitorCounter, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog:  catalog,
		Media:    tracker,
		Visitors: visitors,
		Log:      logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string        `json:"status"`
	Catalog  catalogStatus `json:"catalog"`
	Media    *media.Counts `json:"media,omitempty"`
	Visitors int           `json:"visitors"`
	Message  string        `json:"message,omitempty"`
}

type catalogStatus struct {
	Work     int `json:"work"`
	Services int `json:"services"`
	Clients  int `json:"clients"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "catalog":{"work":8,...}, "media":{"pending":0,"loaded":9,"errored":1}, "visitors":3 }
//
// Without a catalog: 503 and
//
//	{ "status":"error", "message":"Catalog not loaded" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.Catalog == nil {
		h.Log.Error("health-check: catalog not loaded")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(healthResponse{Status: "error", Message: "Catalog not loaded"})
		return
	}

	resp := healthResponse{
		Status: "ok",
		Catalog: catalogStatus{
			Work:     len(h.Catalog.Work()),
			Services: len(h.Catalog.Services()),
			Clients:  len(h.Catalog.Clients()),
		},
	}
	if h.Media != nil {
		counts := h.Media.Counts()
		resp.Media = &counts
	}
	if h.Visitors != nil {
		resp.Visitors = h.Visitors.Len()
	}

	_ = json.NewEncoder(w).Encode(resp)
}
