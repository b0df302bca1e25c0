package home

import (
	"net/http"

	"github.com/dalemusser/studiosite/internal/app/store/content"
	"github.com/dalemusser/studiosite/internal/app/system/media"
	"github.com/dalemusser/studiosite/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Catalog *content.Catalog
	Media   *media.Tracker
	Log     *zap.Logger
}

func NewHandler(catalog *content.Catalog, tracker *media.Tracker, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: catalog,
		Media:   tracker,
		Log:     logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
		Home homeVM
	}{
		BaseVM: viewdata.NewBaseVM(r, h.Catalog, ""),
		Home:   buildHome(h.Catalog, h.Media),
	}

	templates.Render(w, r, "home", data)
}
