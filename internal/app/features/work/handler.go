// internal/app/features/work/handler.go
package work

import (
	"net/http"
	"net/url"

	"github.com/dalemusser/studiosite/internal/app/store/content"
	"github.com/dalemusser/studiosite/internal/app/system/limits"
	"github.com/dalemusser/studiosite/internal/app/system/media"
	"github.com/dalemusser/studiosite/internal/app/system/motion"
	"github.com/dalemusser/studiosite/internal/app/system/viewdata"
	"github.com/dalemusser/studiosite/internal/app/system/workfilter"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ControllerSource hands out the filter controller for the requesting
// visitor. *visitors.Registry satisfies it.
type ControllerSource interface {
	Controller(w http.ResponseWriter, r *http.Request) (*workfilter.Controller, error)
}

// Handler serves the Work page and its filter endpoints.
type Handler struct {
	Catalog  *content.Catalog
	Visitors ControllerSource
	Media    *media.Tracker
	Log      *zap.Logger
}

func NewHandler(catalog *content.Catalog, visitors ControllerSource, tracker *media.Tracker, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog:  catalog,
		Visitors: visitors,
		Media:    tracker,
		Log:      logger,
	}
}

type pageData struct {
	viewdata.BaseVM
	Curtain motion.Reveal
	Grid    gridVM
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /work – full page; ?filter= selects without JavaScript                  |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeWork renders the page. Every render is a new page view, so the
// visitor's controller starts over with the full list and the requested
// filter (All by default) pending.
func (h *Handler) ServeWork(w http.ResponseWriter, r *http.Request) {
	f := workfilter.All
	if raw := r.URL.Query().Get("filter"); raw != "" {
		parsed, err := workfilter.ParseFilter(raw)
		if err != nil {
			h.badFilter(w, raw)
			return
		}
		f = parsed
	}

	ctrl, ok := h.controller(w, r)
	if !ok {
		return
	}
	st := ctrl.Remount(f)

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, h.Catalog, "Work"),
		Curtain: motion.Curtain(0.1),
		Grid:    buildGrid(st, h.Media),
	}

	templates.Render(w, r, "work_page", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /work/grid – grid fragment; ?wait=1 holds until the filter settles      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeGrid(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.controller(w, r)
	if !ok {
		return
	}

	st := h.current(r, ctrl)
	templates.RenderSnippet(w, "work_grid", buildGrid(st, h.Media))
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /work/filter, POST /work/reset                                         |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleFilter(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFilterFormSize)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	raw := r.PostFormValue("filter")
	f, err := workfilter.ParseFilter(raw)
	if err != nil {
		h.badFilter(w, raw)
		return
	}

	ctrl, ok := h.controller(w, r)
	if !ok {
		return
	}
	st := ctrl.Select(f)
	h.Log.Debug("work filter selected", zap.String("filter", string(f)))

	h.respondGrid(w, r, st)
}

func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFilterFormSize)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	ctrl, ok := h.controller(w, r)
	if !ok {
		return
	}
	h.respondGrid(w, r, ctrl.Reset())
}

// respondGrid sends the grid fragment to htmx, and sends plain form posts
// back to the page with the selection in the query so the reload keeps it.
func (h *Handler) respondGrid(w http.ResponseWriter, r *http.Request, st workfilter.State) {
	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "work_grid", buildGrid(st, h.Media))
		return
	}
	http.Redirect(w, r, pageURL(st.Filter), http.StatusSeeOther)
}

// pageURL is the Work page address that shows f.
func pageURL(f workfilter.Filter) string {
	if f == workfilter.All {
		return "/work"
	}
	return "/work?" + url.Values{"filter": {string(f)}}.Encode()
}

func (h *Handler) controller(w http.ResponseWriter, r *http.Request) (*workfilter.Controller, bool) {
	ctrl, err := h.Visitors.Controller(w, r)
	if err != nil {
		h.Log.Error("visitor controller unavailable", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, false
	}
	return ctrl, true
}

func (h *Handler) badFilter(w http.ResponseWriter, raw string) {
	h.Log.Debug("rejected work filter", zap.String("filter", raw))
	http.Error(w, "unknown filter", http.StatusBadRequest)
}
