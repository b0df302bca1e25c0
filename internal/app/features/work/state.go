// internal/app/features/work/state.go
package work

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/studiosite/internal/app/system/timeouts"
	"github.com/dalemusser/studiosite/internal/app/system/workfilter"
	"github.com/dalemusser/studiosite/internal/domain/models"
)

// stateResponse is the JSON shape of GET /work/state.
type stateResponse struct {
	Filter  string            `json:"filter"`
	Label   string            `json:"label"`
	Loading bool              `json:"loading"`
	Count   int               `json:"count"`
	Items   []models.WorkItem `json:"items"`
}

// ServeState handles GET /work/state.
//
// With ?wait=1 the request blocks until the visitor's pending selection
// commits, up to the settle timeout. On timeout the current snapshot is
// returned with loading still true.
func (h *Handler) ServeState(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.controller(w, r)
	if !ok {
		return
	}

	st := h.current(r, ctrl)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stateResponse{
		Filter:  string(st.Filter),
		Label:   label(st.Filter),
		Loading: st.Loading,
		Count:   len(st.Items),
		Items:   st.Items,
	})
}

// current returns the controller state, waiting for it to settle when the
// request asks to.
func (h *Handler) current(r *http.Request, ctrl *workfilter.Controller) workfilter.State {
	if r.URL.Query().Get("wait") != "1" {
		return ctrl.State()
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Settle(), h.Log, "work settle wait")
	defer cancel()

	// A timeout is not an error here; the snapshot still says loading.
	st, _ := ctrl.Settled(ctx)
	return st
}
