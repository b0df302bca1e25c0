// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/studiosite/internal/app/store/content"
	"github.com/dalemusser/studiosite/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
	BackURL string
}

// Handler is the errors feature handler. It only renders templates.
type Handler struct {
	Catalog *content.Catalog
}

// NewHandler constructs an errors Handler.
func NewHandler(catalog *content.Catalog) *Handler {
	return &Handler{Catalog: catalog}
}

// NotFound renders the friendly 404 page for any unrouted path.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, h.Catalog, "Page not found"),
		Message: "The page you are looking for has moved or never existed.",
		BackURL: "/",
	}

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_not_found", data)
}
