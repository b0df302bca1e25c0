// internal/app/features/contact/handler.go
package contact

import (
	"net/http"

	"github.com/dalemusser/studiosite/internal/app/store/content"
	"github.com/dalemusser/studiosite/internal/app/system/motion"
	"github.com/dalemusser/studiosite/internal/app/system/viewdata"
	"github.com/dalemusser/studiosite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type pageData struct {
	viewdata.BaseVM
	Info    models.ContactInfo
	Curtain motion.Reveal
	Reveal  motion.Reveal
}

// Handler serves the contact page.
type Handler struct {
	Catalog *content.Catalog
	Log     *zap.Logger
}

func NewHandler(catalog *content.Catalog, logger *zap.Logger) *Handler {
	return &Handler{Catalog: catalog, Log: logger}
}

func (h *Handler) ServeContact(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, h.Catalog, "Contact"),
		Info:    h.Catalog.Contact(),
		Curtain: motion.Curtain(0.1),
		Reveal:  motion.Up(0.3),
	}

	templates.Render(w, r, "contact", data)
}
