// internal/app/features/services/handler.go
package services

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/dalemusser/studiosite/internal/app/store/content"
	"github.com/dalemusser/studiosite/internal/app/system/htmlsanitize"
	"github.com/dalemusser/studiosite/internal/app/system/motion"
	"github.com/dalemusser/studiosite/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type categoryVM struct {
	Number   string
	Category string
	Icon     string
	Items    []string
	Reveal   motion.Reveal
}

type pageData struct {
	viewdata.BaseVM
	Intro      template.HTML
	Curtain    motion.Reveal
	Categories []categoryVM
}

// Handler serves the services page.
type Handler struct {
	Catalog *content.Catalog
	Log     *zap.Logger
}

func NewHandler(catalog *content.Catalog, logger *zap.Logger) *Handler {
	return &Handler{Catalog: catalog, Log: logger}
}

func (h *Handler) ServeServices(w http.ResponseWriter, r *http.Request) {
	data := buildPage(h.Catalog)
	data.BaseVM = viewdata.NewBaseVM(r, h.Catalog, "Services")

	templates.Render(w, r, "services", data)
}

func buildPage(c *content.Catalog) pageData {
	data := pageData{
		Intro:   htmlsanitize.Inline(c.About().ServicesIntro),
		Curtain: motion.Curtain(0.1),
	}
	for i, s := range c.Services() {
		data.Categories = append(data.Categories, categoryVM{
			Number:   fmt.Sprintf("%02d", i+1),
			Category: s.Category,
			Icon:     s.Icon,
			Items:    s.Items,
			Reveal:   motion.Stagger(motion.Up(0), i, 0.1),
		})
	}
	return data
}
