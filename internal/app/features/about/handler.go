// internal/app/features/about/handler.go
package about

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/studiosite/internal/app/store/content"
	"github.com/dalemusser/studiosite/internal/app/system/htmlsanitize"
	"github.com/dalemusser/studiosite/internal/app/system/media"
	"github.com/dalemusser/studiosite/internal/app/system/motion"
	"github.com/dalemusser/studiosite/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type noteVM struct {
	Title  string
	Body   template.HTML
	Quote  bool
	Reveal motion.Reveal
}

type pageData struct {
	viewdata.BaseVM
	Curtain      []motion.Reveal
	Manifesto    []motion.Word
	FounderName  string
	FounderRole  string
	FounderImage media.View
	ImageReveal  motion.Reveal
	Notes        []noteVM
	Quote        string
	QuoteReveal  motion.Reveal
}

type Handler struct {
	Catalog *content.Catalog
	Media   *media.Tracker
	Log     *zap.Logger
}

func NewHandler(catalog *content.Catalog, tracker *media.Tracker, logger *zap.Logger) *Handler {
	return &Handler{Catalog: catalog, Media: tracker, Log: logger}
}

func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	data := buildPage(h.Catalog, h.Media)
	data.BaseVM = viewdata.NewBaseVM(r, h.Catalog, "About")

	templates.Render(w, r, "about", data)
}

func buildPage(c *content.Catalog, tracker *media.Tracker) pageData {
	a := c.About()
	data := pageData{
		Curtain:      []motion.Reveal{motion.Curtain(0.1), motion.Curtain(0.25)},
		Manifesto:    motion.Words(a.Manifesto),
		FounderName:  a.FounderName,
		FounderRole:  a.FounderRole,
		FounderImage: tracker.View(a.FounderImage, a.FounderName),
		ImageReveal:  motion.Slide(0, true),
		Quote:        a.Quote,
		QuoteReveal:  motion.Up(0),
	}
	for i, n := range a.FounderNotes {
		data.Notes = append(data.Notes, noteVM{
			Title:  n.Title,
			Body:   htmlsanitize.Markdown(n.Body),
			Quote:  n.Quote,
			Reveal: motion.Stagger(motion.Up(0), i, 0.1),
		})
	}
	return data
}
