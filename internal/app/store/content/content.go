// Package content holds the studio's read-only content catalog: navigation,
// contact details, services, portfolio items, clients, and page copy.
//
// The catalog is parsed once at startup (from the embedded catalog.yaml or an
// override file) and never mutated afterwards. Accessors hand out copies so
// callers cannot change what other requests see.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dalemusser/studiosite/internal/domain/models"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// ErrInvalid is wrapped by every validation failure returned from Parse.
var ErrInvalid = errors.New("invalid content catalog")

// Site is the site-wide identity block.
type Site struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
}

type document struct {
	Site     Site                     `yaml:"site"`
	Nav      []models.NavItem         `yaml:"nav"`
	Contact  models.ContactInfo       `yaml:"contact"`
	Hero     models.Hero              `yaml:"hero"`
	Services []models.ServiceCategory `yaml:"services"`
	Work     []models.WorkItem        `yaml:"work"`
	Clients  []string                 `yaml:"clients"`
	WhyUs    []models.WhyUsPoint      `yaml:"why_us"`
	About    models.About             `yaml:"about"`
}

// Catalog is the parsed, validated content. It is safe for concurrent use
// because nothing writes to it after Parse returns.
type Catalog struct {
	doc document
}

// Default parses the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(embedded)
}

// Load reads and parses a catalog file. An empty path means Default.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content catalog %q: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes YAML into a Catalog and validates it. Unknown keys are
// rejected so typos in the content file fail at startup.
func Parse(b []byte) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode content catalog: %w", err)
	}

	c := &Catalog{doc: doc}
	if err := c.validate(); err != nil {
		return nil, err
	}
	if c.doc.Site.Name == "" {
		c.doc.Site.Name = models.DefaultSiteName
	}
	return c, nil
}

func (c *Catalog) validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if len(c.doc.Work) == 0 {
		bad("no work items")
	}
	seen := make(map[string]bool, len(c.doc.Work))
	for i, w := range c.doc.Work {
		switch {
		case strings.TrimSpace(w.ID) == "":
			bad("work[%d] has no id", i)
		case seen[w.ID]:
			bad("duplicate work id %q", w.ID)
		}
		seen[w.ID] = true
		if strings.TrimSpace(w.Title) == "" {
			bad("work %q has no title", w.ID)
		}
		if strings.TrimSpace(w.Category) == "" {
			bad("work %q has no category", w.ID)
		}
	}

	for i, n := range c.doc.Nav {
		if n.Label == "" {
			bad("nav[%d] has no label", i)
		}
		if !strings.HasPrefix(n.Path, "/") {
			bad("nav %q path %q is not site-relative", n.Label, n.Path)
		}
	}

	for i, s := range c.doc.Services {
		if s.Category == "" {
			bad("services[%d] has no category", i)
		}
	}

	return errors.Join(errs...)
}

// Site returns the site identity.
func (c *Catalog) Site() Site { return c.doc.Site }

// Nav returns the primary navigation entries in display order.
func (c *Catalog) Nav() []models.NavItem { return clone(c.doc.Nav) }

// Contact returns the contact block.
func (c *Catalog) Contact() models.ContactInfo { return c.doc.Contact }

// Hero returns the home page hero copy.
func (c *Catalog) Hero() models.Hero {
	h := c.doc.Hero
	h.Lines = clone(h.Lines)
	return h
}

// Services returns the service categories with their own item slices.
func (c *Catalog) Services() []models.ServiceCategory {
	out := make([]models.ServiceCategory, len(c.doc.Services))
	for i, s := range c.doc.Services {
		s.Items = clone(s.Items)
		out[i] = s
	}
	return out
}

// Work returns every portfolio item in catalog order.
func (c *Catalog) Work() []models.WorkItem { return clone(c.doc.Work) }

// Clients returns the client names shown in the marquee.
func (c *Catalog) Clients() []string { return clone(c.doc.Clients) }

// WhyUs returns the selling points. A point without a link points at /contact.
func (c *Catalog) WhyUs() []models.WhyUsPoint {
	out := clone(c.doc.WhyUs)
	for i := range out {
		if out[i].Link == "" {
			out[i].Link = "/contact"
		}
	}
	return out
}

// About returns the about page copy.
func (c *Catalog) About() models.About {
	a := c.doc.About
	a.FounderNotes = clone(a.FounderNotes)
	return a
}

// ImageURLs lists every remote image the pages reference, without
// duplicates, in a stable order.
func (c *Catalog) ImageURLs() []string {
	var urls []string
	seen := make(map[string]bool)
	add := func(u string) {
		if u == "" || seen[u] {
			return
		}
		seen[u] = true
		urls = append(urls, u)
	}
	for _, w := range c.doc.Work {
		add(w.Image)
	}
	add(c.doc.About.FounderImage)
	add(c.doc.Hero.Poster)
	return urls
}

func clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
