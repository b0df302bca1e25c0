// Package navigation builds the primary navigation with the current page
// marked active.
package navigation

import (
	"strings"

	"github.com/dalemusser/studiosite/internal/domain/models"
)

// Link is a navigation entry ready for rendering.
type Link struct {
	Label  string
	Path   string
	Active bool
}

// IsActive reports whether the page at path should be highlighted while the
// visitor is at current. "/" only matches itself; other paths also match
// their sub-paths, so /work is active on /work/grid.
func IsActive(path, current string) bool {
	if current == "" {
		current = "/"
	}
	if path == "/" {
		return current == "/"
	}
	return current == path || strings.HasPrefix(current, strings.TrimSuffix(path, "/")+"/")
}

// Links returns the navigation items with Active set for current.
func Links(items []models.NavItem, current string) []Link {
	out := make([]Link, 0, len(items))
	for _, it := range items {
		out = append(out, Link{
			Label:  it.Label,
			Path:   it.Path,
			Active: IsActive(it.Path, current),
		})
	}
	return out
}
