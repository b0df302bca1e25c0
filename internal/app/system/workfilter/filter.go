// Package workfilter implements the portfolio filter on the Work page:
// category-family matching over the static work list, and a Controller that
// applies a selection after a fixed delay while exposing a loading flag.
package workfilter

import (
	"errors"
	"strings"

	"github.com/dalemusser/studiosite/internal/domain/models"
)

// Filter is a user-facing portfolio category.
type Filter string

const (
	All         Filter = "All"
	Documentary Filter = "Documentary"
	Commercial  Filter = "Commercial"
	MusicEvent  Filter = "Music/Event"
	Digital     Filter = "Digital"
)

// ErrUnknownFilter is returned by ParseFilter for values outside Choices.
var ErrUnknownFilter = errors.New("unknown work filter")

// Choice pairs a filter with the label shown on its button.
type Choice struct {
	Label string
	Value Filter
}

var choices = []Choice{
	{Label: "All", Value: All},
	{Label: "Documentaries", Value: Documentary},
	{Label: "Commercials", Value: Commercial},
	{Label: "Music & Events", Value: MusicEvent},
	{Label: "Digital", Value: Digital},
}

// families maps a filter to the category substrings it accepts.
// Filters without an entry match on their own lower-cased value.
var families = map[Filter][]string{
	Commercial: {"commercial", "corporate", "brand"},
	MusicEvent: {"music", "event"},
}

// Choices returns the filter buttons in display order.
func Choices() []Choice {
	out := make([]Choice, len(choices))
	copy(out, choices)
	return out
}

// ParseFilter maps request input onto one of the Choices. Matching is
// case-insensitive; an empty value means All.
func ParseFilter(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return All, nil
	}
	for _, c := range choices {
		if strings.EqualFold(s, string(c.Value)) {
			return c.Value, nil
		}
	}
	return "", ErrUnknownFilter
}

// Matches reports whether a work item category belongs to the filter's
// category family.
func (f Filter) Matches(category string) bool {
	if f == All {
		return true
	}
	cat := strings.ToLower(category)
	if subs, ok := families[f]; ok {
		for _, sub := range subs {
			if strings.Contains(cat, sub) {
				return true
			}
		}
		return false
	}
	return strings.Contains(cat, strings.ToLower(string(f)))
}

// Apply returns the items matching f, in their original order. The result is
// always a new slice, so callers may keep it after items changes hands.
func Apply(items []models.WorkItem, f Filter) []models.WorkItem {
	out := make([]models.WorkItem, 0, len(items))
	for _, it := range items {
		if f.Matches(it.Category) {
			out = append(out, it)
		}
	}
	return out
}
