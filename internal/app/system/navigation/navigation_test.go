package navigation

import (
	"testing"

	"github.com/dalemusser/studiosite/internal/domain/models"
)

func TestIsActive(t *testing.T) {
	tests := []struct {
		path    string
		current string
		want    bool
	}{
		{"/", "/", true},
		{"/", "", true},
		{"/", "/work", false},
		{"/work", "/work", true},
		{"/work", "/work/grid", true},
		{"/work", "/workshop", false},
		{"/about", "/work", false},
		{"/services/", "/services/x", true},
	}

	for _, tt := range tests {
		if got := IsActive(tt.path, tt.current); got != tt.want {
			t.Errorf("IsActive(%q, %q) = %v, want %v", tt.path, tt.current, got, tt.want)
		}
	}
}

func TestLinks(t *testing.T) {
	items := []models.NavItem{
		{Label: "Home", Path: "/"},
		{Label: "Work", Path: "/work"},
		{Label: "Contact", Path: "/contact"},
	}

	links := Links(items, "/work/grid")
	if len(links) != 3 {
		t.Fatalf("len = %d, want 3", len(links))
	}
	for _, l := range links {
		if want := l.Path == "/work"; l.Active != want {
			t.Errorf("%s Active = %v, want %v", l.Label, l.Active, want)
		}
	}
}
