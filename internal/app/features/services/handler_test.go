package services

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/studiosite/internal/testutil"
	"go.uber.org/zap"
)

func TestServeServices(t *testing.T) {
	h := NewHandler(testutil.Catalog(t), zap.NewNop())

	req := httptest.NewRequest("GET", "/services", nil)
	rec := httptest.NewRecorder()

	testutil.RenderIgnoringPanics(func() {
		h.ServeServices(rec, req)
	})
}

func TestBuildPage(t *testing.T) {
	cat := testutil.Catalog(t)
	data := buildPage(cat)

	services := cat.Services()
	if len(data.Categories) != len(services) {
		t.Fatalf("categories = %d, want %d", len(data.Categories), len(services))
	}

	wantNumbers := []string{"01", "02", "03", "04", "05", "06"}
	for i, c := range data.Categories {
		if c.Number != wantNumbers[i] {
			t.Errorf("category %d number = %q, want %q", i, c.Number, wantNumbers[i])
		}
		if c.Category != services[i].Category {
			t.Errorf("category %d = %q, want %q", i, c.Category, services[i].Category)
		}
		if len(c.Items) == 0 {
			t.Errorf("category %q has no items", c.Category)
		}
	}
	if data.Categories[1].Reveal.Delay <= data.Categories[0].Reveal.Delay {
		t.Error("categories should reveal staggered")
	}
	if data.Intro == "" {
		t.Error("expected intro copy")
	}
}
