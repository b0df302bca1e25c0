package contact_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/studiosite/internal/app/features/contact"
	"github.com/dalemusser/studiosite/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *contact.Handler {
	t.Helper()
	return contact.NewHandler(testutil.Catalog(t), zap.NewNop())
}

func TestNewHandler(t *testing.T) {
	h := newTestHandler(t)
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
	if h.Catalog.Contact().Email == "" {
		t.Error("catalog should provide a contact email")
	}
}

func TestServeContact_ReturnsOK(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/contact", nil)
	rec := httptest.NewRecorder()

	// Handler will try to render a template which may panic without initialized templates
	testutil.RenderIgnoringPanics(func() {
		handler.ServeContact(rec, req)
	})
}
