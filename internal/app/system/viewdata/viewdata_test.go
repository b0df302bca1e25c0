package viewdata

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/studiosite/internal/app/store/content"
	"github.com/dalemusser/studiosite/internal/domain/models"
)

func TestNewBaseVM_NilCatalog(t *testing.T) {
	Init("")
	r := httptest.NewRequest("GET", "/about", nil)

	vm := NewBaseVM(r, nil, "About")
	if vm.SiteName != models.DefaultSiteName {
		t.Errorf("SiteName = %q, want default", vm.SiteName)
	}
	if vm.Title != "About" {
		t.Errorf("Title = %q, want About", vm.Title)
	}
	if len(vm.Nav) != 0 {
		t.Errorf("Nav should be empty without a catalog")
	}
}

func TestNewBaseVM_WithCatalog(t *testing.T) {
	Init("")
	cat, err := content.Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	r := httptest.NewRequest("GET", "/work", nil)

	vm := NewBaseVM(r, cat, "Work")
	if vm.SiteName != cat.Site().Name {
		t.Errorf("SiteName = %q, want %q", vm.SiteName, cat.Site().Name)
	}
	if vm.Contact.Email == "" {
		t.Error("expected contact info from catalog")
	}

	active := 0
	for _, l := range vm.Nav {
		if l.Active {
			active++
			if l.Path != "/work" {
				t.Errorf("active link = %q, want /work", l.Path)
			}
		}
	}
	if active != 1 {
		t.Errorf("active links = %d, want 1", active)
	}
}

func TestInit_OverridesSiteName(t *testing.T) {
	Init("Studio X")
	t.Cleanup(func() { Init("") })

	cat, _ := content.Default()
	vm := NewBaseVM(httptest.NewRequest("GET", "/", nil), cat, "Home")
	if vm.SiteName != "Studio X" {
		t.Errorf("SiteName = %q, want Studio X", vm.SiteName)
	}
}
