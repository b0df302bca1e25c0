// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"time"

	"github.com/dalemusser/studiosite/internal/app/store/content"
	"github.com/dalemusser/studiosite/internal/app/system/navigation"
	"github.com/dalemusser/studiosite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, catalog, "Page Title"),
//	}
type BaseVM struct {
	// Site identity
	SiteName string
	Tagline  string

	// Page context
	Title       string
	CurrentPath string
	Nav         []navigation.Link

	// Footer
	Contact models.ContactInfo
	Year    int
}

// siteName overrides the catalog's site name when set.
var siteName string

// Init sets the configured site name. Call this once at startup from
// bootstrap; an empty name keeps the catalog's.
func Init(name string) {
	siteName = name
}

// NewBaseVM creates a fully populated BaseVM for a page.
// catalog may be nil, in which case only defaults are filled in.
func NewBaseVM(r *http.Request, catalog *content.Catalog, title string) BaseVM {
	current := httpnav.CurrentPath(r)

	vm := BaseVM{
		SiteName:    models.DefaultSiteName,
		Title:       title,
		CurrentPath: current,
		Year:        time.Now().Year(),
	}

	if catalog != nil {
		site := catalog.Site()
		vm.SiteName = site.Name
		vm.Tagline = site.Tagline
		vm.Nav = navigation.Links(catalog.Nav(), current)
		vm.Contact = catalog.Contact()
	}
	if siteName != "" {
		vm.SiteName = siteName
	}

	return vm
}
