package testutil

import (
	"testing"
	"time"

	"github.com/dalemusser/studiosite/internal/app/store/content"
	"github.com/dalemusser/studiosite/internal/app/system/media"
	"github.com/dalemusser/studiosite/internal/app/system/visitors"
	"github.com/dalemusser/studiosite/internal/app/system/workfilter"
	"github.com/dalemusser/studiosite/internal/domain/models"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// TestSessionKey is a fixed 32-byte key for visitor cookies in tests.
const TestSessionKey = "test-session-key-0123456789abcdef"

// TestCookieName is the visitor cookie name used by Visitors.
const TestCookieName = "studiosite-test"

// Catalog returns the embedded content catalog, failing the test if it
// does not parse.
func Catalog(t *testing.T) *content.Catalog {
	t.Helper()
	cat, err := content.Default()
	if err != nil {
		t.Fatalf("load default catalog: %v", err)
	}
	return cat
}

// SampleWork returns a small portfolio covering every filter family plus
// one item that no filter other than All selects.
func SampleWork() []models.WorkItem {
	return []models.WorkItem{
		{ID: "w1", Title: "River Voices", Category: "Documentary", Image: "https://img.test/w1.jpg", Year: "2023"},
		{ID: "w2", Title: "Launch Spot", Category: "Commercial", Image: "https://img.test/w2.jpg", Year: "2024", Client: "Acme"},
		{ID: "w3", Title: "Town Hall", Category: "Corporate Event", Image: "https://img.test/w3.jpg", Year: "2022"},
		{ID: "w4", Title: "Summer Fest", Category: "Music Video", Image: "https://img.test/w4.jpg", Year: "2024"},
		{ID: "w5", Title: "Reels Pack", Category: "Digital Content", Image: "https://img.test/w5.jpg", Year: "2025"},
		{ID: "w6", Title: "Portraits", Category: "Photography", Image: "https://img.test/w6.jpg", Year: "2021"},
	}
}

// Visitors returns a visitor registry whose controllers filter items after
// delay. The registry is closed when the test ends.
func Visitors(t *testing.T, items []models.WorkItem, delay time.Duration) *visitors.Registry {
	t.Helper()
	store := sessions.NewCookieStore([]byte(TestSessionKey))
	reg := visitors.NewRegistry(store, TestCookieName, 0, func() *workfilter.Controller {
		return workfilter.New(items, delay)
	}, zap.NewNop())
	t.Cleanup(reg.Close)
	return reg
}

// Tracker returns a media tracker for the given items' images with every
// image still pending.
func Tracker(items []models.WorkItem) *media.Tracker {
	urls := make([]string, 0, len(items))
	for _, it := range items {
		urls = append(urls, it.Image)
	}
	return media.NewTracker(urls...)
}
