package bootstrap

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/studiosite/internal/app/store/content"
	"github.com/dalemusser/studiosite/internal/testutil"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func testAppConfig() AppConfig {
	return AppConfig{
		SessionKey:            devSessionKey,
		SessionName:           "studiosite-test",
		WorkFilterDelay:       5 * time.Millisecond,
		SettleWaitTimeout:     time.Second,
		VisitorIdleTTL:        time.Minute,
		VisitorSweepInterval:  time.Minute,
		VisitorMax:            100,
		FilterRateLimit:       2,
		FilterRateWindow:      time.Minute,
		MediaProbe:            false,
		MediaProbeConcurrency: 1,
		MediaProbeTimeout:     time.Second,
	}
}

func connect(t *testing.T, appCfg AppConfig) DBDeps {
	t.Helper()
	deps, err := ConnectDB(context.Background(), &config.CoreConfig{Env: "dev"}, appCfg, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	t.Cleanup(func() {
		_ = Shutdown(context.Background(), nil, appCfg, deps, testLogger())
	})
	return deps
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"defaults ok", "dev", func(*AppConfig) {}, false},
		{"dev key refused in prod", "prod", func(*AppConfig) {}, true},
		{"custom key ok in prod", "prod", func(c *AppConfig) { c.SessionKey = strings.Repeat("k", 40) }, false},
		{"empty session name", "dev", func(c *AppConfig) { c.SessionName = "" }, true},
		{"negative delay", "dev", func(c *AppConfig) { c.WorkFilterDelay = -time.Second }, true},
		{"zero delay ok", "dev", func(c *AppConfig) { c.WorkFilterDelay = 0 }, false},
		{"zero settle timeout", "dev", func(c *AppConfig) { c.SettleWaitTimeout = 0 }, true},
		{"negative visitor max", "dev", func(c *AppConfig) { c.VisitorMax = -1 }, true},
		{"zero rate limit", "dev", func(c *AppConfig) { c.FilterRateLimit = 0 }, true},
		{"probe without concurrency", "dev", func(c *AppConfig) { c.MediaProbe = true; c.MediaProbeConcurrency = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testAppConfig()
			tt.mutate(&cfg)
			err := ValidateConfig(&config.CoreConfig{Env: tt.env}, cfg, testLogger())
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConnectDB_LoadsEmbeddedCatalog(t *testing.T) {
	deps := connect(t, testAppConfig())

	if deps.Catalog == nil || len(deps.Catalog.Work()) == 0 {
		t.Fatal("expected the embedded catalog")
	}
	if got, want := len(deps.Media.URLs()), len(deps.Catalog.ImageURLs()); got != want {
		t.Errorf("tracked images = %d, want %d", got, want)
	}
	if deps.MediaProbe != nil {
		t.Error("MediaProbe should be nil when probing is off")
	}
	if err := EnsureSchema(context.Background(), nil, testAppConfig(), deps, testLogger()); err != nil {
		t.Errorf("EnsureSchema: %v", err)
	}
}

func TestConnectDB_BadContentPath(t *testing.T) {
	cfg := testAppConfig()
	cfg.ContentPath = filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := ConnectDB(context.Background(), nil, cfg, testLogger()); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}

func TestEnsureSchema_UnroutedNav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `
nav:
  - { label: Blog, path: /blog }
services:
  - { category: Film, items: [Shorts] }
work:
  - { id: "1", title: A, category: Documentary }
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := testAppConfig()
	cfg.ContentPath = path
	deps := connect(t, cfg)

	err := EnsureSchema(context.Background(), nil, cfg, deps, testLogger())
	if !errors.Is(err, content.ErrInvalid) {
		t.Fatalf("EnsureSchema error = %v, want ErrInvalid", err)
	}
	if !strings.Contains(err.Error(), "/blog") {
		t.Errorf("error should name the path: %v", err)
	}
}

func TestStartupAndShutdown(t *testing.T) {
	cfg := testAppConfig()
	deps, err := ConnectDB(context.Background(), nil, cfg, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	if err := Startup(context.Background(), nil, cfg, deps, testLogger()); err != nil {
		t.Fatalf("Startup: %v", err)
	}
	if err := Shutdown(context.Background(), nil, cfg, deps, testLogger()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}

func TestRouter_HealthAndWorkState(t *testing.T) {
	deps := connect(t, testAppConfig())
	router := newRouter(deps, testLogger())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/health status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/work/state?wait=1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/work/state status = %d, want 200", rec.Code)
	}
	var st struct {
		Filter  string `json:"filter"`
		Loading bool   `json:"loading"`
		Count   int    `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.Filter != "All" || st.Loading || st.Count != len(deps.Catalog.Work()) {
		t.Errorf("state = %+v, want settled All with every item", st)
	}
}

func TestRouter_FilterRateLimited(t *testing.T) {
	deps := connect(t, testAppConfig())
	router := newRouter(deps, testLogger())
	form := url.Values{"filter": {"Digital"}}

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, testutil.NewFormRequest("POST", "/work/filter", form))
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusSeeOther || codes[1] != http.StatusSeeOther || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, want [303 303 429]", codes)
	}
}

func TestRouter_UnknownFilterRejected(t *testing.T) {
	deps := connect(t, testAppConfig())
	router := newRouter(deps, testLogger())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, testutil.NewFormRequest("POST", "/work/filter", url.Values{"filter": {"bogus"}}))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRouter_NotFound(t *testing.T) {
	deps := connect(t, testAppConfig())
	router := newRouter(deps, testLogger())

	rec := httptest.NewRecorder()
	testutil.RenderIgnoringPanics(func() {
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/no-such-page", nil))
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRouter_HealthWithoutVisitorRegistry(t *testing.T) {
	cat, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	router := newRouter(DBDeps{Catalog: cat}, testLogger())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/health status = %d, want 200", rec.Code)
	}
	var body struct {
		Visitors int `json:"visitors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Visitors != 0 {
		t.Errorf("visitors = %d, want 0", body.Visitors)
	}
}
