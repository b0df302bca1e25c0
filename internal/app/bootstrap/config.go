// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/studiosite/internal/app/system/workfilter"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the studio site.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: session_name, work_filter_delay, etc.
//   - Environment variables: STUDIOSITE_SESSION_NAME, STUDIOSITE_WORK_FILTER_DELAY, etc.
//   - Command-line flags: --session_name, --work_filter_delay, etc.
var appConfigKeys = []config.AppKey{
	{Name: "site_name", Default: "", Desc: "Site name (blank uses the content catalog's)"},
	{Name: "content_path", Default: "", Desc: "Path to a YAML content catalog (blank uses the embedded one)"},

	{Name: "session_key", Default: devSessionKey, Desc: "Visitor cookie signing key (must be strong in production)"},
	{Name: "session_name", Default: "studiosite-visitor", Desc: "Visitor cookie name"},

	// Work filter
	{Name: "work_filter_delay", Default: "800ms", Desc: "Delay before a Work filter selection is applied"},
	{Name: "settle_wait_timeout", Default: "5s", Desc: "Longest a request may wait for a filter to settle"},

	// Visitors
	{Name: "visitor_idle_ttl", Default: "30m", Desc: "Idle time before a visitor's filter state is dropped"},
	{Name: "visitor_sweep_interval", Default: "1m", Desc: "How often idle visitors are swept"},
	{Name: "visitor_max", Default: 10000, Desc: "Maximum tracked visitors (0 = unbounded)"},

	// Rate limiting
	{Name: "filter_rate_limit", Default: 30, Desc: "Filter requests allowed per window per client IP"},
	{Name: "filter_rate_window", Default: "1m", Desc: "Filter rate limit window"},

	// Media probing
	{Name: "media_probe", Default: true, Desc: "Check catalog images at startup"},
	{Name: "media_probe_concurrency", Default: 4, Desc: "Simultaneous media probe requests"},
	{Name: "media_probe_timeout", Default: "5s", Desc: "Timeout for one media probe request"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, STUDIOSITE_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "STUDIOSITE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SiteName:    appValues.String("site_name"),
		ContentPath: appValues.String("content_path"),

		SessionKey:  appValues.String("session_key"),
		SessionName: appValues.String("session_name"),

		// Work filter
		WorkFilterDelay:   appValues.Duration("work_filter_delay", workfilter.DefaultDelay),
		SettleWaitTimeout: appValues.Duration("settle_wait_timeout", 5*time.Second),

		// Visitors
		VisitorIdleTTL:       appValues.Duration("visitor_idle_ttl", 30*time.Minute),
		VisitorSweepInterval: appValues.Duration("visitor_sweep_interval", time.Minute),
		VisitorMax:           appValues.Int("visitor_max"),

		// Rate limiting
		FilterRateLimit:  appValues.Int("filter_rate_limit"),
		FilterRateWindow: appValues.Duration("filter_rate_window", time.Minute),

		// Media probing
		MediaProbe:            appValues.Bool("media_probe"),
		MediaProbeConcurrency: appValues.Int("media_probe_concurrency"),
		MediaProbeTimeout:     appValues.Duration("media_probe_timeout", 5*time.Second),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// In production the development session key is refused, since anyone could
// forge visitor cookies with it.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateAppConfig(appCfg); err != nil {
		return err
	}

	if coreCfg != nil && coreCfg.Env == "prod" && appCfg.SessionKey == devSessionKey {
		logger.Error("development session key used in production")
		return fmt.Errorf("session_key must be set in production")
	}

	return nil
}

const devSessionKey = "dev-only-change-me-please-0123456789ABCDEF"

// validateAppConfig checks the values that do not depend on the environment.
func validateAppConfig(appCfg AppConfig) error {
	if appCfg.SessionName == "" {
		return fmt.Errorf("session_name must not be empty")
	}
	if appCfg.WorkFilterDelay < 0 {
		return fmt.Errorf("work_filter_delay must not be negative (got %s)", appCfg.WorkFilterDelay)
	}
	if appCfg.SettleWaitTimeout <= 0 {
		return fmt.Errorf("settle_wait_timeout must be positive (got %s)", appCfg.SettleWaitTimeout)
	}
	if appCfg.VisitorIdleTTL <= 0 || appCfg.VisitorSweepInterval <= 0 {
		return fmt.Errorf("visitor_idle_ttl and visitor_sweep_interval must be positive")
	}
	if appCfg.VisitorMax < 0 {
		return fmt.Errorf("visitor_max must not be negative (got %d)", appCfg.VisitorMax)
	}
	if appCfg.FilterRateLimit <= 0 || appCfg.FilterRateWindow <= 0 {
		return fmt.Errorf("filter_rate_limit and filter_rate_window must be positive")
	}
	if appCfg.MediaProbe && appCfg.MediaProbeConcurrency <= 0 {
		return fmt.Errorf("media_probe_concurrency must be positive when media_probe is on")
	}
	return nil
}
