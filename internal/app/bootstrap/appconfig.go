// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// AppConfig is where the site's own settings live: content, the visitor
// cookie, the Work filter timing, and the background workers.
type AppConfig struct {
	// Site content
	SiteName    string // Overrides the catalog's site name when set
	ContentPath string // Optional YAML catalog replacing the embedded one

	// Visitor cookie configuration
	SessionKey  string // Secret key for signing visitor cookies (must be strong in production)
	SessionName string // Cookie name (default: studiosite-visitor)

	// Work filter
	WorkFilterDelay   time.Duration // Artificial delay before a selection commits
	SettleWaitTimeout time.Duration // Longest GET /work/state?wait=1 may block

	// Visitor registry
	VisitorIdleTTL       time.Duration // Idle time before a visitor's controller is closed
	VisitorSweepInterval time.Duration // How often idle visitors are swept
	VisitorMax           int           // Max tracked visitors (0 = unbounded)

	// Rate limiting of POST /work/filter and /work/reset
	FilterRateLimit  int           // Requests allowed per window per client IP
	FilterRateWindow time.Duration // Window length

	// Media probing
	MediaProbe            bool          // Probe catalog images at startup
	MediaProbeConcurrency int           // Simultaneous probe requests
	MediaProbeTimeout     time.Duration // Per-request probe timeout
}
