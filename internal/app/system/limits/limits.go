// internal/app/system/limits/limits.go
package limits

// Request body size limits.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxFilterFormSize bounds POST /work/filter and /work/reset bodies,
	// which carry at most one short field.
	MaxFilterFormSize = 4 << 10 // 4 KB
)
