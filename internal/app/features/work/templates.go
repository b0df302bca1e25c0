// internal/app/features/work/templates.go
package work

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "work",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
