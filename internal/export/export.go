// Package export renders composed theme variants into downstream formats
// (CSS custom properties, SCSS variables, Tailwind config).
package export

import (
	"fmt"

	"github.com/tonemint/tonemint/internal/colour"
)

// Renderer turns a theme variant into file content for one output format.
type Renderer interface {
	// Name returns the format name used on the CLI.
	Name() string
	// Render produces the serialized theme for the variant.
	Render(variant colour.ThemeVariant) ([]byte, error)
}

// ForFormat returns the renderer registered for the given format name.
func ForFormat(format string) (Renderer, error) {
	switch format {
	case "css":
		return CSS{}, nil
	case "scss":
		return SCSS{}, nil
	case "tailwind":
		return Tailwind{}, nil
	default:
		return nil, fmt.Errorf("unknown export format: %s (must be css, scss, or tailwind)", format)
	}
}
