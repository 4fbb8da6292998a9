package export

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/tonemint/tonemint/internal/colour"
)

var tailwindTemplate = template.Must(template.New("tailwind").Parse(`/** Generated theme: {{.Name}} */
module.exports = {
  theme: {
    extend: {
      colors: {
{{- range .Tokens}}
        '{{.Slot}}': '{{.Value}}',
{{- end}}
      },
    },
  },
};
`))

// Tailwind renders a variant as a tailwind.config.js colour extension.
type Tailwind struct{}

// Name returns the format name.
func (Tailwind) Name() string { return "tailwind" }

// Render produces the Tailwind config module.
func (Tailwind) Render(variant colour.ThemeVariant) ([]byte, error) {
	data := templateData{Name: variant.Name}
	for _, tv := range variant.Colours.Hexes() {
		slot := strings.ReplaceAll(tv.Slot, "_", "-")
		data.Tokens = append(data.Tokens, tokenEntry{Slot: slot, Value: tv.Colour.Hex()})
	}

	var buf bytes.Buffer
	if err := tailwindTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render tailwind config: %w", err)
	}
	return buf.Bytes(), nil
}
