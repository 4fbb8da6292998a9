package export

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/tonemint/tonemint/internal/colour"
)

var cssTemplate = template.Must(template.New("css").Parse(`/* Generated theme: {{.Name}} */
:root {
{{- range .Tokens}}
  --{{.Slot}}: {{.Value}};
{{- end}}
}
`))

var scssTemplate = template.Must(template.New("scss").Parse(`// Generated theme: {{.Name}}
{{- range .Tokens}}
${{.Slot}}: {{.Value}};
{{- end}}
`))

// tokenEntry is one slot/value pair handed to the templates.
type tokenEntry struct {
	Slot  string
	Value string
}

// templateData is the render context shared by the CSS and SCSS templates.
type templateData struct {
	Name   string
	Tokens []tokenEntry
}

// buildTemplateData flattens a variant's token set in slot order, including
// the shadow rgba literal.
func buildTemplateData(variant colour.ThemeVariant, slugSep string) templateData {
	data := templateData{Name: variant.Name}
	for _, tv := range variant.Colours.Hexes() {
		slot := strings.ReplaceAll(tv.Slot, "_", slugSep)
		data.Tokens = append(data.Tokens, tokenEntry{Slot: slot, Value: tv.Colour.Hex()})
	}
	data.Tokens = append(data.Tokens, tokenEntry{Slot: "shadow", Value: variant.Colours.Shadow})
	return data
}

// CSS renders a variant as CSS custom properties on :root.
type CSS struct{}

// Name returns the format name.
func (CSS) Name() string { return "css" }

// Render produces the CSS custom-property block.
func (CSS) Render(variant colour.ThemeVariant) ([]byte, error) {
	var buf bytes.Buffer
	if err := cssTemplate.Execute(&buf, buildTemplateData(variant, "-")); err != nil {
		return nil, fmt.Errorf("failed to render css: %w", err)
	}
	return buf.Bytes(), nil
}

// SCSS renders a variant as SCSS variables.
type SCSS struct{}

// Name returns the format name.
func (SCSS) Name() string { return "scss" }

// Render produces the SCSS variable block.
func (SCSS) Render(variant colour.ThemeVariant) ([]byte, error) {
	var buf bytes.Buffer
	if err := scssTemplate.Execute(&buf, buildTemplateData(variant, "-")); err != nil {
		return nil, fmt.Errorf("failed to render scss: %w", err)
	}
	return buf.Bytes(), nil
}
