package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tonemint/tonemint/internal/colour"
	"github.com/tonemint/tonemint/internal/export"
	"github.com/tonemint/tonemint/internal/service"
)

var (
	// Compose command flags
	composeType        string
	composePrimary     string
	composeStyle       string
	composeLevel       string
	composeBrand       []string
	composeFormat      string
	composeShowPreview bool
)

// composeCmd represents the compose command.
var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Compose theme variants from a primary color",
	Long: `Compose complete theme token sets from a single primary color.

Each variant carries sixteen named tokens (background, surface, text,
interaction states, semantic colors, and more) derived from the primary
color, the chosen style preset, and any supplied brand colors. Every variant
passes through an accessibility check that repairs failing text and primary
tokens, and the result includes an accessibility report and a brand harmony
report.

Examples:
  # A light material theme from a blue primary
  tonemint compose --primary '#2563eb'

  # Light and dark plus high-contrast and colorblind-friendly variants
  tonemint compose --type all --primary '#2563eb' --style ios

  # Target AAA and pin brand colors
  tonemint compose --primary '#2563eb' --level AAA --brand '#e11d48,#0891b2'

  # Emit CSS custom properties or a Tailwind config
  tonemint compose --primary '#2563eb' --format css
  tonemint compose --primary '#2563eb' --format tailwind`,
	RunE: runCompose,
}

func init() {
	composeCmd.Flags().StringVarP(&composeType, "type", "t", "light", "theme type (light, dark, high_contrast, colorblind_friendly, all)")
	composeCmd.Flags().StringVarP(&composePrimary, "primary", "p", "", "primary color as 6-digit hex (required)")
	composeCmd.Flags().StringVarP(&composeStyle, "style", "s", "material", "style preset (material, ios, fluent, custom)")
	composeCmd.Flags().StringVarP(&composeLevel, "level", "l", "AA", "accessibility level (AA, AAA)")
	composeCmd.Flags().StringSliceVarP(&composeBrand, "brand", "b", nil, "brand colors to integrate")
	composeCmd.Flags().StringVarP(&composeFormat, "format", "f", "table", "output format (table, json, css, scss, tailwind)")
	composeCmd.Flags().BoolVar(&composeShowPreview, "preview", false, "show color previews in terminal")
	_ = composeCmd.MarkFlagRequired("primary")
}

// runCompose executes the compose command.
func runCompose(cmd *cobra.Command, args []string) error {
	svc := newService(cmd)

	resp, err := svc.ComposeTheme(service.ComposeRequest{
		ThemeType:          composeType,
		PrimaryColour:      composePrimary,
		Style:              composeStyle,
		AccessibilityLevel: composeLevel,
		BrandColours:       composeBrand,
	})
	if err != nil {
		return fmt.Errorf("failed to compose theme: %w", err)
	}

	out := cmd.OutOrStdout()

	switch composeFormat {
	case "json":
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil

	case "table":
		for _, variant := range resp.Variants {
			fmt.Fprint(out, renderVariant(variant, showPreview(composeShowPreview)))
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, renderReports(resp))
		return nil

	case "css", "scss", "tailwind":
		renderer, err := export.ForFormat(composeFormat)
		if err != nil {
			return err
		}
		for _, variant := range resp.Variants {
			content, err := renderer.Render(variant)
			if err != nil {
				return fmt.Errorf("failed to render %s variant: %w", variant.Name, err)
			}
			fmt.Fprint(out, string(content))
		}
		return nil

	default:
		return fmt.Errorf("unknown output format: %s (must be table, json, css, scss, or tailwind)", composeFormat)
	}
}

// renderVariant formats one variant's token set as a table.
func renderVariant(variant colour.ThemeVariant, preview bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Variant: %s (score %d, %s)\n",
		variant.Name, variant.AccessibilityScore, variant.WCAGCompliance)

	headers := []string{"TOKEN", "VALUE"}
	if preview {
		headers = append([]string{""}, headers...)
	}
	table := NewTable(headers)

	for _, tv := range variant.Colours.Hexes() {
		row := []string{tv.Slot, tv.Colour.Hex()}
		if preview {
			row = append([]string{colour.Preview(tv.Colour, 4)}, row...)
		}
		table.AddRow(row)
	}
	shadowRow := []string{"shadow", variant.Colours.Shadow}
	if preview {
		shadowRow = append([]string{""}, shadowRow...)
	}
	table.AddRow(shadowRow)

	sb.WriteString(table.Render())
	return sb.String()
}

// renderReports summarises the accessibility and brand reports.
func renderReports(resp *service.ComposeResponse) string {
	var sb strings.Builder

	report := resp.AccessibilityReport
	fmt.Fprintf(&sb, "Accessibility: score %d, compliance %s, adjustments %d\n",
		report.OverallScore, report.OverallCompliance, report.AdjustmentsMade)
	for _, issue := range report.ContrastIssues {
		fmt.Fprintf(&sb, "  issue: %s %s measured %.2f:1, requires %.2f:1\n",
			issue.Variant, issue.Pair, issue.Measured, issue.Required)
	}
	for _, rec := range report.Recommendations {
		fmt.Fprintf(&sb, "  recommendation: %s\n", rec)
	}

	brand := resp.BrandReport
	fmt.Fprintf(&sb, "Brand: harmony maintained %v, colors used %s\n",
		brand.HarmonyMaintained, strings.Join(brand.BrandColoursUsed, ", "))
	for _, note := range brand.AdjustmentsMade {
		fmt.Fprintf(&sb, "  note: %s\n", note)
	}

	return sb.String()
}
