package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tonemint/tonemint/internal/colour"
	"github.com/tonemint/tonemint/internal/service"
)

var (
	// Assign command flags
	assignRoles          []string
	assignContext        string
	assignEnsureContrast bool
	assignLevel          string
	assignPreserve       []string
	assignFormat         string
	assignShowPreview    bool
)

// assignCmd represents the assign command.
var assignCmd = &cobra.Command{
	Use:   "assign <color>...",
	Short: "Assign palette colors to semantic UI roles",
	Long: `Assign each color in a palette to the semantic UI role it suits best.

Roles are scored on hue and saturation heuristics: greens gravitate to
success, reds to error, low-saturation colors to neutral, and so on. When no
palette color qualifies for a role, a fixed fallback color is synthesized so
output stays reproducible.

Examples:
  # Assign all seven roles from a palette
  tonemint assign '#2563eb' '#dc2626' '#16a34a'

  # Only pick primary and error, enforcing AA contrast
  tonemint assign --roles primary,error --ensure-contrast '#2563eb' '#dc2626'

  # Keep brand colors untouched while repairing the rest
  tonemint assign --ensure-contrast --preserve '#ff0000' '#ff0000' '#00ff00'

  # Add mobile usage guidance and JSON output
  tonemint assign --context mobile --format json '#2563eb' '#64748b'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAssign,
}

func init() {
	assignCmd.Flags().StringSliceVarP(&assignRoles, "roles", "r", nil, "roles to assign (default: all)")
	assignCmd.Flags().StringVar(&assignContext, "context", "", "usage context (web, mobile, print)")
	assignCmd.Flags().BoolVar(&assignEnsureContrast, "ensure-contrast", false, "repair colors that miss the contrast target")
	assignCmd.Flags().StringVarP(&assignLevel, "level", "l", "AA", "accessibility level (AA, AAA)")
	assignCmd.Flags().StringSliceVar(&assignPreserve, "preserve", nil, "brand colors that must never be adjusted")
	assignCmd.Flags().StringVarP(&assignFormat, "format", "f", "table", "output format (table, json)")
	assignCmd.Flags().BoolVar(&assignShowPreview, "preview", false, "show color previews in terminal")
}

// runAssign executes the assign command.
func runAssign(cmd *cobra.Command, args []string) error {
	svc := newService(cmd)

	resp, err := svc.AssignSemanticRoles(service.AssignRequest{
		Palette:              args,
		Roles:                assignRoles,
		Context:              assignContext,
		EnsureContrast:       assignEnsureContrast,
		AccessibilityLevel:   assignLevel,
		PreserveBrandColours: assignPreserve,
	})
	if err != nil {
		return fmt.Errorf("failed to assign roles: %w", err)
	}

	switch assignFormat {
	case "json":
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	case "table":
		fmt.Fprint(cmd.OutOrStdout(), renderMappingTable(resp.Mappings, showPreview(assignShowPreview)))
		return nil
	default:
		return fmt.Errorf("unknown output format: %s (must be table or json)", assignFormat)
	}
}

// renderMappingTable formats role mappings as an aligned table.
func renderMappingTable(mappings []colour.Mapping, preview bool) string {
	headers := []string{"ROLE", "COLOR", "CONTRAST", "ADJUSTED", "NOTES"}
	if preview {
		headers = append([]string{""}, headers...)
	}

	table := NewTable(headers)
	noteCol := 4
	if preview {
		noteCol = 5
	}
	table.SetColumnMaxWidth(noteCol, 60)

	for _, m := range mappings {
		adjusted := "no"
		if m.Adjusted {
			adjusted = fmt.Sprintf("yes (was %s)", m.OriginalColour.Hex())
		}
		row := []string{
			string(m.Role),
			m.Colour.Hex(),
			fmt.Sprintf("%.2f:1", m.ContrastRatio),
			adjusted,
			strings.Join(m.Notes, "; "),
		}
		if preview {
			row = append([]string{colour.Preview(m.Colour, 4)}, row...)
		}
		table.AddRow(row)
	}
	return table.Render()
}

// showPreview gates ANSI previews on having a real terminal on stdout.
func showPreview(requested bool) bool {
	return requested && term.IsTerminal(int(os.Stdout.Fd()))
}
