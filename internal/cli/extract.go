package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tonemint/tonemint/internal/colour"
	"github.com/tonemint/tonemint/internal/image"
)

var (
	// Extract command flags
	extractCount       int
	extractFormat      string
	extractShowPreview bool
)

// extractCmd represents the extract command.
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a seed palette from an image",
	Long: `Extract a seed palette from an image using k-means clustering.

The resulting colors feed the assign and compose commands the same way a
hand-picked brand palette does.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract 8 seed colors (default) from a logo
  tonemint extract logo.png

  # Extract 5 colors and pipe hex values into assign
  tonemint assign $(tonemint extract --colours 5 --format hex logo.png)

  # JSON output with previews
  tonemint extract --format json --preview wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractCount, "colours", "c", 8, "number of seed colours to extract (1-64)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, json)")
	extractCmd.Flags().BoolVar(&extractShowPreview, "preview", false, "show colour previews in terminal")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	imagePath := args[0]
	log := newLogger(cmd)

	if err := image.ValidatePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	log.Debug("loading image", "path", imagePath)
	loader := image.NewFileLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	log.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	seeds, err := colour.NewSeedExtractor().Extract(img, extractCount)
	if err != nil {
		return fmt.Errorf("failed to extract seed palette: %w", err)
	}

	out := cmd.OutOrStdout()

	switch extractFormat {
	case "hex":
		if showPreview(extractShowPreview) {
			for _, c := range seeds {
				fmt.Fprintf(out, "%s  %s\n", colour.Preview(c, 4), c.Hex())
			}
			return nil
		}
		hexes := make([]string, len(seeds))
		for i, c := range seeds {
			hexes[i] = c.Hex()
		}
		fmt.Fprintln(out, strings.Join(hexes, " "))
		return nil

	case "json":
		type seedJSON struct {
			Hex string     `json:"hex"`
			RGB colour.RGB `json:"rgb"`
		}
		payload := struct {
			Count  int        `json:"count"`
			Seeds  []seedJSON `json:"seeds"`
			Source string     `json:"source"`
		}{Count: len(seeds), Source: imagePath}
		for _, c := range seeds {
			payload.Seeds = append(payload.Seeds, seedJSON{Hex: c.Hex(), RGB: c.RGB()})
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode seeds: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil

	default:
		return fmt.Errorf("unknown output format: %s (must be hex or json)", extractFormat)
	}
}
