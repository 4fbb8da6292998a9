package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns an ANSI-coloured preview block for a colour.
// Width specifies how many characters wide the block should be.
func Preview(c Colour, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	rgb := c.RGB()
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	block := strings.Repeat(" ", width)

	return bg + block + ansiReset
}

// PreviewWithText returns a colour preview with a text overlay. The text
// colour is black or white, whichever contrasts better with the swatch.
func PreviewWithText(c Colour, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	var fg RGB
	if Luminance(c) <= 0.5 {
		fg = RGB{R: 255, G: 255, B: 255}
	}

	if len(text) > width {
		text = text[:width]
	}
	padded := text + strings.Repeat(" ", width-len(text))

	rgb := c.RGB()
	return fmt.Sprintf("%s%d;%d;%d%s%s%d;%d;%d%s%s%s",
		ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix,
		ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix,
		padded, ansiReset)
}
