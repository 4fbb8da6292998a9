package colour

import "math"

// Canonical reference backgrounds used for contrast measurement.
var (
	White = MustHex("#ffffff")
	Black = MustHex("#000000")
)

// WCAG contrast thresholds.
const (
	ContrastAAA     = 7.0 // WCAG AAA for normal text
	ContrastAA      = 4.5 // WCAG AA for normal text
	ContrastUIFloor = 3.0 // WCAG AA for large text and UI components
)

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
func Luminance(c Colour) float64 {
	rgb := c.RGB()
	rf := gammaCorrect(float64(rgb.R) / 255.0)
	gf := gammaCorrect(float64(rgb.G) / 255.0)
	bf := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum
// contrast (black vs white). Symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef
func ContrastRatio(c1, c2 Colour) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// MaxContrast returns the better of the colour's contrast ratios against the
// canonical white and black backgrounds. Role assignment and adjustment both
// measure against whichever reference the colour performs best on.
func MaxContrast(c Colour) float64 {
	return math.Max(ContrastRatio(c, White), ContrastRatio(c, Black))
}

// HueDistance calculates the angular distance between two hues on the colour
// wheel. Returns a value between 0 and 180 degrees (shortest path).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}
