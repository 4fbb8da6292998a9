// Package colour implements the semantic theme engine: the colour value
// type, WCAG contrast maths, role assignment heuristics, theme variant
// composition, and compliance reporting.
package colour

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// hexPattern matches 6-digit hex colour strings with a leading '#'.
var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// RGB represents a colour in 8-bit RGB channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g. "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// HSL represents a colour in HSL space.
// H is hue in degrees [0, 360); S and L are percentages [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Colour is an immutable colour value. Two colours are equal iff their hex
// strings are equal. Colours built via FromHSL keep the given HSL components
// exactly, so hue survives derivation chains without hex roundtrip drift.
type Colour struct {
	rgb RGB
	hsl HSL
}

// FromHex parses a 6-digit hex colour string (with leading '#').
func FromHex(s string) (Colour, error) {
	if !hexPattern.MatchString(s) {
		return Colour{}, fmt.Errorf("invalid hex colour %q: expected 6-digit hex like #2563eb", s)
	}
	r, _ := strconv.ParseUint(s[1:3], 16, 8)
	g, _ := strconv.ParseUint(s[3:5], 16, 8)
	b, _ := strconv.ParseUint(s[5:7], 16, 8)
	rgb := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
	return Colour{rgb: rgb, hsl: rgbToHSL(rgb)}, nil
}

// MustHex parses a hex colour string and panics on failure.
// Intended for package-level constants only.
func MustHex(s string) Colour {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromHSL builds a colour from hue (0-360), saturation and lightness (0-100).
// Inputs are clamped to their ranges; hue wraps around the wheel.
func FromHSL(h, s, l float64) Colour {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp(s, 0, 100)
	l = clamp(l, 0, 100)
	return Colour{
		rgb: hslToRGB(h, s/100, l/100),
		hsl: HSL{H: h, S: s, L: l},
	}
}

// Hex returns the colour as a lowercase hex string.
func (c Colour) Hex() string {
	return c.rgb.Hex()
}

// RGB returns the 8-bit RGB channels.
func (c Colour) RGB() RGB {
	return c.rgb
}

// HSL returns the HSL components.
func (c Colour) HSL() HSL {
	return c.hsl
}

// Equal reports whether two colours have the same hex value.
func (c Colour) Equal(other Colour) bool {
	return c.rgb == other.rgb
}

// ContrastRatio returns the WCAG contrast ratio against another colour.
func (c Colour) ContrastRatio(other Colour) float64 {
	return ContrastRatio(c, other)
}

// String returns the hex representation.
func (c Colour) String() string {
	return c.Hex()
}

// MarshalText encodes the colour as its hex string.
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a colour from a hex string.
func (c *Colour) UnmarshalText(text []byte) error {
	parsed, err := FromHex(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// rgbToHSL converts RGB to HSL colour space.
// Returns hue (0-360) and saturation/lightness as percentages (0-100).
func rgbToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	if delta == 0 {
		// Achromatic.
		return HSL{H: 0, S: 0, L: l * 100}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h *= 60

	return HSL{H: h, S: s * 100, L: l * 100}
}

// hslToRGB converts HSL to RGB colour space.
// h is hue (0-360); s and l are fractions (0-1). Channel values are rounded,
// not truncated, so HSL constants map to stable hex goldens.
func hslToRGB(h, s, l float64) RGB {
	if s == 0 {
		// Achromatic (grey).
		v := uint8(math.Round(l * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToRGB(p, q, h+120)
	g := hueToRGB(p, q, h)
	b := hueToRGB(p, q, h-120)

	return RGB{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// clamp restricts v to the range [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
