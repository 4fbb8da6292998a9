package colour

import (
	"fmt"
	"math"
)

// Role represents the semantic purpose a colour serves in a UI.
type Role string

const (
	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
	RoleSuccess   Role = "success"
	RoleWarning   Role = "warning"
	RoleError     Role = "error"
	RoleInfo      Role = "info"
	RoleNeutral   Role = "neutral"
)

// Roles lists every semantic role in canonical order.
var Roles = []Role{
	RolePrimary,
	RoleSecondary,
	RoleSuccess,
	RoleWarning,
	RoleError,
	RoleInfo,
	RoleNeutral,
}

// Valid reports whether the role is one of the closed semantic set.
func (r Role) Valid() bool {
	switch r {
	case RolePrimary, RoleSecondary, RoleSuccess, RoleWarning, RoleError, RoleInfo, RoleNeutral:
		return true
	}
	return false
}

// fallbackThreshold is the score below which hue-band roles synthesize a
// fixed fallback colour instead of using the best palette candidate.
const fallbackThreshold = 0.5

// roleFallbacks are the fixed HSL triples synthesized when no palette
// candidate scores well enough for a hue-band role. They are intentionally
// not derived from the palette so output stays reproducible.
var roleFallbacks = map[Role]HSL{
	RoleSuccess: {H: 120, S: 60, L: 45},
	RoleWarning: {H: 45, S: 80, L: 55},
	RoleError:   {H: 0, S: 70, L: 50},
	RoleInfo:    {H: 220, S: 70, L: 50},
}

// FallbackColour returns the fixed synthesized colour for a hue-band role.
// The second return is false for roles that never synthesize (primary,
// secondary, neutral).
func FallbackColour(role Role) (Colour, bool) {
	hsl, ok := roleFallbacks[role]
	if !ok {
		return Colour{}, false
	}
	return FromHSL(hsl.H, hsl.S, hsl.L), true
}

// hueBand describes a preferred and acceptable hue range for a semantic
// role. Ranges are inclusive; a role may have wraparound segments (error
// spans the red band across 0).
type hueBand struct {
	ideal      [][2]float64 // score 1.0
	acceptable [][2]float64 // score 0.7
}

var roleHueBands = map[Role]hueBand{
	RoleSuccess: {
		ideal:      [][2]float64{{90, 150}},
		acceptable: [][2]float64{{60, 180}},
	},
	RoleWarning: {
		ideal:      [][2]float64{{30, 60}},
		acceptable: [][2]float64{{15, 75}},
	},
	RoleError: {
		ideal:      [][2]float64{{0, 30}, {330, 360}},
		acceptable: [][2]float64{{315, 360}, {0, 45}},
	},
	RoleInfo: {
		ideal:      [][2]float64{{210, 270}},
		acceptable: [][2]float64{{180, 300}},
	},
}

// hueScore scores a hue against a role's bands: 1.0 inside the ideal band,
// 0.7 inside the acceptable band, 0.2 otherwise.
func (b hueBand) hueScore(h float64) float64 {
	for _, r := range b.ideal {
		if h >= r[0] && h <= r[1] {
			return 1.0
		}
	}
	for _, r := range b.acceptable {
		if h >= r[0] && h <= r[1] {
			return 0.7
		}
	}
	return 0.2
}

// scoreForRole scores a single candidate for a role. Neutral is not scored
// here: it minimises saturation rather than maximising a score.
func scoreForRole(role Role, c Colour, primaryHue float64) float64 {
	hsl := c.HSL()
	switch role {
	case RolePrimary:
		return 0.7*(hsl.S/100) + 0.3*(1-math.Abs(hsl.L-50)/50)
	case RoleSecondary:
		d := HueDistance(hsl.H, primaryHue)
		switch {
		case d >= 30 && d <= 60:
			return 1.0 // analogous
		case d >= 150 && d <= 210:
			return 0.8 // complementary
		default:
			return 0.3
		}
	default:
		band, ok := roleHueBands[role]
		if !ok {
			return 0
		}
		return 0.8*band.hueScore(hsl.H) + 0.2*(hsl.S/100)
	}
}

// AssignRole picks the best palette colour for a semantic role using
// hue/saturation heuristics. Ties resolve to the first candidate in palette
// order. Hue-band roles (success, warning, error, info) synthesize a fixed
// fallback colour when no candidate scores at least 0.5.
//
// The palette must be non-empty; callers validate before invoking.
func AssignRole(role Role, palette []Colour) Colour {
	switch role {
	case RoleNeutral:
		// Lowest saturation wins.
		best := palette[0]
		bestSat := best.HSL().S
		for _, c := range palette[1:] {
			if s := c.HSL().S; s < bestSat {
				best = c
				bestSat = s
			}
		}
		return best

	case RoleSecondary:
		if len(palette) < 2 {
			return palette[0]
		}
		primary := AssignRole(RolePrimary, palette)
		primaryHue := primary.HSL().H
		var best Colour
		bestScore := -1.0
		for _, c := range palette {
			if c.Equal(primary) {
				continue
			}
			if score := scoreForRole(RoleSecondary, c, primaryHue); score > bestScore {
				best = c
				bestScore = score
			}
		}
		if bestScore < 0 {
			// Palette was all copies of the primary colour.
			return palette[0]
		}
		return best

	default:
		best := palette[0]
		bestScore := scoreForRole(role, best, 0)
		for _, c := range palette[1:] {
			if score := scoreForRole(role, c, 0); score > bestScore {
				best = c
				bestScore = score
			}
		}
		if bestScore < fallbackThreshold {
			if fallback, ok := FallbackColour(role); ok {
				return fallback
			}
		}
		return best
	}
}

// Mapping records a semantic role assignment together with its measured
// contrast and accessibility metadata.
type Mapping struct {
	Role            Role     `json:"role"`
	Colour          Colour   `json:"color"`
	OriginalColour  *Colour  `json:"original_color,omitempty"`
	Adjusted        bool     `json:"adjusted"`
	ContrastRatio   float64  `json:"contrast_ratio"`
	Notes           []string `json:"accessibility_notes"`
	UsageGuidelines []string `json:"usage_guidelines"`
}

// AssignOptions controls the batch assignment pass.
type AssignOptions struct {
	// Context adds a context-specific usage guideline ("mobile" or "print").
	Context string
	// EnsureContrast repairs colours that miss the target ratio.
	EnsureContrast bool
	// TargetRatio is the contrast target applied when EnsureContrast is set.
	// Zero means WCAG AA (4.5).
	TargetRatio float64
	// PreserveColours are brand colours that must never be mutated, keyed by
	// lowercase hex.
	PreserveColours map[string]bool
}

// brandPreservedNote is attached to mappings whose colour was pinned by the
// caller's brand preservation set.
const brandPreservedNote = "Color preserved as brand color"

// roleGuidelines are the fixed usage guidelines attached per role.
var roleGuidelines = map[Role][]string{
	RolePrimary:   {"Use for primary actions, links, and key interactive elements"},
	RoleSecondary: {"Use for secondary actions and supporting accents"},
	RoleSuccess:   {"Use for positive feedback and confirmation states"},
	RoleWarning:   {"Use sparingly for caution states to avoid alarm fatigue"},
	RoleError:     {"Use for destructive actions and error states", "Must have high contrast for accessibility"},
	RoleInfo:      {"Use for informational messages and neutral notifications"},
	RoleNeutral:   {"Use for body text, borders, and dividers"},
}

// contextGuidelines are appended when the caller names a usage context.
var contextGuidelines = map[string]string{
	"mobile": "Ensure touch targets using this color meet minimum size requirements",
	"print":  "Verify this color remains distinguishable in grayscale print output",
}

// complianceNote describes how a contrast ratio measures up against the WCAG
// tiers.
func complianceNote(ratio float64) string {
	switch {
	case ratio >= ContrastAAA:
		return fmt.Sprintf("Contrast ratio %.2f:1 meets AAA", ratio)
	case ratio >= ContrastAA:
		return fmt.Sprintf("Contrast ratio %.2f:1 meets AA", ratio)
	case ratio >= ContrastUIFloor:
		return fmt.Sprintf("Contrast ratio %.2f:1 is acceptable for UI elements but not text", ratio)
	default:
		return fmt.Sprintf("Contrast ratio %.2f:1 indicates poor contrast", ratio)
	}
}

// AssignRoles assigns each requested role a palette colour and measures it
// for accessibility. Output order matches the requested role order.
func AssignRoles(palette []Colour, roles []Role, opts AssignOptions) []Mapping {
	target := opts.TargetRatio
	if target == 0 {
		target = ContrastAA
	}

	mappings := make([]Mapping, 0, len(roles))
	for _, role := range roles {
		chosen := AssignRole(role, palette)
		mapping := Mapping{Role: role, Colour: chosen}

		if opts.PreserveColours[chosen.Hex()] {
			mapping.ContrastRatio = MaxContrast(chosen)
			mapping.Notes = append(mapping.Notes, brandPreservedNote)
			mapping.Notes = append(mapping.Notes, complianceNote(mapping.ContrastRatio))
			mapping.UsageGuidelines = appendGuidelines(role, opts.Context)
			mappings = append(mappings, mapping)
			continue
		}

		if opts.EnsureContrast {
			adjusted, changed := AdjustForContrast(chosen, target)
			if changed {
				original := chosen
				mapping.OriginalColour = &original
				mapping.Adjusted = true
				mapping.Colour = adjusted
				mapping.Notes = append(mapping.Notes,
					fmt.Sprintf("Adjusted from %s to meet %.1f:1 contrast", original.Hex(), target))
			}
		}

		mapping.ContrastRatio = MaxContrast(mapping.Colour)
		mapping.Notes = append(mapping.Notes, complianceNote(mapping.ContrastRatio))
		mapping.UsageGuidelines = appendGuidelines(role, opts.Context)
		mappings = append(mappings, mapping)
	}
	return mappings
}

// appendGuidelines combines the fixed per-role guidelines with the optional
// context-specific one.
func appendGuidelines(role Role, context string) []string {
	guidelines := make([]string, 0, 3)
	guidelines = append(guidelines, roleGuidelines[role]...)
	if extra, ok := contextGuidelines[context]; ok {
		guidelines = append(guidelines, extra)
	}
	return guidelines
}
