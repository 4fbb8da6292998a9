package colour

import "fmt"

// Style selects a design-system preset that tunes surface and border tones.
type Style string

const (
	StyleMaterial Style = "material"
	StyleIOS      Style = "ios"
	StyleFluent   Style = "fluent"
	StyleCustom   Style = "custom"
)

// Valid reports whether the style is a known preset.
func (s Style) Valid() bool {
	switch s {
	case StyleMaterial, StyleIOS, StyleFluent, StyleCustom:
		return true
	}
	return false
}

// VariantKind selects which theme variants to compose.
type VariantKind string

const (
	VariantLight        VariantKind = "light"
	VariantDark         VariantKind = "dark"
	VariantHighContrast VariantKind = "high_contrast"
	VariantColorblind   VariantKind = "colorblind_friendly"
	VariantAll          VariantKind = "all"
)

// Valid reports whether the kind is supported.
func (k VariantKind) Valid() bool {
	switch k {
	case VariantLight, VariantDark, VariantHighContrast, VariantColorblind, VariantAll:
		return true
	}
	return false
}

// Level is a WCAG conformance target.
type Level string

const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// Valid reports whether the level is AA or AAA.
func (l Level) Valid() bool {
	return l == LevelAA || l == LevelAAA
}

// TargetRatio returns the text contrast ratio the level requires.
func (l Level) TargetRatio() float64 {
	if l == LevelAAA {
		return ContrastAAA
	}
	return ContrastAA
}

// Compliance is the measured WCAG outcome for a variant.
type Compliance string

const (
	ComplianceAAA  Compliance = "AAA"
	ComplianceAA   Compliance = "AA"
	ComplianceFail Compliance = "FAIL"
)

// TokenSet is the fixed record of named theme token slots. Shadow is an
// rgba() string literal rather than a hex colour.
type TokenSet struct {
	Primary       Colour `json:"primary"`
	Secondary     Colour `json:"secondary"`
	Background    Colour `json:"background"`
	Surface       Colour `json:"surface"`
	Text          Colour `json:"text"`
	TextSecondary Colour `json:"text_secondary"`
	Accent        Colour `json:"accent"`
	Success       Colour `json:"success"`
	Warning       Colour `json:"warning"`
	Error         Colour `json:"error"`
	Info          Colour `json:"info"`
	Border        Colour `json:"border"`
	Shadow        string `json:"shadow"`
	Disabled      Colour `json:"disabled"`
	Hover         Colour `json:"hover"`
	Focus         Colour `json:"focus"`
}

// Hexes returns every hex-valued token keyed by slot name, in slot order.
// Shadow is excluded (it is an rgba literal).
func (t TokenSet) Hexes() []TokenValue {
	return []TokenValue{
		{"primary", t.Primary},
		{"secondary", t.Secondary},
		{"background", t.Background},
		{"surface", t.Surface},
		{"text", t.Text},
		{"text_secondary", t.TextSecondary},
		{"accent", t.Accent},
		{"success", t.Success},
		{"warning", t.Warning},
		{"error", t.Error},
		{"info", t.Info},
		{"border", t.Border},
		{"disabled", t.Disabled},
		{"hover", t.Hover},
		{"focus", t.Focus},
	}
}

// TokenValue pairs a slot name with its colour.
type TokenValue struct {
	Slot   string
	Colour Colour
}

// ThemeVariant is one complete token set for one presentation mode.
type ThemeVariant struct {
	Name               string     `json:"name"`
	Colours            TokenSet   `json:"colors"`
	AccessibilityScore int        `json:"accessibility_score"`
	WCAGCompliance     Compliance `json:"wcag_compliance"`
}

// ComposeRequest describes a theme composition.
type ComposeRequest struct {
	Kind    VariantKind
	Primary Colour
	Style   Style
	Level   Level
	Brand   []Colour
}

// ThemeDocument is the full composition result.
type ThemeDocument struct {
	Variants        []ThemeVariant         `json:"variants"`
	Accessibility   AccessibilityReport    `json:"accessibility_report"`
	Brand           BrandIntegrationReport `json:"brand_report"`
	AdjustmentsMade int                    `json:"-"`
	adjustmentNotes []string
}

// baseTokens holds the fixed per-variant constants for light and dark bases.
type baseTokens struct {
	background    Colour
	surface       Colour
	text          Colour
	textSecondary Colour
	border        Colour
	shadow        string
	disabled      Colour
}

var lightBase = baseTokens{
	background:    MustHex("#ffffff"),
	surface:       MustHex("#f8fafc"),
	text:          MustHex("#1e293b"),
	textSecondary: MustHex("#64748b"),
	border:        MustHex("#e2e8f0"),
	shadow:        "rgba(0,0,0,0.1)",
	disabled:      MustHex("#94a3b8"),
}

var darkBase = baseTokens{
	background:    MustHex("#0f172a"),
	surface:       MustHex("#1e293b"),
	text:          MustHex("#f1f5f9"),
	textSecondary: MustHex("#94a3b8"),
	border:        MustHex("#334155"),
	shadow:        "rgba(0,0,0,0.3)",
	disabled:      MustHex("#475569"),
}

// styleOverride redefines surface and border for a design-system preset.
type styleOverride struct {
	surface Colour
	border  Colour
}

// Presets only touch surface and border; everything else stays on the base.
var styleOverrides = map[Style]map[bool]styleOverride{
	StyleMaterial: {
		false: {surface: MustHex("#fafafa"), border: MustHex("#e0e0e0")}, // light
		true:  {surface: MustHex("#1e1e1e"), border: MustHex("#333333")}, // dark
	},
	StyleIOS: {
		false: {surface: MustHex("#f2f2f7"), border: MustHex("#c6c6c8")},
		true:  {surface: MustHex("#1c1c1e"), border: MustHex("#38383a")},
	},
	StyleFluent: {
		false: {surface: MustHex("#faf9f8"), border: MustHex("#edebe9")},
		true:  {surface: MustHex("#201f1e"), border: MustHex("#3b3a39")},
	},
}

// buildBase composes a light or dark token set from the primary colour,
// style preset, and optional brand colours.
func buildBase(dark bool, primary Colour, style Style, brand []Colour) TokenSet {
	base := lightBase
	if dark {
		base = darkBase
	}

	tokens := TokenSet{
		Background:    base.background,
		Surface:       base.surface,
		Text:          base.text,
		TextSecondary: base.textSecondary,
		Border:        base.border,
		Shadow:        base.shadow,
		Disabled:      base.disabled,
	}

	if override, ok := styleOverrides[style][dark]; ok {
		tokens.Surface = override.surface
		tokens.Border = override.border
	}

	// Dark themes remap the primary itself: lighter and slightly desaturated
	// so it reads against the dark background.
	if dark {
		hsl := primary.HSL()
		primary = FromHSL(hsl.H, clamp(hsl.S-10, 30, 100), clamp(hsl.L+20, 40, 80))
	}
	tokens.Primary = primary

	phsl := primary.HSL()

	// Secondary: analogous hue, desaturated, lightness pushed toward the
	// variant's pole.
	pole := 80.0
	if dark {
		pole = 20.0
	}
	tokens.Secondary = FromHSL(phsl.H+30, clamp(phsl.S-20, 20, 100), (phsl.L+pole)/2)

	// Accent: the brand colour with the best contrast against the
	// background wins; otherwise the complementary hue.
	if len(brand) > 0 {
		best := brand[0]
		bestRatio := ContrastRatio(best, tokens.Background)
		for _, b := range brand[1:] {
			if ratio := ContrastRatio(b, tokens.Background); ratio > bestRatio {
				best = b
				bestRatio = ratio
			}
		}
		tokens.Accent = best
	} else {
		accentL := 50.0
		if dark {
			accentL = 60.0
		}
		tokens.Accent = FromHSL(phsl.H+180, clamp(phsl.S+10, 0, 100), accentL)
	}

	// Interaction states.
	hoverShift := -10.0
	if dark {
		hoverShift = 10.0
	}
	tokens.Hover = FromHSL(phsl.H, phsl.S, clamp(phsl.L+hoverShift, 0, 100))
	tokens.Focus = FromHSL(phsl.H, clamp(phsl.S+20, 0, 100), phsl.L)

	// Semantic slots: the fixed role fallback hues, lifted for dark themes.
	for role, slot := range map[Role]*Colour{
		RoleSuccess: &tokens.Success,
		RoleWarning: &tokens.Warning,
		RoleError:   &tokens.Error,
		RoleInfo:    &tokens.Info,
	} {
		hsl := roleFallbacks[role]
		if dark {
			*slot = FromHSL(hsl.H, hsl.S, 60)
		} else {
			*slot = FromHSL(hsl.H, hsl.S, hsl.L)
		}
	}

	return tokens
}

// High-contrast variants ignore the supplied primary and brand colours
// entirely: both token sets are fixed.
var highContrastLight = TokenSet{
	Primary:       MustHex("#0000cc"),
	Secondary:     MustHex("#4b0082"),
	Background:    MustHex("#ffffff"),
	Surface:       MustHex("#ffffff"),
	Text:          MustHex("#000000"),
	TextSecondary: MustHex("#1a1a1a"),
	Accent:        MustHex("#990099"),
	Success:       MustHex("#006600"),
	Warning:       MustHex("#804000"),
	Error:         MustHex("#cc0000"),
	Info:          MustHex("#0000cc"),
	Border:        MustHex("#000000"),
	Shadow:        "rgba(0,0,0,0.5)",
	Disabled:      MustHex("#595959"),
	Hover:         MustHex("#333333"),
	Focus:         MustHex("#0000cc"),
}

var highContrastDark = TokenSet{
	Primary:       MustHex("#66b3ff"),
	Secondary:     MustHex("#bf80ff"),
	Background:    MustHex("#000000"),
	Surface:       MustHex("#000000"),
	Text:          MustHex("#ffffff"),
	TextSecondary: MustHex("#e6e6e6"),
	Accent:        MustHex("#ff66ff"),
	Success:       MustHex("#00ff00"),
	Warning:       MustHex("#ffff00"),
	Error:         MustHex("#ff6666"),
	Info:          MustHex("#66ccff"),
	Border:        MustHex("#ffffff"),
	Shadow:        "rgba(0,0,0,0.8)",
	Disabled:      MustHex("#a6a6a6"),
	Hover:         MustHex("#cccccc"),
	Focus:         MustHex("#ffff00"),
}

// colourblindOverride holds the slots replaced on colorblind-friendly
// variants. Success shifts to blue and info to purple so the pair stays
// distinguishable under deuteranopia; warning and error remain on the safe
// orange/vermillion hues (Okabe-Ito palette).
type colourblindOverride struct {
	success Colour
	warning Colour
	err     Colour
	info    Colour
}

var colourblindOverrides = map[bool]colourblindOverride{
	false: { // light
		success: MustHex("#0072b2"),
		warning: MustHex("#e69f00"),
		err:     MustHex("#d55e00"),
		info:    MustHex("#785ef0"),
	},
	true: { // dark
		success: MustHex("#56b4e9"),
		warning: MustHex("#ffb000"),
		err:     MustHex("#fe6100"),
		info:    MustHex("#a78bfa"),
	},
}

// buildColourblind derives a colorblind-friendly variant: the ordinary
// material base with exactly four semantic slots replaced.
func buildColourblind(dark bool, primary Colour, brand []Colour) TokenSet {
	tokens := buildBase(dark, primary, StyleMaterial, brand)
	override := colourblindOverrides[dark]
	tokens.Success = override.success
	tokens.Warning = override.warning
	tokens.Error = override.err
	tokens.Info = override.info
	return tokens
}

// finishVariant runs the accessibility pass over a freshly built token set,
// then measures its score and compliance. Repairs performed here are counted
// on the document.
func (doc *ThemeDocument) finishVariant(name string, tokens TokenSet, dark bool, level Level) ThemeVariant {
	target := level.TargetRatio()

	// Text repair: substitute a fixed-lightness text colour at the same
	// hue/saturation when the pair misses the target.
	if ContrastRatio(tokens.Text, tokens.Background) < target {
		hsl := tokens.Text.HSL()
		fixedL := 10.0
		if dark {
			fixedL = 90.0
		}
		tokens.Text = FromHSL(hsl.H, hsl.S, fixedL)
		doc.AdjustmentsMade++
		doc.adjustmentNotes = append(doc.adjustmentNotes,
			fmt.Sprintf("%s: text lightness fixed at %.0f%% to maintain %.1f:1 contrast", name, fixedL, target))
	}

	// Primary repair: shift lightness when the UI-element floor is missed.
	if ContrastRatio(tokens.Primary, tokens.Background) < ContrastUIFloor {
		hsl := tokens.Primary.HSL()
		shift := -20.0
		if dark {
			shift = 20.0
		}
		tokens.Primary = FromHSL(hsl.H, hsl.S, clamp(hsl.L+shift, 0, 100))
		doc.AdjustmentsMade++
		doc.adjustmentNotes = append(doc.adjustmentNotes,
			fmt.Sprintf("%s: primary lightness shifted by %+.0f to reach the UI contrast floor", name, shift))
	}

	return ThemeVariant{
		Name:               name,
		Colours:            tokens,
		AccessibilityScore: Score(tokens),
		WCAGCompliance:     complianceFor(tokens),
	}
}

// ComposeDocument builds every variant the request's kind names, runs the
// accessibility pass, and attaches the compliance and brand reports.
func ComposeDocument(req ComposeRequest) *ThemeDocument {
	doc := &ThemeDocument{}

	add := func(name string, tokens TokenSet, dark bool) {
		doc.Variants = append(doc.Variants, doc.finishVariant(name, tokens, dark, req.Level))
	}

	kind := req.Kind
	if kind == VariantLight || kind == VariantAll {
		add("light", buildBase(false, req.Primary, req.Style, req.Brand), false)
	}
	if kind == VariantDark || kind == VariantAll {
		add("dark", buildBase(true, req.Primary, req.Style, req.Brand), true)
	}
	if kind == VariantHighContrast || kind == VariantAll {
		add("high_contrast_light", highContrastLight, false)
		add("high_contrast_dark", highContrastDark, true)
	}
	if kind == VariantColorblind || kind == VariantAll {
		add("colorblind_light", buildColourblind(false, req.Primary, req.Brand), false)
		add("colorblind_dark", buildColourblind(true, req.Primary, req.Brand), true)
	}

	doc.Accessibility = BuildReport(doc.Variants, req.Level, doc.AdjustmentsMade)
	doc.Brand = BrandHarmony(req.Brand, doc.Variants, doc.adjustmentNotes)
	return doc
}
