package colour

import (
	"fmt"
	"math"
	"sort"
)

// Score rates a token set from 0 to 100 based on its two critical contrast
// pairs: text against background (weighted to the AAA target) and primary
// against background (weighted to the AA target).
func Score(tokens TokenSet) int {
	textRatio := ContrastRatio(tokens.Text, tokens.Background)
	primaryRatio := ContrastRatio(tokens.Primary, tokens.Background)

	textScore := math.Min(100, textRatio/ContrastAAA*100)
	primaryScore := math.Min(100, primaryRatio/ContrastAA*100)

	return int(math.Round((textScore + primaryScore) / 2))
}

// complianceFor grades a token set on its text/background ratio alone.
func complianceFor(tokens TokenSet) Compliance {
	ratio := ContrastRatio(tokens.Text, tokens.Background)
	switch {
	case ratio >= ContrastAAA:
		return ComplianceAAA
	case ratio >= ContrastAA:
		return ComplianceAA
	default:
		return ComplianceFail
	}
}

// worseOf returns the weaker of two compliance grades. FAIL dominates AA,
// which dominates AAA.
func worseOf(a, b Compliance) Compliance {
	rank := map[Compliance]int{ComplianceAAA: 0, ComplianceAA: 1, ComplianceFail: 2}
	if rank[b] > rank[a] {
		return b
	}
	return a
}

// ContrastIssue records one failed contrast check within a variant.
type ContrastIssue struct {
	Variant  string  `json:"variant"`
	Pair     string  `json:"pair"`
	Measured float64 `json:"measured_ratio"`
	Required float64 `json:"required_ratio"`
}

// AccessibilityReport aggregates per-variant contrast results.
type AccessibilityReport struct {
	OverallScore      int             `json:"overall_score"`
	OverallCompliance Compliance      `json:"overall_compliance"`
	ContrastIssues    []ContrastIssue `json:"contrast_issues"`
	AdjustmentsMade   int             `json:"adjustments_made"`
	Recommendations   []string        `json:"recommendations"`
}

// BuildReport re-measures every variant against the requested level and
// aggregates scores, issues, and recommendations.
func BuildReport(variants []ThemeVariant, level Level, adjustments int) AccessibilityReport {
	report := AccessibilityReport{
		OverallCompliance: ComplianceAAA,
		AdjustmentsMade:   adjustments,
	}
	if len(variants) == 0 {
		report.OverallCompliance = ComplianceFail
		return report
	}

	target := level.TargetRatio()
	totalScore := 0
	sawAA := false

	for _, v := range variants {
		report.OverallCompliance = worseOf(report.OverallCompliance, v.WCAGCompliance)
		if v.WCAGCompliance == ComplianceAA {
			sawAA = true
		}
		totalScore += v.AccessibilityScore

		if ratio := ContrastRatio(v.Colours.Text, v.Colours.Background); ratio < target {
			report.ContrastIssues = append(report.ContrastIssues, ContrastIssue{
				Variant:  v.Name,
				Pair:     "text/background",
				Measured: ratio,
				Required: target,
			})
		}
		if ratio := ContrastRatio(v.Colours.Primary, v.Colours.Background); ratio < ContrastUIFloor {
			report.ContrastIssues = append(report.ContrastIssues, ContrastIssue{
				Variant:  v.Name,
				Pair:     "primary/background",
				Measured: ratio,
				Required: ContrastUIFloor,
			})
		}
	}

	report.OverallScore = int(math.Round(float64(totalScore) / float64(len(variants))))

	if len(report.ContrastIssues) > 0 {
		report.Recommendations = append(report.Recommendations,
			"Increase contrast between the flagged token pairs, preferring darker text on light themes and lighter text on dark themes")
	}
	if level == LevelAAA && sawAA {
		report.Recommendations = append(report.Recommendations,
			"Some variants meet AA but not the requested AAA level; consider deepening text colors to reach 7:1")
	}

	return report
}

// harmonyKind classifies the relationship between two brand hues.
type harmonyKind string

const (
	harmonyAnalogous     harmonyKind = "analogous"
	harmonyComplementary harmonyKind = "complementary"
	harmonyTriadic       harmonyKind = "triadic"
	harmonyNone          harmonyKind = "disharmonious"
)

// classifyHuePair grades the circular hue distance between two hues.
// Distances are taken around the full wheel (0-360) so both triadic arms
// (120 apart in either direction) land in a named band.
func classifyHuePair(h1, h2 float64) harmonyKind {
	diff := math.Abs(h1 - h2)
	diff = math.Mod(diff, 360)

	switch {
	case diff < 30 || diff > 330:
		return harmonyAnalogous
	case diff >= 150 && diff <= 210:
		return harmonyComplementary
	case (diff >= 110 && diff <= 130) || (diff >= 230 && diff <= 250):
		return harmonyTriadic
	default:
		return harmonyNone
	}
}

// BrandIntegrationReport describes how the supplied brand colours fared.
type BrandIntegrationReport struct {
	BrandColoursUsed  []string `json:"brand_colors_used"`
	HarmonyMaintained bool     `json:"harmony_maintained"`
	AdjustmentsMade   []string `json:"adjustments_made"`
}

// BrandHarmony checks which brand colours survived into the generated
// tokens and whether every brand pair sits in a harmonious hue relation.
// Disharmony is recorded, never repaired: the note describes the clash but
// no colour is altered on its account.
func BrandHarmony(brand []Colour, variants []ThemeVariant, adjustmentNotes []string) BrandIntegrationReport {
	report := BrandIntegrationReport{
		HarmonyMaintained: true,
		AdjustmentsMade:   append([]string(nil), adjustmentNotes...),
	}

	used := make(map[string]bool)
	for _, v := range variants {
		for _, tv := range v.Colours.Hexes() {
			used[tv.Colour.Hex()] = true
		}
	}
	for _, b := range brand {
		if used[b.Hex()] {
			report.BrandColoursUsed = append(report.BrandColoursUsed, b.Hex())
		}
	}
	sort.Strings(report.BrandColoursUsed)

	for i := 0; i < len(brand); i++ {
		for j := i + 1; j < len(brand); j++ {
			h1 := brand[i].HSL().H
			h2 := brand[j].HSL().H
			if kind := classifyHuePair(h1, h2); kind == harmonyNone {
				report.HarmonyMaintained = false
				report.AdjustmentsMade = append(report.AdjustmentsMade,
					fmt.Sprintf("Brand colors %s and %s are %.0f° apart on the hue wheel and do not form a recognised harmony",
						brand[i].Hex(), brand[j].Hex(), HueDistance(h1, h2)))
			}
		}
	}

	return report
}
