package colour

import (
	"math"
	"testing"
)

func TestAdjustForContrastCompliantUnchanged(t *testing.T) {
	// Black has 21:1 against white; asking for 4.5 must be a no-op.
	black := MustHex("#000000")
	adjusted, changed := AdjustForContrast(black, 4.5)
	if changed {
		t.Error("already-compliant colour reported as changed")
	}
	if !adjusted.Equal(black) {
		t.Errorf("already-compliant colour mutated to %s", adjusted.Hex())
	}
}

func TestAdjustForContrastIdempotent(t *testing.T) {
	c := MustHex("#777788")
	first, changed := AdjustForContrast(c, 7.0)
	if !changed {
		t.Fatalf("expected %s to need adjustment for 7.0", c.Hex())
	}
	second, changed := AdjustForContrast(first, 7.0)
	if changed {
		t.Error("re-adjusting a repaired colour should be a no-op")
	}
	if !second.Equal(first) {
		t.Errorf("repaired colour drifted from %s to %s", first.Hex(), second.Hex())
	}
}

func TestAdjustForContrastPreservesHue(t *testing.T) {
	c := MustHex("#ff8888")
	originalHue := c.HSL().H

	adjusted, changed := AdjustForContrast(c, 10.0)
	if !changed {
		t.Fatalf("expected %s to need adjustment for 10.0", c.Hex())
	}
	if got := MaxContrast(adjusted); got < 10.0 {
		t.Errorf("adjusted contrast %v below target", got)
	}
	if diff := HueDistance(adjusted.HSL().H, originalHue); diff >= 10 {
		t.Errorf("hue shifted by %v degrees, want <10", diff)
	}
}

func TestAdjustForContrastMeetsTarget(t *testing.T) {
	tests := []struct {
		name   string
		hex    string
		target float64
	}{
		{name: "mid blue to AA", hex: "#6688aa", target: 4.5},
		{name: "mid blue to AAA", hex: "#6688aa", target: 7.0},
		{name: "muted green", hex: "#88aa88", target: 7.0},
		{name: "strong repair", hex: "#ff8888", target: 12.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := MustHex(tt.hex)
			adjusted, _ := AdjustForContrast(c, tt.target)
			if got := MaxContrast(adjusted); got < tt.target {
				t.Errorf("MaxContrast = %v, want >= %v", got, tt.target)
			}
		})
	}
}

func TestAdjustForContrastUnreparable(t *testing.T) {
	// No grid point is pure black or white, so 21:1 is unreachable for a
	// saturated colour; the original must come back untouched.
	c := FromHSL(220, 70, 50)
	adjusted, changed := AdjustForContrast(c, 21.0)
	if changed {
		t.Error("unreparable colour reported as changed")
	}
	if !adjusted.Equal(c) {
		t.Errorf("unreparable colour mutated to %s", adjusted.Hex())
	}
}

func TestAdjustForContrastGridOnly(t *testing.T) {
	// Repaired colours always land on a grid lightness.
	c := MustHex("#888888")
	adjusted, changed := AdjustForContrast(c, 7.0)
	if !changed {
		t.Fatal("expected adjustment")
	}
	l := adjusted.HSL().L
	onGrid := false
	for _, grid := range adjustmentGrid {
		if math.Abs(l-grid) < 1e-9 {
			onGrid = true
			break
		}
	}
	if !onGrid {
		t.Errorf("adjusted lightness %v is not a grid point", l)
	}
}
