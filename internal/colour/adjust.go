package colour

// adjustmentGrid is the fixed set of lightness values sampled when repairing
// a colour for contrast. The search is deliberately coarse: nine points,
// saturation and hue held fixed. Some colours are unreparable on this grid
// even though a compliant colour with the same hue exists between grid
// points; callers report those as residual compliance failures rather than
// widening the search, which would change which inputs count as reparable.
var adjustmentGrid = [...]float64{10, 20, 30, 40, 50, 60, 70, 80, 90}

// AdjustForContrast repairs a colour so that its best contrast ratio against
// the canonical white/black backgrounds meets targetRatio. Hue is preserved
// by construction: only lightness varies across the grid.
//
// Returns the repaired colour and true when a grid point met the target, or
// the input unchanged and false when it was already compliant or no grid
// point reached the target.
func AdjustForContrast(c Colour, targetRatio float64) (Colour, bool) {
	if MaxContrast(c) >= targetRatio {
		return c, false
	}

	hsl := c.HSL()
	best := c
	bestRatio := 0.0
	found := false

	for _, l := range adjustmentGrid {
		candidate := FromHSL(hsl.H, hsl.S, l)
		ratio := MaxContrast(candidate)
		if ratio > bestRatio && ratio >= targetRatio {
			best = candidate
			bestRatio = ratio
			found = true
		}
	}

	if !found {
		return c, false
	}
	return best, true
}
