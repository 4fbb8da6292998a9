package colour

import (
	"math"
	"testing"
)

func TestLuminanceExtremes(t *testing.T) {
	if lum := Luminance(White); math.Abs(lum-1.0) > 1e-9 {
		t.Errorf("Luminance(white) = %v, want 1.0", lum)
	}
	if lum := Luminance(Black); lum != 0 {
		t.Errorf("Luminance(black) = %v, want 0", lum)
	}
}

func TestContrastRatioSelf(t *testing.T) {
	colours := []string{"#000000", "#ffffff", "#2563eb", "#d55e00", "#808080"}
	for _, hex := range colours {
		c := MustHex(hex)
		if ratio := ContrastRatio(c, c); math.Abs(ratio-1.0) > 1e-9 {
			t.Errorf("ContrastRatio(%s, %s) = %v, want 1.0", hex, hex, ratio)
		}
	}
}

func TestContrastRatioBlackWhite(t *testing.T) {
	ratio := ContrastRatio(Black, White)
	if math.Abs(ratio-21.0) > 0.05 {
		t.Errorf("ContrastRatio(black, white) = %v, want ~21.0", ratio)
	}
}

func TestContrastRatioSymmetric(t *testing.T) {
	a := MustHex("#2563eb")
	b := MustHex("#f8fafc")
	if ContrastRatio(a, b) != ContrastRatio(b, a) {
		t.Error("contrast ratio should be symmetric")
	}
}

func TestContrastRatioBounds(t *testing.T) {
	pairs := [][2]string{
		{"#123456", "#654321"},
		{"#ff0000", "#00ff00"},
		{"#ffffff", "#fffffe"},
	}
	for _, p := range pairs {
		ratio := ContrastRatio(MustHex(p[0]), MustHex(p[1]))
		if ratio < 1.0 || ratio > 21.0 {
			t.Errorf("ContrastRatio(%s, %s) = %v, out of [1, 21]", p[0], p[1], ratio)
		}
	}
}

func TestMaxContrast(t *testing.T) {
	// A dark colour scores best against white, a light one against black.
	dark := MustHex("#111111")
	if got, want := MaxContrast(dark), ContrastRatio(dark, White); got != want {
		t.Errorf("MaxContrast(dark) = %v, want %v", got, want)
	}
	light := MustHex("#eeeeee")
	if got, want := MaxContrast(light), ContrastRatio(light, Black); got != want {
		t.Errorf("MaxContrast(light) = %v, want %v", got, want)
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct {
		name   string
		h1, h2 float64
		want   float64
	}{
		{name: "identical", h1: 120, h2: 120, want: 0},
		{name: "simple", h1: 10, h2: 40, want: 30},
		{name: "opposite", h1: 0, h2: 180, want: 180},
		{name: "wraparound", h1: 350, h2: 10, want: 20},
		{name: "wraparound reversed", h1: 10, h2: 350, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HueDistance(tt.h1, tt.h2); got != tt.want {
				t.Errorf("HueDistance(%v, %v) = %v, want %v", tt.h1, tt.h2, got, tt.want)
			}
		})
	}
}
