package colour

import (
	"math"
	"testing"
)

func TestFromHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		wantHex string
	}{
		{name: "lowercase hex", input: "#2563eb", wantHex: "#2563eb"},
		{name: "uppercase hex", input: "#FF8800", wantHex: "#ff8800"},
		{name: "mixed case hex", input: "#Ff00aB", wantHex: "#ff00ab"},
		{name: "missing hash", input: "2563eb", wantErr: true},
		{name: "three digit shorthand", input: "#fff", wantErr: true},
		{name: "eight digit rgba", input: "#2563ebff", wantErr: true},
		{name: "non hex characters", input: "#2563ez", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := FromHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("FromHex(%q) expected error, got %s", tt.input, c.Hex())
				}
				return
			}
			if err != nil {
				t.Fatalf("FromHex(%q) unexpected error: %v", tt.input, err)
			}
			if c.Hex() != tt.wantHex {
				t.Errorf("Hex() = %q, want %q", c.Hex(), tt.wantHex)
			}
		})
	}
}

func TestFromHSLGoldenHex(t *testing.T) {
	// The synthesized success fallback must map to a stable hex value.
	tests := []struct {
		name    string
		h, s, l float64
		want    string
	}{
		{name: "success fallback", h: 120, s: 60, l: 45, want: "#2eb82e"},
		{name: "pure red", h: 0, s: 100, l: 50, want: "#ff0000"},
		{name: "white", h: 0, s: 0, l: 100, want: "#ffffff"},
		{name: "black", h: 0, s: 0, l: 0, want: "#000000"},
		{name: "mid grey", h: 200, s: 0, l: 50, want: "#808080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromHSL(tt.h, tt.s, tt.l).Hex(); got != tt.want {
				t.Errorf("FromHSL(%v, %v, %v).Hex() = %q, want %q", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestFromHSLKeepsComponents(t *testing.T) {
	c := FromHSL(221.5, 83.2, 53.3)
	hsl := c.HSL()
	if hsl.H != 221.5 || hsl.S != 83.2 || hsl.L != 53.3 {
		t.Errorf("HSL components changed: got %+v", hsl)
	}
}

func TestFromHSLWrapsAndClamps(t *testing.T) {
	if got := FromHSL(390, 50, 50).HSL().H; got != 30 {
		t.Errorf("hue 390 should wrap to 30, got %v", got)
	}
	if got := FromHSL(-30, 50, 50).HSL().H; got != 330 {
		t.Errorf("hue -30 should wrap to 330, got %v", got)
	}
	if got := FromHSL(0, 150, -10).HSL(); got.S != 100 || got.L != 0 {
		t.Errorf("saturation/lightness should clamp, got %+v", got)
	}
}

func TestHexHSLRoundtripHue(t *testing.T) {
	// Parsing a hex colour and reading its hue back should be stable within
	// a degree for saturated colours.
	tests := []struct {
		hex     string
		wantHue float64
	}{
		{hex: "#ff0000", wantHue: 0},
		{hex: "#00ff00", wantHue: 120},
		{hex: "#0000ff", wantHue: 240},
		{hex: "#ffff00", wantHue: 60},
	}

	for _, tt := range tests {
		c, err := FromHex(tt.hex)
		if err != nil {
			t.Fatalf("FromHex(%q): %v", tt.hex, err)
		}
		if got := c.HSL().H; math.Abs(got-tt.wantHue) > 1 {
			t.Errorf("%s hue = %v, want %v", tt.hex, got, tt.wantHue)
		}
	}
}

func TestColourEquality(t *testing.T) {
	a := MustHex("#2563eb")
	b := MustHex("#2563EB")
	c := MustHex("#2563ec")

	if !a.Equal(b) {
		t.Error("case-differing hex inputs should be equal")
	}
	if a.Equal(c) {
		t.Error("different colours should not be equal")
	}
}

func TestColourTextMarshalling(t *testing.T) {
	c := MustHex("#d55e00")

	data, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(data) != "#d55e00" {
		t.Errorf("MarshalText = %q, want %q", data, "#d55e00")
	}

	var decoded Colour
	if err := decoded.UnmarshalText([]byte(" #D55E00 ")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if !decoded.Equal(c) {
		t.Errorf("roundtrip mismatch: got %s", decoded.Hex())
	}
}
