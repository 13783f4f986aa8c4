package icongen

import (
	"image/color"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want color.NRGBA
	}{
		{"brand blue", "#4DA6FF", color.NRGBA{77, 166, 255, 255}},
		{"light blue", "#66B2FF", color.NRGBA{102, 178, 255, 255}},
		{"peach", "#FFB997", color.NRGBA{255, 185, 151, 255}},
		{"no hash", "4DA6FF", color.NRGBA{77, 166, 255, 255}},
		{"short form", "#abc", color.NRGBA{170, 187, 204, 255}},
		{"with alpha", "#FFFFFFC8", color.NRGBA{255, 255, 255, 200}},
		{"short with alpha", "#000f", color.NRGBA{0, 0, 0, 255}},
		{"invalid length", "#12345", color.NRGBA{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex).NRGBA()
			if got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestRGBA_Lerp(t *testing.T) {
	light := RGBA{R: 102.0 / 255, G: 178.0 / 255, B: 1, A: 1}
	dark := RGBA{R: 77.0 / 255, G: 166.0 / 255, B: 1, A: 1}

	if got := light.Lerp(dark, 0); got != light {
		t.Errorf("Lerp(0) = %v, want %v", got, light)
	}
	if got := light.Lerp(dark, 1); absDiff(got.R, dark.R) > 1e-12 || absDiff(got.G, dark.G) > 1e-12 {
		t.Errorf("Lerp(1) = %v, want %v", got, dark)
	}

	mid := light.Lerp(dark, 0.5)
	wantR := (102.0/255 + 77.0/255) / 2
	if absDiff(mid.R, wantR) > 1e-12 {
		t.Errorf("Lerp(0.5).R = %v, want %v", mid.R, wantR)
	}
}

func TestRGBA_WithAlpha(t *testing.T) {
	c := White.WithAlpha(200.0 / 255)
	if c.R != 1 || c.G != 1 || c.B != 1 {
		t.Errorf("WithAlpha changed RGB: %v", c)
	}
	if got := c.NRGBA().A; got != 200 {
		t.Errorf("alpha = %d, want 200", got)
	}
}

func TestFromColor_Roundtrip(t *testing.T) {
	original := RGBA{R: 0.8, G: 0.3, B: 0.5, A: 0.9}
	roundtripped := FromColor(original)

	const tolerance = 0.01 // 8-bit quantization through color.Color
	if absDiff(original.R, roundtripped.R) > tolerance ||
		absDiff(original.G, roundtripped.G) > tolerance ||
		absDiff(original.B, roundtripped.B) > tolerance ||
		absDiff(original.A, roundtripped.A) > tolerance {
		t.Errorf("roundtrip: %v -> %v", original, roundtripped)
	}
}

func TestFromColor_Transparent(t *testing.T) {
	if got := FromColor(color.NRGBA{}); got != Transparent {
		t.Errorf("FromColor(zero) = %v, want Transparent", got)
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
