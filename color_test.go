package postfx

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"rgb short", "#f00", RGBA{1, 0, 0, 1}},
		{"rrggbb", "#00ff00", RGBA{0, 1, 0, 1}},
		{"no hash", "0000ff", RGBA{0, 0, 1, 1}},
		{"rrggbbaa", "#ffffff80", RGBA{1, 1, 1, 128.0 / 255}},
		{"invalid", "xyz!", RGBA{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if !colorsEqual(got, tt.want, 1e-9) {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	a := RGBA{0, 0, 0, 1}
	b := RGBA{1, 0.5, 0.25, 1}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(t=0) = %v, want %v exactly", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(t=1) = %v, want %v exactly", got, b)
	}

	mid := a.Lerp(b, 0.5)
	want := RGBA{0.5, 0.25, 0.125, 1}
	if !colorsEqual(mid, want, 1e-12) {
		t.Errorf("Lerp(t=0.5) = %v, want %v", mid, want)
	}

	// Identical operands are a fixed point for any weight; segment
	// boundaries in the sky gradient rely on this.
	if got := b.Lerp(b, 0.73); got != b {
		t.Errorf("Lerp(b, b, t) = %v, want %v exactly", got, b)
	}
}

func TestColorRoundTrip(t *testing.T) {
	c := RGBA{R: 0.2, G: 0.4, B: 0.6, A: 1}
	nrgba, ok := c.Color().(color.NRGBA)
	if !ok {
		t.Fatal("Color() did not return color.NRGBA")
	}
	// Conversion truncates: 0.6*255 sits just below 153 in binary floating
	// point, so B lands on 152.
	if nrgba.R != 51 || nrgba.G != 102 || nrgba.B != 152 || nrgba.A != 255 {
		t.Errorf("Color() = %v, want {51 102 152 255}", nrgba)
	}

	back := FromColor(nrgba)
	if !colorsEqual(back, c, 0.01) {
		t.Errorf("FromColor(Color()) = %v, want ~%v", back, c)
	}
}

func TestColorClamping(t *testing.T) {
	// Bloom output can exceed 1; conversion to 8-bit clamps.
	c := RGBA{R: 4, G: -1, B: 0.5, A: 0.1}
	nrgba := c.Color().(color.NRGBA)
	if nrgba.R != 255 {
		t.Errorf("R = %d, want 255 (clamped)", nrgba.R)
	}
	if nrgba.G != 0 {
		t.Errorf("G = %d, want 0 (clamped)", nrgba.G)
	}
}
