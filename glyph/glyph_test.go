package glyph

import (
	"math"
	"testing"
)

func TestArrow(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '↓'},
		{math.Pi / 2, '←'},
		{math.Pi, '↑'},
		{3 * math.Pi / 2, '→'},
		{-math.Pi / 2, '→'},
		{math.Pi / 4, '↙'},
		{5 * math.Pi, '↑'},
	}
	for _, tt := range tests {
		if got := Arrow(tt.angle); got != tt.want {
			t.Errorf("Arrow(%v) = %q, want %q", tt.angle, got, tt.want)
		}
	}
}

func TestRenderOpaqueCenterTransparentCorner(t *testing.T) {
	img := Render(ArtSize)
	b := img.Bounds()
	if b.Dx() != ArtSize || b.Dy() != ArtSize {
		t.Fatalf("bounds = %v", b)
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Fatalf("corner alpha = %d, want 0", a)
	}
	if _, _, _, a := img.At(ArtSize/2, ArtSize/2+4).RGBA(); a == 0 {
		t.Fatal("glyph body is transparent")
	}
}

func TestTintEndpoints(t *testing.T) {
	if d := Tint(0).DistanceLab(coolColor); d > 1e-3 {
		t.Fatalf("Tint(0) distance from cool = %v", d)
	}
	if d := Tint(1).DistanceLab(warmColor); d > 1e-3 {
		t.Fatalf("Tint(1) distance from warm = %v", d)
	}
	if Tint(-5) != Tint(0) || Tint(7) != Tint(1) {
		t.Fatal("Tint does not clamp t")
	}
}

func TestRatio(t *testing.T) {
	tests := []struct{ size, lo, hi, want float64 }{
		{15, 15, 35, 0},
		{25, 15, 35, 0.5},
		{50, 15, 35, 1},
		{0, 15, 35, 0},
		{5, 10, 10, 0},
	}
	for _, tt := range tests {
		if got := Ratio(tt.size, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Ratio(%v,%v,%v) = %v, want %v", tt.size, tt.lo, tt.hi, got, tt.want)
		}
	}
}
