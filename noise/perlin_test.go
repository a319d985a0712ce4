package noise

import (
	"math"
	"math/rand"
	"testing"
)

func TestNoise3Determinism(t *testing.T) {
	points := [][3]float64{
		{0.5, 0.5, 0.5},
		{12.34, -7.1, 3.3},
		{-100.25, 42.75, 0.001},
		{255.9, 256.1, 511.5},
	}
	for _, pt := range points {
		a := Noise3(pt[0], pt[1], pt[2])
		b := Noise3(pt[0], pt[1], pt[2])
		if math.Float64bits(a) != math.Float64bits(b) {
			t.Fatalf("Noise3(%v) not bit-identical: %v vs %v", pt, a, b)
		}
	}
}

func TestNoise3ZeroAtLattice(t *testing.T) {
	for _, pt := range [][3]float64{{0, 0, 0}, {1, 2, 3}, {-4, 7, 250}} {
		if n := Noise3(pt[0], pt[1], pt[2]); n != 0 {
			t.Errorf("Noise3(%v) = %v, want 0 at lattice point", pt, n)
		}
	}
}

func TestNoise3Range(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		x := r.Float64()*512 - 256
		y := r.Float64()*512 - 256
		z := r.Float64()*64 - 32
		n := Noise3(x, y, z)
		if n < -1.0001 || n > 1.0001 {
			t.Fatalf("Noise3(%v, %v, %v) = %v out of range", x, y, z, n)
		}
	}
}

func TestNoise3ContinuousAcrossCells(t *testing.T) {
	const dx = 1e-6
	const eps = 1e-4
	for _, y := range []float64{0.3, 1.7, -2.2} {
		for _, z := range []float64{0.1, 5.5} {
			for ix := -3; ix <= 3; ix++ {
				x := float64(ix)
				left := Noise3(x-dx, y, z)
				right := Noise3(x+dx, y, z)
				if d := math.Abs(right - left); d > eps {
					t.Errorf("jump of %v crossing x=%v (y=%v z=%v)", d, x, y, z)
				}
			}
		}
	}
}

func TestNoise3Varies(t *testing.T) {
	seen := map[float64]bool{}
	for i := 0; i < 20; i++ {
		seen[Noise3(float64(i)*0.37, 0.5, 0.25)] = true
	}
	if len(seen) < 10 {
		t.Fatalf("expected varied output, got %d distinct values", len(seen))
	}
}

func TestFadeEndpoints(t *testing.T) {
	if fade(0) != 0 || fade(1) != 1 {
		t.Fatalf("fade endpoints: fade(0)=%v fade(1)=%v", fade(0), fade(1))
	}
	if f := fade(0.5); math.Abs(f-0.5) > 1e-12 {
		t.Fatalf("fade(0.5) = %v", f)
	}
}

func TestTableDoubled(t *testing.T) {
	for i := 0; i < 256; i++ {
		if p[i] != p[i+256] {
			t.Fatalf("p[%d]=%d differs from p[%d]=%d", i, p[i], i+256, p[i+256])
		}
	}
	var seen [256]bool
	for _, v := range permutation {
		if seen[v] {
			t.Fatalf("value %d repeated in permutation", v)
		}
		seen[v] = true
	}
}
