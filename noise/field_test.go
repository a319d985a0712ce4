package noise

import "testing"

func TestNewBackends(t *testing.T) {
	tests := []struct {
		kind    string
		wantErr bool
	}{
		{"", false},
		{"perlin", false},
		{"Simplex", false},
		{" fbm ", false},
		{"worley", true},
	}
	for _, tt := range tests {
		f, err := New(tt.kind, 7)
		if tt.wantErr {
			if err == nil {
				t.Errorf("New(%q) expected error", tt.kind)
			}
			continue
		}
		if err != nil {
			t.Fatalf("New(%q): %v", tt.kind, err)
		}
		for i := 0; i < 200; i++ {
			v := f.Noise3(float64(i)*0.13, float64(i)*0.07, 0.5)
			if v < -1 || v > 1 {
				t.Fatalf("%q backend out of range: %v", tt.kind, v)
			}
		}
	}
}

func TestSeededBackendsDeterministic(t *testing.T) {
	a, b := NewSimplex(42), NewSimplex(42)
	if a.Noise3(1.5, 2.5, 3.5) != b.Noise3(1.5, 2.5, 3.5) {
		t.Fatal("simplex backends with equal seed disagree")
	}
	fa, fb := NewFBM(42, 3), NewFBM(42, 3)
	if fa.Noise3(1.5, 2.5, 3.5) != fb.Noise3(1.5, 2.5, 3.5) {
		t.Fatal("fbm backends with equal seed disagree")
	}
}
