package field

import (
	"errors"
	"testing"

	"cursorfield/noise"
)

func TestNewSourceKinds(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		kind string
		want string
	}{
		{"fixed", "field.Fixed"},
		{"noise", "*field.Noise"},
		{"", "*field.Noise"},
		{"luminance", "*field.Noise"}, // no scene: falls back
	}
	for _, tt := range tests {
		src, err := NewSource(cfg, tt.kind, nil, nil)
		if err != nil {
			t.Fatalf("NewSource(%q): %v", tt.kind, err)
		}
		if got := typeName(src); got != tt.want {
			t.Errorf("NewSource(%q) = %s, want %s", tt.kind, got, tt.want)
		}
	}
	if _, err := NewSource(cfg, "both", nil, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("unknown kind err = %v", err)
	}
}

func typeName(v any) string {
	switch v.(type) {
	case Fixed:
		return "field.Fixed"
	case *Noise:
		return "*field.Noise"
	case *Luminance:
		return "*field.Luminance"
	}
	return "?"
}

func TestNoiseSourceBand(t *testing.T) {
	n := &Noise{Field: noise.Perlin{}, Scale: 0.01, Base: 25, Variation: 10, TimeStep: 0.005}
	for i := 0; i < 500; i++ {
		s := n.BaseSize(float64(i*7), float64(i*3), 0, 0)
		if s < 15 || s > 35 {
			t.Fatalf("size %v outside 25±10", s)
		}
	}
	// Lattice points sample exactly zero noise.
	if s := n.BaseSize(0, 0, 0, 0); s != 25 {
		t.Fatalf("BaseSize at origin = %v, want 25", s)
	}
}

func TestNoiseSourceTimeAdvances(t *testing.T) {
	n := &Noise{Field: noise.Perlin{}, Scale: 0.01, Base: 25, Variation: 10, TimeStep: 0.25}
	for i := 0; i < 4; i++ {
		if err := n.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if n.Time != 1 {
		t.Fatalf("Time = %v, want 1", n.Time)
	}
}

func TestSourceKindIgnoresCaseAndSpace(t *testing.T) {
	for _, in := range []string{"Luminance", " LUMINANCE ", "luminance"} {
		if got := SourceKind(in); got != SourceLuminance {
			t.Errorf("SourceKind(%q) = %q, want %q", in, got, SourceLuminance)
		}
	}
	src, err := NewSource(DefaultConfig(), "Luminance", nil, &countingScene{})
	if err != nil {
		t.Fatal(err)
	}
	if got := typeName(src); got != "*field.Luminance" {
		t.Fatalf("NewSource(Luminance) = %s, want *field.Luminance", got)
	}
}
