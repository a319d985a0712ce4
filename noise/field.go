package noise

import (
	"fmt"
	"strings"

	perlin "github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Field is a 3-D scalar noise function with output in [-1, 1].
type Field interface {
	Noise3(x, y, z float64) float64
}

// Backend names accepted by New.
const (
	KindPerlin  = "perlin"
	KindSimplex = "simplex"
	KindFBM     = "fbm"
)

// New returns the noise backend named by kind. An empty kind selects the
// reference Perlin field, which ignores seed.
func New(kind string, seed int64) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindPerlin:
		return Perlin{}, nil
	case KindSimplex:
		return NewSimplex(seed), nil
	case KindFBM:
		return NewFBM(seed, defaultFBMOctaves), nil
	default:
		return nil, fmt.Errorf("unknown noise backend %q", kind)
	}
}

// Simplex wraps OpenSimplex noise.
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex seeds an OpenSimplex field.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.New(seed)}
}

// Noise3 implements Field.
func (s *Simplex) Noise3(x, y, z float64) float64 {
	return clamp(s.n.Eval3(x, y, z))
}

const (
	defaultFBMOctaves = 3
	fbmAlpha          = 2.0
	fbmBeta           = 2.0
)

// FBM sums octaves of Perlin noise through go-perlin. Its permutation is
// seeded, unlike the reference field.
type FBM struct {
	p *perlin.Perlin
}

// NewFBM builds an octave field with the given octave count.
func NewFBM(seed int64, octaves int32) *FBM {
	if octaves < 1 {
		octaves = 1
	}
	return &FBM{p: perlin.NewPerlin(fbmAlpha, fbmBeta, octaves, seed)}
}

// Noise3 implements Field.
func (f *FBM) Noise3(x, y, z float64) float64 {
	return clamp(f.p.Noise3D(x, y, z))
}
