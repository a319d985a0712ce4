package field

import (
	"fmt"
	"log"
	"strings"

	"cursorfield/luminance"
	"cursorfield/noise"
)

// SizeSource produces the unboosted size of the glyph at (x, y) in a
// width×height viewport.
type SizeSource interface {
	BaseSize(x, y, width, height float64) float64
}

// Stepper is implemented by sources with per-frame state. Step runs once per
// frame before any BaseSize call.
type Stepper interface {
	Step() error
}

// Fixed gives every glyph the same size.
type Fixed struct {
	Size float64
}

// BaseSize implements SizeSource.
func (f Fixed) BaseSize(_, _, _, _ float64) float64 { return f.Size }

// Noise maps noise in [-1, 1] to Base ± Variation.
type Noise struct {
	Field     noise.Field
	Scale     float64
	Base      float64
	Variation float64
	// TimeStep is added to Time on every Step.
	TimeStep float64
	Time     float64
}

// Step implements Stepper.
func (n *Noise) Step() error {
	n.Time += n.TimeStep
	return nil
}

// BaseSize implements SizeSource.
func (n *Noise) BaseSize(x, y, _, _ float64) float64 {
	v := n.Field.Noise3(x*n.Scale, y*n.Scale, n.Time)
	return n.Base + v*n.Variation
}

// Luminance maps scene brightness in [0, 1] to Base + brightness*Variation.
type Luminance struct {
	Field     *luminance.Field
	Base      float64
	Variation float64
}

// Step implements Stepper by rendering the next scene frame.
func (l *Luminance) Step() error {
	return l.Field.Refresh(1)
}

// BaseSize implements SizeSource.
func (l *Luminance) BaseSize(x, y, width, height float64) float64 {
	return l.Base + l.Field.Sample(x, y, width, height)*l.Variation
}

// Source names accepted by NewSource.
const (
	SourceFixed     = "fixed"
	SourceNoise     = "noise"
	SourceLuminance = "luminance"
)

// SourceKind normalizes a source name as NewSource reads it.
func SourceKind(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}

// NewSource builds the size source named kind. A luminance source with no
// scene provider falls back to noise.
func NewSource(cfg Config, kind string, nf noise.Field, scene luminance.Provider) (SizeSource, error) {
	switch SourceKind(kind) {
	case SourceFixed:
		return Fixed{Size: cfg.BaseSize}, nil
	case SourceLuminance:
		if scene != nil {
			return &Luminance{
				Field:     luminance.NewField(scene, cfg.AngleStep),
				Base:      cfg.BaseSize,
				Variation: cfg.Variation,
			}, nil
		}
		log.Printf("No luminance scene available; using noise sizing")
		fallthrough
	case "", SourceNoise:
		if nf == nil {
			nf = noise.Perlin{}
		}
		return &Noise{
			Field:     nf,
			Scale:     cfg.NoiseScale,
			Base:      cfg.BaseSize,
			Variation: cfg.Variation,
			TimeStep:  cfg.NoiseStep,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown size source %q", ErrInvalidConfig, kind)
	}
}
