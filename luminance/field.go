// Package luminance samples brightness from an offscreen rotating scene.
package luminance

import (
	"image/color"
	"math"
)

// Neutral is the brightness reported when no scene frame is available.
const Neutral = 0.5

// DefaultAngleStep is the scene rotation per frame, in radians.
const DefaultAngleStep = 0.01

// Provider renders the scene into a fixed-size buffer and exposes its pixels.
type Provider interface {
	Render(angle float64) error
	Bounds() (width, height int)
	At(x, y int) color.RGBA
}

// Field wraps a Provider with rotation state and viewport-space sampling.
type Field struct {
	provider Provider
	step     float64
	angle    float64
	ready    bool
	err      error
}

// NewField wraps p. A nil p yields a field that always samples Neutral.
func NewField(p Provider, step float64) *Field {
	return &Field{provider: p, step: step}
}

// Refresh advances the rotation by dFrame steps and re-renders once. After a
// failed render every sample is Neutral until a render succeeds.
func (f *Field) Refresh(dFrame float64) error {
	f.angle += f.step * dFrame
	if f.provider == nil {
		return nil
	}
	f.err = f.provider.Render(f.angle)
	f.ready = f.err == nil
	return f.err
}

// Angle returns the current scene rotation.
func (f *Field) Angle() float64 { return f.angle }

// Err returns the last render error.
func (f *Field) Err() error { return f.err }

// Sample maps (px, py) in a vw×vh viewport onto the buffer, clamped to its
// bounds, and returns the brightness in [0, 1] of that cell.
func (f *Field) Sample(px, py, vw, vh float64) float64 {
	if f.provider == nil || !f.ready || vw <= 0 || vh <= 0 {
		return Neutral
	}
	bw, bh := f.provider.Bounds()
	if bw <= 0 || bh <= 0 {
		return Neutral
	}
	bx, okx := cell(px/vw*float64(bw), bw)
	by, oky := cell(py/vh*float64(bh), bh)
	if !okx || !oky {
		return Neutral
	}
	return Brightness(f.provider.At(bx, by))
}

// Brightness reduces c to Rec. 601 luma in [0, 1].
func Brightness(c color.RGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

func cell(v float64, n int) (int, bool) {
	if math.IsNaN(v) {
		return 0, false
	}
	v = math.Floor(v)
	if v < 0 {
		return 0, true
	}
	if v > float64(n-1) {
		return n - 1, true
	}
	return int(v), true
}
