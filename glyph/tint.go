package glyph

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	coolColor, _ = colorful.Hex("#6c8cff")
	warmColor, _ = colorful.Hex("#ff9933")
)

// Ratio places size within [lo, hi], clamped to [0, 1].
func Ratio(size, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return math.Max(0, math.Min(1, (size-lo)/(hi-lo)))
}

// Tint blends from cool to warm in Lab space as t goes from 0 to 1.
func Tint(t float64) colorful.Color {
	return coolColor.BlendLab(warmColor, math.Max(0, math.Min(1, t))).Clamped()
}
