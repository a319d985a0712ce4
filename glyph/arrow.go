package glyph

import "math"

// arrows are indexed by tip direction in 45° steps, clockwise from +x with y
// pointing down.
var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Arrow returns the arrow rune closest to where the tip of a glyph rotated by
// angle points.
func Arrow(angle float64) rune {
	s, c := math.Sincos(angle)
	// Rotating the +y tip by angle gives (-sin, cos).
	dir := math.Atan2(c, -s)
	idx := int(math.Round(dir/(math.Pi/4))) % 8
	if idx < 0 {
		idx += 8
	}
	return arrows[idx]
}
