// Package grid lays out the glyph slots that tile the viewport.
package grid

import "math"

// Glyph is one slot of the field. X and Y are fixed at layout; the rest is
// rewritten every frame.
type Glyph struct {
	X, Y  float64
	Angle float64
	// Size is the unsmoothed target size computed for the latest frame.
	Size float64
	// SmoothedSize is the render size.
	SmoothedSize float64
}

// Dims returns the column and row counts for a viewport. One extra glyph on
// each side keeps edges covered while the viewport changes.
func Dims(width, height, spacing float64) (cols, rows int) {
	if spacing <= 0 || width <= 0 || height <= 0 {
		return 0, 0
	}
	cols = int(math.Ceil(width/spacing)) + 2
	rows = int(math.Ceil(height/spacing)) + 2
	return cols, rows
}

// Count returns the number of glyphs Layout produces.
func Count(width, height, spacing float64) int {
	cols, rows := Dims(width, height, spacing)
	return cols * rows
}

// Layout builds a fresh row-major grid with origin at the viewport origin.
func Layout(width, height, spacing float64) []Glyph {
	cols, rows := Dims(width, height, spacing)
	glyphs := make([]Glyph, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			glyphs = append(glyphs, Glyph{
				X: float64(col) * spacing,
				Y: float64(row) * spacing,
			})
		}
	}
	return glyphs
}

// Visible reports whether (x, y) lies within one spacing of the viewport.
func Visible(x, y, width, height, spacing float64) bool {
	return x >= -spacing && x <= width+spacing &&
		y >= -spacing && y <= height+spacing
}
