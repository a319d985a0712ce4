// Package glyph holds the cursor art shared by the rasterizers.
package glyph

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// ArtSize is the pixel size the glyph art is authored at.
const ArtSize = 25

// outline is a mouse-pointer arrow in unit space, centered on the origin,
// with its tip on +y.
var outline = [][2]float64{
	{0, 0.5},
	{-0.32, 0.02},
	{-0.1, 0.06},
	{-0.16, -0.5},
	{0.06, -0.5},
	{0.12, 0.06},
	{0.34, 0.02},
}

// Path traces the glyph centered at (x, y), rotated by angle and scaled to
// size pixels. The caller fills or strokes it.
func Path(dc *gg.Context, x, y, angle, size float64) {
	dc.Push()
	dc.Translate(x, y)
	dc.Rotate(angle)
	dc.Scale(size, size)
	for i, p := range outline {
		if i == 0 {
			dc.MoveTo(p[0], p[1])
			continue
		}
		dc.LineTo(p[0], p[1])
	}
	dc.ClosePath()
	dc.Pop()
}

// Draw fills the glyph with c and outlines it in black.
func Draw(dc *gg.Context, x, y, angle, size float64, c color.Color) {
	Path(dc, x, y, angle, size)
	dc.SetColor(c)
	dc.FillPreserve()
	dc.SetRGBA(0, 0, 0, 0.85)
	dc.SetLineWidth(math.Max(1, size/ArtSize))
	dc.Stroke()
}

// Render rasterizes an unrotated glyph into a px×px image with a transparent
// background. Tinting is left to the consumer, so the fill is white.
func Render(px int) image.Image {
	if px < 1 {
		px = 1
	}
	dc := gg.NewContext(px, px)
	half := float64(px) / 2
	Draw(dc, half, half, 0, float64(px)-2, color.White)
	return dc.Image()
}
