package main

import (
	"github.com/fogleman/gg"

	"cursorfield/field"
	"cursorfield/glyph"
)

// render rasterizes a draw list onto a fresh canvas, tinting each glyph by
// where its size falls in the field's size band.
func render(list field.DrawList, width, height int, cfg field.Config) *gg.Context {
	dc := gg.NewContext(width, height)
	dc.SetRGB255(0x0b, 0x0d, 0x14)
	dc.Clear()
	lo := cfg.BaseSize - cfg.Variation
	hi := cfg.BaseSize + cfg.Variation + cfg.MaxBoost
	for _, it := range list {
		if it.Size <= 0 {
			continue
		}
		glyph.Draw(dc, it.X, it.Y, it.Angle, it.Size, glyph.Tint(glyph.Ratio(it.Size, lo, hi)))
	}
	return dc
}
