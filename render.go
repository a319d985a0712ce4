package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cursorfield/glyph"
)

var backgroundColor = color.RGBA{0x0b, 0x0d, 0x14, 0xff}

// Draw rasterizes the latest draw list.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if g.glyph != nil {
		g.drawGlyphs(screen)
	}
	if *debugFlag {
		g.drawDebug(screen)
	}
}

// Layout makes the field cover the whole window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}

func (g *Game) drawGlyphs(screen *ebiten.Image) {
	b := g.glyph.Bounds()
	halfW, halfH := float64(b.Dx())/2, float64(b.Dy())/2
	lo := g.cfg.BaseSize - g.cfg.Variation
	hi := g.cfg.BaseSize + g.cfg.Variation + g.cfg.MaxBoost
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	for _, it := range g.drawList {
		if it.Size <= 0 {
			continue
		}
		op.GeoM.Reset()
		op.GeoM.Translate(-halfW, -halfH)
		op.GeoM.Scale(it.Size/float64(b.Dx()), it.Size/float64(b.Dy()))
		op.GeoM.Rotate(it.Angle)
		op.GeoM.Translate(it.X, it.Y)
		op.ColorScale.Reset()
		op.ColorScale.ScaleWithColor(glyph.Tint(glyph.Ratio(it.Size, lo, hi)))
		screen.DrawImage(g.glyph, op)
	}
}

// drawDebug renders the target crosshair and the stats overlay.
func (g *Game) drawDebug(screen *ebiten.Image) {
	x, y := g.comp.Tracker().Current()
	fx, fy := float32(x), float32(y)
	marker := color.RGBA{255, 0, 0, 255}
	vector.StrokeLine(screen, fx-8, fy, fx+8, fy, 1, marker, true)
	vector.StrokeLine(screen, fx, fy-8, fx, fy+8, 1, marker, true)

	fps := ebiten.ActualFPS()
	tps := ebiten.ActualTPS()
	msg := fmt.Sprintf("FPS: %.1f (%.1f TPS)\nGlyphs: %d drawn / %d\nMode: %s  Source: %s\nTilt: %.0f, %.0f (arrows, Home resets)\nCompose: %.2f ms",
		fps, tps, len(g.drawList), len(g.comp.Glyphs()), g.comp.Tracker().Mode(), g.sourceName,
		g.tiltBeta, g.tiltGamma, g.lastFrame.Seconds()*1000)
	ebitenutil.DebugPrint(screen, msg)
}
