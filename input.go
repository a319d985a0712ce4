package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointer returns the first active touch, or the mouse cursor when nothing is
// touching the screen.
func (g *Game) pointer() (float64, float64, bool) {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return float64(x), float64(y), true
	}
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y), true
}

// handleControls processes hotkeys. Arrow keys stand in for device tilt so
// the tilt mode can be driven from a narrow desktop window.
func (g *Game) handleControls() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		*debugFlag = !*debugFlag
	}

	dBeta, dGamma := g.tiltVector()
	if dBeta != 0 || dGamma != 0 {
		g.tiltActive = true
		g.tiltBeta = math.Max(-maxTilt, math.Min(maxTilt, g.tiltBeta+dBeta))
		g.tiltGamma = math.Max(-maxTilt, math.Min(maxTilt, g.tiltGamma+dGamma))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.tiltBeta, g.tiltGamma = 0, 0
	}
	return nil
}

// tiltVector returns the tilt change requested by the arrow keys.
func (g *Game) tiltVector() (float64, float64) {
	dBeta, dGamma := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dBeta -= tiltKeyStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dBeta += tiltKeyStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dGamma -= tiltKeyStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dGamma += tiltKeyStep
	}
	return dBeta, dGamma
}
