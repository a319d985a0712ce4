package main

import (
	"fmt"
	"image"
	"log"
	"math/rand"
	"time"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"cursorfield/field"
	"cursorfield/glyph"
	"cursorfield/luminance"
	"cursorfield/noise"
	"cursorfield/target"
)

// Game adapts the field compositor to ebiten's update/draw loop. ebiten calls
// Update and Draw on one goroutine, which is the frame goroutine.
type Game struct {
	comp *field.Compositor
	cfg  field.Config

	width, height int

	// glyph stays nil until the art arrives on glyphReady.
	glyph      *ebiten.Image
	glyphReady chan image.Image

	drawList   field.DrawList
	lastUpdate time.Time
	lastFrame  time.Duration
	lastLog    time.Time

	tiltBeta, tiltGamma float64
	tiltActive          bool

	sourceName   string
	releaseScene func()
}

// newGame builds the compositor from flags and starts loading the glyph art.
func newGame() (*Game, error) {
	cfg := field.DefaultConfig()
	cfg.Spacing = *spacingFlag
	cfg.Smoothing = *smoothingFlag
	cfg.Tracker.TiltSensitivity = *tiltSensitivityFlag

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	nf, err := noise.New(*noiseFlag, seed)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:          cfg,
		width:        defaultWindowW,
		height:       defaultWindowH,
		glyphReady:   make(chan image.Image, 1),
		releaseScene: func() {},
	}
	var scene luminance.Provider
	if field.SourceKind(*sizeSourceFlag) == field.SourceLuminance {
		scene, g.releaseScene = luminance.NewScene(sceneSize, *openCLFlag)
	}
	source, err := field.NewSource(cfg, *sizeSourceFlag, nf, scene)
	if err != nil {
		g.releaseScene()
		return nil, err
	}
	g.sourceName = fmt.Sprintf("%T", source)

	tracker := target.New(cfg.Tracker, rand.New(rand.NewSource(seed)))
	if g.comp, err = field.NewCompositor(cfg, source, tracker); err != nil {
		g.releaseScene()
		return nil, err
	}
	go g.loadGlyph(*glyphFlag)
	log.Printf("Cursor field: source %s, noise %s, spacing %.0f", *sizeSourceFlag, *noiseFlag, cfg.Spacing)
	return g, nil
}

// loadGlyph delivers the glyph art. Frames run without drawing until it lands.
func (g *Game) loadGlyph(path string) {
	if path == "" {
		g.glyphReady <- glyph.Render(glyphAssetPixels)
		return
	}
	img, err := gg.LoadPNG(path)
	if err != nil {
		log.Printf("Glyph %s failed to load, using built-in arrow: %v", path, err)
		img = glyph.Render(glyphAssetPixels)
	}
	g.glyphReady <- img
}

// Update advances the field by one frame.
func (g *Game) Update() error {
	if g.glyph == nil {
		select {
		case img := <-g.glyphReady:
			g.glyph = ebiten.NewImageFromImage(img)
		default:
		}
	}

	if err := g.handleControls(); err != nil {
		return err
	}

	now := time.Now()
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	dt := time.Second / time.Duration(tps)
	if !g.lastUpdate.IsZero() {
		dt = now.Sub(g.lastUpdate)
	}
	g.lastUpdate = now

	in := field.FrameInput{
		Width:      float64(g.width),
		Height:     float64(g.height),
		Dt:         dt,
		AssetReady: g.glyph != nil,
	}
	in.PointerX, in.PointerY, in.HasPointer = g.pointer()
	if g.tiltActive {
		in.Beta, in.Gamma, in.HasTilt = g.tiltBeta, g.tiltGamma, true
	}

	start := time.Now()
	g.drawList = g.comp.Frame(in)
	g.lastFrame = time.Since(start)
	g.logFrameStats(now)
	return nil
}

func (g *Game) logFrameStats(now time.Time) {
	if !*debugFlag || now.Sub(g.lastLog) < frameLogInterval {
		return
	}
	g.lastLog = now
	x, y := g.comp.Tracker().Current()
	log.Printf("Frame %d: %d glyphs drawn of %d, mode %s, target (%.0f, %.0f), compose %.2f ms",
		g.comp.Frames(), len(g.drawList), len(g.comp.Glyphs()), g.comp.Tracker().Mode(),
		x, y, g.lastFrame.Seconds()*1000)
}

// Close releases the luminance scene.
func (g *Game) Close() {
	if g.releaseScene != nil {
		g.releaseScene()
		g.releaseScene = nil
	}
}
