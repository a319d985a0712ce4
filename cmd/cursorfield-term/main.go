// Command cursorfield-term renders the cursor field as arrow runes in a
// terminal. The mouse steers the target; narrow terminals wander instead.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"cursorfield/field"
	"cursorfield/glyph"
	"cursorfield/noise"
	"cursorfield/target"
)

// A terminal cell stands in for this many viewport pixels so the default
// spacing and radius stay meaningful.
const (
	cellW = 8.0
	cellH = 16.0
)

var (
	noiseFlag = flag.String("noise", "perlin", "noise backend: perlin, simplex or fbm")
	seedFlag  = flag.Int64("seed", 0, "seed for wander targets and seeded noise backends (0 = time based)")
	fpsFlag   = flag.Int("fps", 30, "frames per second")
	logFlag   = flag.String("log", "", "append log output to this file instead of discarding it")
)

type termView struct {
	screen tcell.Screen
	lo, hi float64
}

func (v *termView) draw(_ uint64, list field.DrawList) {
	v.screen.Clear()
	for _, it := range list {
		x, y := int(it.X/cellW), int(it.Y/cellH)
		r, g, b := glyph.Tint(glyph.Ratio(it.Size, v.lo, v.hi)).RGB255()
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
		v.screen.SetContent(x, y, glyph.Arrow(it.Angle), nil, style)
	}
	v.screen.Show()
}

func main() {
	flag.Parse()

	// The screen owns stdout, so log output goes to a file or nowhere.
	log.SetOutput(io.Discard)
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := field.DefaultConfig()
	nf, err := noise.New(*noiseFlag, seed)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Noise setup failed: %v", err)
	}
	source, err := field.NewSource(cfg, field.SourceNoise, nf, nil)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Size source setup failed: %v", err)
	}
	comp, err := field.NewCompositor(cfg, source, target.New(cfg.Tracker, rand.New(rand.NewSource(seed))))
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Field setup failed: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	view := &termView{
		screen: screen,
		lo:     cfg.BaseSize - cfg.Variation,
		hi:     cfg.BaseSize + cfg.Variation + cfg.MaxBoost,
	}
	interval := time.Second / 30
	if *fpsFlag > 0 {
		interval = time.Second / time.Duration(*fpsFlag)
	}
	anim := field.NewAnimator(comp, view.draw, field.WithInterval(interval))
	w, h := screen.Size()
	anim.SetViewport(float64(w)*cellW, float64(h)*cellH)
	anim.SetAssetReady(true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	anim.Start(ctx)
	defer anim.Stop()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return
			}
		case *tcell.EventMouse:
			x, y := ev.Position()
			anim.SetPointer((float64(x)+0.5)*cellW, (float64(y)+0.5)*cellH)
		case *tcell.EventResize:
			w, h := ev.Size()
			anim.SetViewport(float64(w)*cellW, float64(h)*cellH)
			screen.Sync()
		case nil:
			return
		}
	}
}
