// Command cursorfield-snap runs the cursor field headless for a number of
// frames and writes the last one to a PNG.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"cursorfield/field"
	"cursorfield/luminance"
	"cursorfield/noise"
	"cursorfield/target"
)

var (
	widthFlag      = flag.Int("width", 1000, "viewport width in pixels")
	heightFlag     = flag.Int("height", 800, "viewport height in pixels")
	framesFlag     = flag.Int("frames", 120, "frames to simulate before the snapshot")
	sizeSourceFlag = flag.String("size-source", "noise", "glyph size source: fixed, noise or luminance")
	noiseFlag      = flag.String("noise", "perlin", "noise backend: perlin, simplex or fbm")
	seedFlag       = flag.Int64("seed", 1, "seed for wander targets and seeded noise backends")
	pointerXFlag   = flag.Float64("pointer-x", -1, "pointer x; negative leaves the pointer unset")
	pointerYFlag   = flag.Float64("pointer-y", -1, "pointer y")
	openCLFlag     = flag.Bool("opencl", false, "render the luminance scene with OpenCL")
	outFlag        = flag.String("out", "cursorfield.png", "output PNG path")
)

const (
	sceneSize = 96
	frameStep = time.Second / 60
)

func main() {
	flag.Parse()
	if *widthFlag <= 0 || *heightFlag <= 0 {
		log.Fatalf("Viewport %dx%d must be positive", *widthFlag, *heightFlag)
	}

	cfg := field.DefaultConfig()
	nf, err := noise.New(*noiseFlag, *seedFlag)
	if err != nil {
		log.Fatalf("Noise setup failed: %v", err)
	}
	var scene luminance.Provider
	release := func() {}
	if field.SourceKind(*sizeSourceFlag) == field.SourceLuminance {
		scene, release = luminance.NewScene(sceneSize, *openCLFlag)
	}
	defer release()
	source, err := field.NewSource(cfg, *sizeSourceFlag, nf, scene)
	if err != nil {
		log.Fatalf("Size source setup failed: %v", err)
	}
	comp, err := field.NewCompositor(cfg, source, target.New(cfg.Tracker, rand.New(rand.NewSource(*seedFlag))))
	if err != nil {
		log.Fatalf("Field setup failed: %v", err)
	}

	in := field.FrameInput{
		Width:      float64(*widthFlag),
		Height:     float64(*heightFlag),
		Dt:         frameStep,
		AssetReady: true,
	}
	if *pointerXFlag >= 0 && *pointerYFlag >= 0 {
		in.PointerX, in.PointerY, in.HasPointer = *pointerXFlag, *pointerYFlag, true
	}

	start := time.Now()
	var list field.DrawList
	for i := 0; i < *framesFlag || i == 0; i++ {
		list = comp.Frame(in)
	}
	log.Printf("Simulated %d frames in %v, %d glyphs drawn", comp.Frames(), time.Since(start), len(list))

	tx, ty := comp.Tracker().Current()
	dc := render(list, *widthFlag, *heightFlag, cfg)
	if err := dc.SavePNG(*outFlag); err != nil {
		log.Fatalf("Failed to write %s: %v", *outFlag, err)
	}
	log.Printf("Wrote %s (target %.0f, %.0f, mode %s)", *outFlag, tx, ty, comp.Tracker().Mode())
}
