package main

import "flag"

// Command-line flags for the desktop driver.
var (
	// sizeSourceFlag picks what modulates glyph size.
	sizeSourceFlag = flag.String("size-source", "noise", "glyph size source: fixed, noise or luminance")

	// noiseFlag picks the noise backend for the noise size source.
	noiseFlag = flag.String("noise", "perlin", "noise backend: perlin, simplex or fbm")

	seedFlag = flag.Int64("seed", 0, "seed for wander targets and seeded noise backends (0 = time based)")

	// spacingFlag overrides the glyph pitch.
	spacingFlag = flag.Float64("spacing", 37, "glyph pitch in pixels (glyph size plus gutter)")

	// smoothingFlag sets the size easing factor; 0 disables size smoothing.
	smoothingFlag = flag.Float64("smoothing", 0.12, "per-frame size easing factor in [0,1]")

	// tiltSensitivityFlag scales tilt before it is clamped to the viewport.
	tiltSensitivityFlag = flag.Float64("tilt-sensitivity", 3, "tilt-to-target multiplier")

	// openCLFlag renders the luminance scene on the GPU when built with -tags opencl.
	openCLFlag = flag.Bool("opencl", false, "render the luminance scene with OpenCL")

	// glyphFlag loads the glyph art from a PNG instead of the built-in arrow.
	glyphFlag = flag.String("glyph", "", "path to a PNG used as glyph art")

	// debugFlag enables the FPS and field overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and field overlay")

	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")
	memProfileFlag = flag.String("memprofile", "", "write a heap profile to this file on exit")
)
