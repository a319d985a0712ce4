package luminance

import (
	"image"
	"image/color"
	"math"
	"runtime"
	"sync"
)

// Scene defaults. The torus spins about Y with a fixed tilt about X and is lit
// by an ambient term plus one directional light.
const (
	DefaultSceneSize = 96

	torusMajor   = 1.0
	torusMinor   = 0.38
	torusTilt    = 0.65
	cameraZ      = 3.2
	cameraFOV    = 1.0
	ambientLight = 0.18
	directLight  = 0.85
	traceSteps   = 64
	traceEpsilon = 1e-3
	traceFar     = 10.0
)

var (
	torusColor      = color.RGBA{0xFF, 0x99, 0x33, 0xFF}
	backgroundColor = color.RGBA{0x05, 0x08, 0x12, 0xFF}
	lightDir        = vec3{-0.4, 0.9, 0.3}.normalize()
)

// TorusScene sphere-traces a rotating torus on the CPU.
type TorusScene struct {
	width, height int
	img           *image.RGBA
	// Workers caps the goroutines used per render; 0 means runtime.NumCPU.
	Workers int
}

// NewTorusScene allocates a width×height scene buffer.
func NewTorusScene(width, height int) *TorusScene {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &TorusScene{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Bounds implements Provider.
func (s *TorusScene) Bounds() (int, int) { return s.width, s.height }

// At implements Provider.
func (s *TorusScene) At(x, y int) color.RGBA { return s.img.RGBAAt(x, y) }

// Image exposes the last rendered frame.
func (s *TorusScene) Image() *image.RGBA { return s.img }

// Render implements Provider. Rows are split across workers and joined before
// returning, so callers always observe a complete frame.
func (s *TorusScene) Render(angle float64) error {
	workers := s.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	rowsPer := (s.height + workers - 1) / workers
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		yStart := i * rowsPer
		if yStart >= s.height {
			break
		}
		yEnd := yStart + rowsPer
		if yEnd > s.height {
			yEnd = s.height
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				for x := 0; x < s.width; x++ {
					s.img.SetRGBA(x, y, s.shade(x, y, angle))
				}
			}
		}(yStart, yEnd)
	}
	wg.Wait()
	return nil
}

// shade traces the primary ray through pixel (x, y).
func (s *TorusScene) shade(x, y int, angle float64) color.RGBA {
	half := math.Tan(cameraFOV / 2)
	aspect := float64(s.width) / float64(s.height)
	u := (2*(float64(x)+0.5)/float64(s.width) - 1) * half * aspect
	v := (1 - 2*(float64(y)+0.5)/float64(s.height)) * half
	origin := vec3{0, 0, cameraZ}
	dir := vec3{u, v, -1}.normalize()

	// Trace in object space.
	o := rotateX(rotateY(origin, -angle), -torusTilt)
	d := rotateX(rotateY(dir, -angle), -torusTilt)

	dist := 0.0
	for i := 0; i < traceSteps; i++ {
		p := o.add(d.scale(dist))
		sd := torusSDF(p)
		if sd < traceEpsilon {
			n := rotateY(rotateX(torusNormal(p), torusTilt), angle)
			return lit(math.Max(0, n.dot(lightDir)))
		}
		dist += sd
		if dist > traceFar {
			break
		}
	}
	return backgroundColor
}

func torusSDF(p vec3) float64 {
	qx := math.Hypot(p.x, p.z) - torusMajor
	return math.Hypot(qx, p.y) - torusMinor
}

func torusNormal(p vec3) vec3 {
	ring := vec3{p.x, 0, p.z}.normalize().scale(torusMajor)
	return p.sub(ring).normalize()
}

func lit(diffuse float64) color.RGBA {
	k := math.Min(1, ambientLight+directLight*diffuse)
	return color.RGBA{
		R: uint8(float64(torusColor.R) * k),
		G: uint8(float64(torusColor.G) * k),
		B: uint8(float64(torusColor.B) * k),
		A: 0xFF,
	}
}
