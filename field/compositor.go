package field

import (
	"errors"
	"log"
	"math"
	"time"

	"cursorfield/grid"
	"cursorfield/target"
)

// FrameInput is everything a frame reads from the outside world. It is
// captured once per frame and not modified during it.
type FrameInput struct {
	Width, Height float64
	Dt            time.Duration

	// Pointer is applied when HasPointer is set.
	PointerX, PointerY float64
	HasPointer         bool

	// Beta and Gamma are device tilt in degrees, applied when HasTilt is set.
	Beta, Gamma float64
	HasTilt     bool

	// AssetReady gates drawing; state advances either way.
	AssetReady bool
}

// DrawItem is one glyph to rasterize.
type DrawItem struct {
	X, Y  float64
	Angle float64
	Size  float64
}

// DrawList is the complete set of glyphs for one frame.
type DrawList []DrawItem

// Compositor owns the glyph grid and the state carried between frames. It is
// driven from a single goroutine.
type Compositor struct {
	cfg     Config
	source  SizeSource
	tracker *target.Tracker

	width, height float64
	glyphs        []grid.Glyph
	warm          bool

	frames  uint64
	stepErr error
	draw    DrawList
}

// NewCompositor validates cfg and wires the size source and tracker.
func NewCompositor(cfg Config, source SizeSource, tracker *target.Tracker) (*Compositor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, errors.New("field: nil size source")
	}
	if tracker == nil {
		tracker = target.New(cfg.Tracker, nil)
	}
	return &Compositor{cfg: cfg, source: source, tracker: tracker}, nil
}

// Resize re-lays the grid, discarding all glyph state. Calling it again with
// the same size still rebuilds.
func (c *Compositor) Resize(width, height float64) {
	c.width, c.height = width, height
	c.glyphs = grid.Layout(width, height, c.cfg.Spacing)
	c.warm = false
	c.tracker.Resize(width, height)
}

// Frame advances one animation tick and returns the draw list. The list is
// reused by the next call. It is empty while the asset is not ready.
func (c *Compositor) Frame(in FrameInput) DrawList {
	c.frames++
	if in.Width != c.width || in.Height != c.height || c.glyphs == nil {
		c.Resize(in.Width, in.Height)
	}
	if in.HasPointer {
		c.tracker.SetPointer(in.PointerX, in.PointerY)
	}
	if in.HasTilt {
		c.tracker.SetOrientation(in.Beta, in.Gamma)
	}

	if s, ok := c.source.(Stepper); ok {
		err := s.Step()
		if err != nil && c.stepErr == nil {
			log.Printf("Size source step failed, sampling neutral: %v", err)
		} else if err == nil && c.stepErr != nil {
			log.Printf("Size source recovered")
		}
		c.stepErr = err
	}

	c.tracker.Tick(in.Dt)
	tx, ty := c.tracker.Current()

	for i := range c.glyphs {
		g := &c.glyphs[i]
		g.Angle = Orientation(g.X, g.Y, tx, ty)
		size := c.source.BaseSize(g.X, g.Y, c.width, c.height)
		size += Boost(math.Hypot(tx-g.X, ty-g.Y), c.cfg.InfluenceRadius, c.cfg.MaxBoost)
		g.Size = size
		if c.cfg.Smoothing > 0 && c.warm {
			g.SmoothedSize = Smooth(g.SmoothedSize, size, c.cfg.Smoothing)
		} else {
			g.SmoothedSize = size
		}
	}
	c.warm = true

	c.draw = c.draw[:0]
	if !in.AssetReady {
		return c.draw
	}
	for _, g := range c.glyphs {
		if !grid.Visible(g.X, g.Y, c.width, c.height, c.cfg.Spacing) {
			continue
		}
		c.draw = append(c.draw, DrawItem{X: g.X, Y: g.Y, Angle: g.Angle, Size: g.SmoothedSize})
	}
	return c.draw
}

// Glyphs exposes the current grid.
func (c *Compositor) Glyphs() []grid.Glyph { return c.glyphs }

// Tracker returns the target tracker.
func (c *Compositor) Tracker() *target.Tracker { return c.tracker }

// Source returns the size source.
func (c *Compositor) Source() SizeSource { return c.source }

// Config returns the compositor configuration.
func (c *Compositor) Config() Config { return c.cfg }

// Frames returns the number of frames computed so far.
func (c *Compositor) Frames() uint64 { return c.frames }

// Orientation returns the glyph angle for a glyph at (gx, gy) facing a target
// at (tx, ty). The glyph art points up, so the bearing is rotated by -π/2 and
// then a half turn so the glyph faces away from the target.
func Orientation(gx, gy, tx, ty float64) float64 {
	return math.Atan2(ty-gy, tx-gx) - math.Pi/2 + math.Pi
}

// Boost is the smoothstep proximity bonus: max at distance 0, zero at and
// beyond radius.
func Boost(distance, radius, maxBoost float64) float64 {
	if radius <= 0 || distance >= radius {
		return 0
	}
	d := distance / radius
	if d < 0 {
		d = 0
	}
	return (1 - d*d*(3-2*d)) * maxBoost
}

// Smooth moves current toward dest by factor k.
func Smooth(current, dest, k float64) float64 {
	return current + (dest-current)*k
}
