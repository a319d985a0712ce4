// Package field composes the per-frame glyph field: orientation toward the
// tracked target, size from the configured source, and the proximity boost.
package field

import (
	"errors"
	"fmt"

	"cursorfield/target"
)

// Config holds the compositor tuning.
type Config struct {
	// Spacing is the glyph pitch: glyph size plus gutter.
	Spacing   float64
	BaseSize  float64
	Variation float64

	NoiseScale float64
	// NoiseStep is how far noise time moves per frame.
	NoiseStep float64
	// AngleStep is the luminance scene rotation per frame.
	AngleStep float64

	InfluenceRadius float64
	MaxBoost        float64
	// Smoothing is the per-frame easing factor for render sizes; 0 disables
	// smoothing so sizes track with no lag.
	Smoothing float64

	Tracker target.Config
}

// DefaultConfig returns the stock field: 25px glyphs on a 37px pitch.
func DefaultConfig() Config {
	return Config{
		Spacing:         12 + 25,
		BaseSize:        25,
		Variation:       10,
		NoiseScale:      0.004,
		NoiseStep:       0.005,
		AngleStep:       0.01,
		InfluenceRadius: 180,
		MaxBoost:        18,
		Smoothing:       0.12,
		Tracker:         target.DefaultConfig(),
	}
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid field config")

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.Spacing <= 0:
		return fmt.Errorf("%w: spacing %v must be positive", ErrInvalidConfig, c.Spacing)
	case c.BaseSize < 0:
		return fmt.Errorf("%w: base size %v is negative", ErrInvalidConfig, c.BaseSize)
	case c.InfluenceRadius < 0:
		return fmt.Errorf("%w: influence radius %v is negative", ErrInvalidConfig, c.InfluenceRadius)
	case c.Smoothing < 0 || c.Smoothing > 1:
		return fmt.Errorf("%w: smoothing %v outside [0,1]", ErrInvalidConfig, c.Smoothing)
	case c.Tracker.WanderSmoothing <= 0 || c.Tracker.WanderSmoothing > 1:
		return fmt.Errorf("%w: wander smoothing %v outside (0,1]", ErrInvalidConfig, c.Tracker.WanderSmoothing)
	case c.Tracker.TiltSmoothing <= 0 || c.Tracker.TiltSmoothing > 1:
		return fmt.Errorf("%w: tilt smoothing %v outside (0,1]", ErrInvalidConfig, c.Tracker.TiltSmoothing)
	case c.Tracker.ResamplePeriod <= 0:
		return fmt.Errorf("%w: resample period %v must be positive", ErrInvalidConfig, c.Tracker.ResamplePeriod)
	}
	return nil
}
