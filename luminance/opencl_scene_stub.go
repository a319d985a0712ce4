//go:build !opencl

package luminance

import (
	"errors"
	"image/color"
)

// CLScene is unavailable without the opencl build tag.
type CLScene struct{}

// NewCLScene always fails; rebuild with -tags opencl.
func NewCLScene(width, height int) (*CLScene, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (s *CLScene) Render(angle float64) error { return errors.New("OpenCL scene unavailable") }

func (s *CLScene) Bounds() (int, int) { return 0, 0 }

func (s *CLScene) At(x, y int) color.RGBA { return color.RGBA{} }

func (s *CLScene) Close() {}

func (s *CLScene) DeviceName() string { return "" }
