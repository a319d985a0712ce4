package luminance

import "log"

// NewScene returns the scene renderer to back a Field. With useOpenCL set it
// tries the GPU renderer first and falls back to the CPU tracer. The returned
// release func is never nil.
func NewScene(size int, useOpenCL bool) (Provider, func()) {
	if useOpenCL {
		s, err := NewCLScene(size, size)
		if err == nil {
			log.Printf("OpenCL luminance scene enabled (device: %s)", s.DeviceName())
			return s, s.Close
		}
		log.Printf("OpenCL luminance scene unavailable, using CPU tracer: %v", err)
	}
	return NewTorusScene(size, size), func() {}
}
