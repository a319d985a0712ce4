package main

import "time"

// Window and rendering constants for the desktop driver. Field tuning lives in
// field.DefaultConfig; flags override a subset of it.
const (
	defaultWindowW   = 1000
	defaultWindowH   = 800
	sceneSize        = 96
	glyphAssetPixels = 64
	tiltKeyStep      = 2.0
	maxTilt          = 90.0
	frameLogInterval = 10 * time.Second
	windowTitle      = "Cursor Field"
)
