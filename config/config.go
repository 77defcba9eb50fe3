package config

import "github.com/yohamta/donburi/ecs"

// Default is the ecs layer all entities and renderers use.
const Default ecs.LayerID = 0

// Config contains top-level window settings for the demo host.
type Config struct {
	Width  int
	Height int
	Title  string
}

// CameraConfig contains the default knobs new orbit cameras are created
// with. Per-entity component fields can be changed live afterwards; these
// only seed them.
type CameraConfig struct {
	OrbitSensitivity float32
	OrbitSmoothness  float32
	PanSensitivity   float32
	PanSmoothness    float32
	ZoomSensitivity  float32
	ZoomSmoothness   float32
	ReversedZoom     bool

	TrackpadSensitivity float32
	TrackpadPinchToZoom bool
	TouchControls       int // components.TouchControls value
	TrackpadBehavior    int // components.TrackpadBehavior value

	// Demo scene defaults.
	FOV         float32 // vertical field of view, radians
	Near        float32
	Far         float32
	StartOffset [3]float32 // initial camera position relative to focus
}

var C *Config
var Camera CameraConfig

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "orbitcam",
	}

	Camera = CameraConfig{
		OrbitSensitivity:    1.0,
		OrbitSmoothness:     0.8,
		PanSensitivity:      1.0,
		PanSmoothness:       0.6,
		ZoomSensitivity:     1.0,
		ZoomSmoothness:      0.8,
		ReversedZoom:        false,
		TrackpadSensitivity: 1.0,
		TrackpadPinchToZoom: true,
		TouchControls:       0,
		TrackpadBehavior:    0,
		FOV:                 1.0472, // 60 degrees
		Near:                0.1,
		Far:                 100,
		StartOffset:         [3]float32{0, 3, 8},
	}
}
