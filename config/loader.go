package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Override is the YAML shape of an orbitcam.yaml file. Pointer fields leave
// the compiled-in default untouched when absent.
type Override struct {
	Width  *int    `yaml:"width"`
	Height *int    `yaml:"height"`
	Title  *string `yaml:"title"`

	Camera struct {
		OrbitSensitivity    *float32 `yaml:"orbit_sensitivity"`
		OrbitSmoothness     *float32 `yaml:"orbit_smoothness"`
		PanSensitivity      *float32 `yaml:"pan_sensitivity"`
		PanSmoothness       *float32 `yaml:"pan_smoothness"`
		ZoomSensitivity     *float32 `yaml:"zoom_sensitivity"`
		ZoomSmoothness      *float32 `yaml:"zoom_smoothness"`
		ReversedZoom        *bool    `yaml:"reversed_zoom"`
		TrackpadSensitivity *float32 `yaml:"trackpad_sensitivity"`
		TrackpadPinchToZoom *bool    `yaml:"trackpad_pinch_to_zoom"`
		TouchControls       *int     `yaml:"touch_controls"`
		TrackpadBehavior    *int     `yaml:"trackpad_behavior"`
	} `yaml:"camera"`
}

// Load reads a YAML override file and applies it over the defaults.
// A missing file is not an error; anything else is.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return Apply(data)
}

// Apply parses YAML override data and merges it into C and Camera.
func Apply(data []byte) error {
	var o Override
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}

	if o.Width != nil {
		C.Width = *o.Width
	}
	if o.Height != nil {
		C.Height = *o.Height
	}
	if o.Title != nil {
		C.Title = *o.Title
	}

	cam := o.Camera
	if cam.OrbitSensitivity != nil {
		Camera.OrbitSensitivity = *cam.OrbitSensitivity
	}
	if cam.OrbitSmoothness != nil {
		Camera.OrbitSmoothness = *cam.OrbitSmoothness
	}
	if cam.PanSensitivity != nil {
		Camera.PanSensitivity = *cam.PanSensitivity
	}
	if cam.PanSmoothness != nil {
		Camera.PanSmoothness = *cam.PanSmoothness
	}
	if cam.ZoomSensitivity != nil {
		Camera.ZoomSensitivity = *cam.ZoomSensitivity
	}
	if cam.ZoomSmoothness != nil {
		Camera.ZoomSmoothness = *cam.ZoomSmoothness
	}
	if cam.ReversedZoom != nil {
		Camera.ReversedZoom = *cam.ReversedZoom
	}
	if cam.TrackpadSensitivity != nil {
		Camera.TrackpadSensitivity = *cam.TrackpadSensitivity
	}
	if cam.TrackpadPinchToZoom != nil {
		Camera.TrackpadPinchToZoom = *cam.TrackpadPinchToZoom
	}
	if cam.TouchControls != nil {
		Camera.TouchControls = *cam.TouchControls
	}
	if cam.TrackpadBehavior != nil {
		Camera.TrackpadBehavior = *cam.TrackpadBehavior
	}
	return nil
}
