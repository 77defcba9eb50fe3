package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"

	"github.com/vantor3d/orbitcam/components"
)

// SavedControls represents the control preferences stored on disk
type SavedControls struct {
	OrbitSensitivity    float32 `json:"orbitSensitivity"`
	PanSensitivity      float32 `json:"panSensitivity"`
	ZoomSensitivity     float32 `json:"zoomSensitivity"`
	TrackpadSensitivity float32 `json:"trackpadSensitivity"`
	ReversedZoom        bool    `json:"reversedZoom"`
	TrackpadBehavior    int     `json:"trackpadBehavior"`
	TouchControls       int     `json:"touchControls"`
	PinchToZoom         bool    `json:"pinchToZoom"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for control preference storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadControls loads control preferences from disk. Returns nil with no
// error when persistence is unavailable or nothing was saved yet.
func LoadControls() (*SavedControls, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("controls")
	if err != nil {
		log.Printf("Warning: Could not load controls: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var controls SavedControls
	if err := json.Unmarshal(data, &controls); err != nil {
		log.Printf("Warning: Could not parse controls: %v", err)
		return nil, nil
	}

	return &controls, nil
}

// SaveControls saves control preferences to disk
func SaveControls(c *SavedControls) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(c)
	if err != nil {
		log.Printf("Warning: Could not serialize controls: %v", err)
		return err
	}
	if err := gdataManager.SaveItem("controls", data); err != nil {
		log.Printf("Warning: Could not save controls: %v", err)
		return err
	}
	return nil
}

// ControlsFromCamera snapshots a camera's tunables for saving.
func ControlsFromCamera(cam *components.OrbitCameraData) *SavedControls {
	return &SavedControls{
		OrbitSensitivity:    cam.OrbitSensitivity,
		PanSensitivity:      cam.PanSensitivity,
		ZoomSensitivity:     cam.ZoomSensitivity,
		TrackpadSensitivity: cam.TrackpadSensitivity,
		ReversedZoom:        cam.ReversedZoom,
		TrackpadBehavior:    int(cam.TrackpadBehavior),
		TouchControls:       int(cam.TouchControls),
		PinchToZoom:         cam.TrackpadPinchToZoom,
	}
}

// ApplyControls writes saved preferences onto a camera.
func ApplyControls(cam *components.OrbitCameraData, c *SavedControls) {
	if c == nil {
		return
	}
	cam.OrbitSensitivity = c.OrbitSensitivity
	cam.PanSensitivity = c.PanSensitivity
	cam.ZoomSensitivity = c.ZoomSensitivity
	cam.TrackpadSensitivity = c.TrackpadSensitivity
	cam.ReversedZoom = c.ReversedZoom
	cam.TrackpadBehavior = components.TrackpadBehavior(c.TrackpadBehavior)
	cam.TouchControls = components.TouchControls(c.TouchControls)
	cam.TrackpadPinchToZoom = c.PinchToZoom
}
