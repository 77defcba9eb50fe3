package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// InputFrameData is the per-tick aggregate of all input sources for the
// active camera: mouse drag, scroll, trackpad, pinch and touch gestures,
// already scaled by the camera's sensitivities. Rebuilt from scratch every
// tick and consumed once by the orbit system.
type InputFrameData struct {
	Orbit       mgl32.Vec2
	Pan         mgl32.Vec2
	ScrollLine  float32 // wheel "lines"
	ScrollPixel float32 // trackpad pixels, pre-scaled; skips zoom smoothing
	Roll        float32 // radians about the camera forward axis
	// OrbitButtonChanged is set on the press/release edge of the orbit
	// gesture, gating the upside-down recomputation.
	OrbitButtonChanged bool
}

var InputFrame = donburi.NewComponentType[InputFrameData]()
