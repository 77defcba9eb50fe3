package systems

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/vantor3d/orbitcam/components"
)

// Scroll and pinch deltas are pre-scaled to keep heterogeneous device units
// comparable: trackpads emit far finer-grained pixel deltas than wheel
// lines, and pinch/touch-pinch magnitudes differ again.
const (
	pixelScrollScale  = 0.005
	touchPinchScale   = 0.015
	pinchGestureScale = 10.0
)

// UpdateInput aggregates this tick's raw device input into the InputFrame
// singleton, using the active camera's bindings and sensitivities. The frame
// is rebuilt from scratch every tick; when no camera is active, or a UI
// overlay wants focus, it stays zero (smoothing still runs downstream).
// Must run after UpdateTouchTracker and UpdateActiveCamera.
func UpdateInput(e *ecs.ECS) {
	frameEntry, ok := components.InputFrame.First(e.World)
	if !ok {
		return
	}
	frame := components.InputFrame.Get(frameEntry)
	*frame = components.InputFrameData{}

	if focusEntry, ok := components.UIFocus.First(e.World); ok {
		if components.UIFocus.Get(focusEntry).WantsFocus() {
			return
		}
	}

	activeEntry, ok := components.ActiveCamera.First(e.World)
	if !ok {
		return
	}
	active := components.ActiveCamera.Get(activeEntry)
	if !active.HasEntity || !e.World.Valid(active.Entity) {
		return
	}
	camEntry := e.World.Entry(active.Entity)
	if !camEntry.HasComponent(components.OrbitCamera) {
		return
	}
	cam := components.OrbitCamera.Get(camEntry)

	src := Source
	var orbit, pan mgl32.Vec2
	var scrollLine, scrollPixel, roll float32

	zoomDir := float32(1)
	if cam.ReversedZoom {
		zoomDir = -1
	}

	// Scroll. Line units always zoom; pixel units route according to the
	// trackpad behavior.
	line, pixel := src.Scroll()
	scrollLine += line.Y() * zoomDir * cam.ZoomSensitivity
	switch cam.TrackpadBehavior {
	case components.TrackpadBlenderLike:
		switch {
		case modifierHeld(src, cam.TrackpadZoomModifier):
			scrollPixel += pixel.Y() * pixelScrollScale * zoomDir * cam.ZoomSensitivity
		case modifierHeld(src, cam.TrackpadPanModifier):
			pan = pan.Add(pixel.Mul(cam.TrackpadSensitivity))
		default:
			orbit = orbit.Add(pixel.Mul(cam.TrackpadSensitivity))
		}
	default:
		scrollPixel += pixel.Y() * pixelScrollScale * zoomDir * cam.ZoomSensitivity
	}

	// Pinch gestures mirror host-application convention: ignored while any
	// orbit/pan/trackpad modifier is held, so a gesture is never counted
	// both as a modified scroll and a zoom.
	if cam.TrackpadPinchToZoom && !anyPinchModifierHeld(src, cam) {
		scrollPixel += src.Pinch() * pinchGestureScale * cam.TrackpadSensitivity * zoomDir * cam.ZoomSensitivity
	}

	// Mouse drag. Orbit and pan are mutually exclusive by construction: each
	// predicate requires the other gesture's modifier to be released.
	mouseDelta := src.MouseDelta()
	if orbitPressed(src, cam) {
		orbit = orbit.Add(mouseDelta.Mul(cam.OrbitSensitivity))
	} else if panPressed(src, cam) {
		pan = pan.Add(mouseDelta.Mul(cam.PanSensitivity))
	}

	// Touch gestures, routed by the control scheme.
	if trackerEntry, ok := components.TouchTracker.First(e.World); ok {
		g := components.TouchTracker.Get(trackerEntry).Gestures()
		switch g.Kind {
		case components.GestureOneFinger:
			if cam.TouchControls == components.OneFingerOrbit {
				orbit = orbit.Add(g.Motion.Mul(cam.OrbitSensitivity))
			} else {
				pan = pan.Add(g.Motion.Mul(cam.PanSensitivity))
			}
		case components.GestureTwoFinger:
			if cam.TouchControls == components.OneFingerOrbit {
				pan = pan.Add(g.Motion.Mul(cam.PanSensitivity))
			} else {
				orbit = orbit.Add(g.Motion.Mul(cam.OrbitSensitivity))
			}
			scrollPixel += g.Pinch * touchPinchScale * zoomDir * cam.ZoomSensitivity
			roll += g.Rotate
		}
	}

	frame.Orbit = orbit
	frame.Pan = pan
	frame.ScrollLine = scrollLine
	frame.ScrollPixel = scrollPixel
	frame.Roll = roll
	frame.OrbitButtonChanged = orbitJustPressed(src, cam) || orbitJustReleased(src, cam)
}

// modifierHeld reports whether an optional modifier key is held. A nil
// modifier counts as held, matching "no modifier required".
func modifierHeld(src InputSource, key *ebiten.Key) bool {
	return key == nil || src.KeyPressed(*key)
}

// modifierReleased reports whether an optional modifier key is up. A nil
// modifier counts as released.
func modifierReleased(src InputSource, key *ebiten.Key) bool {
	return key == nil || !src.KeyPressed(*key)
}

func anyPinchModifierHeld(src InputSource, cam *components.OrbitCameraData) bool {
	held := func(key *ebiten.Key) bool { return key != nil && src.KeyPressed(*key) }
	if held(cam.ModifierOrbit) || held(cam.ModifierPan) {
		return true
	}
	if cam.TrackpadBehavior == components.TrackpadBlenderLike {
		return held(cam.TrackpadPanModifier) || held(cam.TrackpadZoomModifier)
	}
	return false
}

// orbitPressed: orbit button held, orbit modifier satisfied, and the pan
// modifier released. The symmetric pan predicate checks the opposite, which
// makes the two gestures mutually exclusive with orbit checked first.
func orbitPressed(src InputSource, cam *components.OrbitCameraData) bool {
	return modifierHeld(src, cam.ModifierOrbit) &&
		src.MouseButtonPressed(cam.ButtonOrbit) &&
		modifierReleased(src, cam.ModifierPan)
}

func orbitJustPressed(src InputSource, cam *components.OrbitCameraData) bool {
	return modifierHeld(src, cam.ModifierOrbit) &&
		src.MouseButtonJustPressed(cam.ButtonOrbit) &&
		modifierReleased(src, cam.ModifierPan)
}

func orbitJustReleased(src InputSource, cam *components.OrbitCameraData) bool {
	return modifierHeld(src, cam.ModifierOrbit) &&
		src.MouseButtonJustReleased(cam.ButtonOrbit) &&
		modifierReleased(src, cam.ModifierPan)
}

func panPressed(src InputSource, cam *components.OrbitCameraData) bool {
	return modifierHeld(src, cam.ModifierPan) &&
		src.MouseButtonPressed(cam.ButtonPan) &&
		modifierReleased(src, cam.ModifierOrbit)
}

func panJustPressed(src InputSource, cam *components.OrbitCameraData) bool {
	return modifierHeld(src, cam.ModifierPan) &&
		src.MouseButtonJustPressed(cam.ButtonPan) &&
		modifierReleased(src, cam.ModifierOrbit)
}
