package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/vantor3d/orbitcam/components"
	"github.com/vantor3d/orbitcam/orbitmath"
)

// zoomStep scales how much one scroll unit changes the zoom target. Applied
// multiplicatively against the current target, so zoom speed stays
// proportional to distance and feels the same near and far.
const zoomStep = 0.2

// UpdateOrbitCameras runs the per-tick orbit state machine for every camera
// entity: seed spherical state on the first tick, fold the aggregated input
// deltas into the target values, constrain them, smooth current toward
// target and write the resulting transform and projection back. Entities
// that are idle (no input, at target, no ForceUpdate) cost nothing.
// Must run after UpdateInput.
func UpdateOrbitCameras(e *ecs.ECS) {
	dt := float32(1.0 / 60.0)
	if tickEntry, ok := components.Tick.First(e.World); ok {
		dt = components.Tick.Get(tickEntry).Delta
	}

	var active *components.ActiveCameraData
	if activeEntry, ok := components.ActiveCamera.First(e.World); ok {
		active = components.ActiveCamera.Get(activeEntry)
	}

	var frame components.InputFrameData
	if frameEntry, ok := components.InputFrame.First(e.World); ok {
		frame = *components.InputFrame.Get(frameEntry)
	}

	components.OrbitCamera.Each(e.World, func(entry *donburi.Entry) {
		updateOrbitCamera(entry, active, frame, dt)
	})
}

func updateOrbitCamera(entry *donburi.Entry, active *components.ActiveCameraData, frame components.InputFrameData, dt float32) {
	cam := components.OrbitCamera.Get(entry)
	transform := components.Transform.Get(entry)
	projection := components.Projection.Get(entry)

	clampYaw := func(v float32) float32 {
		return orbitmath.ClampOptional(v, cam.YawLowerLimit, cam.YawUpperLimit)
	}
	clampPitch := func(v float32) float32 {
		return orbitmath.ClampOptional(v, cam.PitchLowerLimit, cam.PitchUpperLimit)
	}
	clampZoom := func(v float32) float32 {
		v = orbitmath.ClampOptional(v, cam.ZoomLowerLimit, cam.ZoomUpperLimit)
		if v < orbitmath.MinZoom {
			v = orbitmath.MinZoom
		}
		return v
	}

	// 1 - Lazy init: derive the spherical state from wherever the entity was
	// spawned. Runs exactly once.
	if !cam.Initialized {
		yaw, pitch, radius := orbitmath.Derive(transform.Position, cam.Focus, cam.Axis)
		if cam.Yaw != nil {
			yaw = *cam.Yaw
		}
		if cam.Pitch != nil {
			pitch = *cam.Pitch
		}
		if cam.Radius != nil {
			radius = *cam.Radius
		}
		yaw = clampYaw(yaw)
		pitch = clampPitch(pitch)
		radius = clampZoom(radius)

		cam.Yaw = &yaw
		cam.Pitch = &pitch
		cam.Radius = &radius
		cam.TargetYaw = yaw
		cam.TargetPitch = pitch
		cam.TargetRadius = radius
		cam.TargetFocus = cam.Focus

		if projection.Kind == components.Orthographic {
			if cam.Scale == nil {
				scale := projection.Scale
				cam.Scale = &scale
			}
			*cam.Scale = clampZoom(*cam.Scale)
			projection.Scale = *cam.Scale
			cam.TargetScale = *cam.Scale
		}

		transform.Position, transform.Rotation = orbitmath.OrbitTransform(
			yaw, pitch, projection.EyeDistance(radius), cam.Focus, cam.Axis, cam.BaseRotation)

		cam.Initialized = true
	}

	// 2 - Gather this tick's deltas. Inactive or disabled cameras see zero
	// input but keep ticking: they may still be lerping toward targets.
	var orbit, pan mgl32.Vec2
	var scrollLine, scrollPixel, roll float32
	orbitButtonChanged := false
	if cam.Enabled && active != nil && active.IsActive(entry.Entity()) {
		orbit = frame.Orbit
		pan = frame.Pan
		scrollLine = frame.ScrollLine
		scrollPixel = frame.ScrollPixel
		roll = frame.Roll
		orbitButtonChanged = frame.OrbitButtonChanged
	}

	// 3 - Upside-down detection, only on orbit press/release edges so the
	// yaw direction cannot reverse mid-drag.
	if orbitButtonChanged {
		up := transform.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
		cam.IsUpsideDown = up.Dot(cam.Axis.Up) < 0
	}

	// 4 - Integrate deltas into the target values.
	hasMoved := false

	if orbit.Len() > 0 && sizeValid(active, windowSize) {
		win := *active.WindowSize
		dyaw := orbit.X() / win.X() * 2 * math.Pi
		if cam.IsUpsideDown {
			dyaw = -dyaw
		}
		dpitch := orbit.Y() / win.Y() * math.Pi
		cam.TargetYaw -= dyaw
		cam.TargetPitch += dpitch
		hasMoved = true
	}

	if pan.Len() > 0 && sizeValid(active, viewportSize) {
		vp := *active.ViewportSize
		multiplier := float32(1)
		if projection.Kind == components.Perspective {
			// Normalize pixels into view angle, then scale by distance so a
			// drag sweeps the same screen fraction at any zoom.
			pan = mgl32.Vec2{
				pan.X() * projection.FOV * projection.AspectRatio / vp.X(),
				pan.Y() * projection.FOV / vp.Y(),
			}
			if cam.Radius != nil {
				multiplier = *cam.Radius
			}
		} else {
			area := projection.Area.Mul(projection.Scale)
			pan = mgl32.Vec2{
				pan.X() * area.X() / vp.X(),
				pan.Y() * area.Y() / vp.Y(),
			}
		}
		right := transform.Rotation.Rotate(mgl32.Vec3{1, 0, 0}).Mul(-pan.X())
		up := transform.Rotation.Rotate(mgl32.Vec3{0, 1, 0}).Mul(pan.Y())
		cam.TargetFocus = cam.TargetFocus.Add(right.Add(up).Mul(multiplier))
		hasMoved = true
	}

	if scrollLine+scrollPixel != 0 {
		target := &cam.TargetRadius
		value := cam.Radius
		if projection.Kind == components.Orthographic {
			target = &cam.TargetScale
			value = cam.Scale
		}

		lineDelta := -scrollLine * *target * zoomStep
		pixelDelta := -scrollPixel * *target * zoomStep
		*target += lineDelta + pixelDelta

		// Pixel scroll is already smooth; apply it to the current value
		// directly instead of waiting for the lerp.
		if value != nil {
			*value = clampZoom(*value + pixelDelta)
		}
		hasMoved = true
	}

	if roll != 0 {
		// Roll is immediate, not smoothed: it re-aims the reference frame
		// the yaw/pitch angles are measured in.
		forward := transform.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
		cam.BaseRotation = mgl32.QuatRotate(roll, forward).Mul(cam.BaseRotation)
		hasMoved = true
	}

	// 5 - Constrain the targets.
	cam.TargetYaw = clampYaw(cam.TargetYaw)
	cam.TargetPitch = clampPitch(cam.TargetPitch)
	cam.TargetRadius = clampZoom(cam.TargetRadius)
	cam.TargetScale = clampZoom(cam.TargetScale)

	if !cam.AllowUpsideDown {
		cam.TargetPitch = mgl32.Clamp(cam.TargetPitch, -math.Pi/2, math.Pi/2)
	}
	if cam.FocusBounds != nil {
		cam.TargetFocus = cam.FocusBounds.Clamp(cam.TargetFocus)
	}

	// 6 - Advance toward the targets and commit. Skipped entirely when the
	// camera is idle at its targets.
	if cam.Yaw == nil || cam.Pitch == nil || cam.Radius == nil {
		return
	}
	scaleSettled := cam.Scale != nil && *cam.Scale == cam.TargetScale
	if !hasMoved &&
		cam.TargetYaw == *cam.Yaw &&
		cam.TargetPitch == *cam.Pitch &&
		cam.TargetRadius == *cam.Radius &&
		cam.TargetFocus == cam.Focus &&
		scaleSettled &&
		!cam.ForceUpdate {
		return
	}

	newYaw := orbitmath.LerpAndSnap(*cam.Yaw, cam.TargetYaw, cam.OrbitSmoothness, dt)
	newPitch := orbitmath.LerpAndSnap(*cam.Pitch, cam.TargetPitch, cam.OrbitSmoothness, dt)
	newRadius := orbitmath.LerpAndSnap(*cam.Radius, cam.TargetRadius, cam.ZoomSmoothness, dt)
	scaleCurrent := cam.TargetScale
	if cam.Scale != nil {
		scaleCurrent = *cam.Scale
	}
	newScale := orbitmath.LerpAndSnap(scaleCurrent, cam.TargetScale, cam.ZoomSmoothness, dt)
	newFocus := orbitmath.LerpAndSnapVec3(cam.Focus, cam.TargetFocus, cam.PanSmoothness, dt)

	if projection.Kind == components.Orthographic {
		projection.Scale = newScale
	}

	transform.Position, transform.Rotation = orbitmath.OrbitTransform(
		newYaw, newPitch, projection.EyeDistance(newRadius), newFocus, cam.Axis, cam.BaseRotation)

	*cam.Yaw = newYaw
	*cam.Pitch = newPitch
	*cam.Radius = newRadius
	if cam.Scale == nil {
		cam.Scale = &newScale
	} else {
		*cam.Scale = newScale
	}
	cam.Focus = newFocus
	cam.ForceUpdate = false
}

type sizeKind int

const (
	windowSize sizeKind = iota
	viewportSize
)

// sizeValid guards the pixel-to-angle and pixel-to-world normalizations: a
// missing or degenerate size means "no normalization possible this tick",
// so the integration step is skipped rather than dividing by zero.
func sizeValid(active *components.ActiveCameraData, kind sizeKind) bool {
	if active == nil {
		return false
	}
	size := active.WindowSize
	if kind == viewportSize {
		size = active.ViewportSize
	}
	return size != nil && size.X() > 0 && size.Y() > 0
}
