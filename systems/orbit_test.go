package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/vantor3d/orbitcam/components"
	"github.com/vantor3d/orbitcam/orbitmath"
	"github.com/vantor3d/orbitcam/systems/factory"
)

const orbitEps = 1e-4

func near(a, b float32) bool {
	return float32(math.Abs(float64(a-b))) < orbitEps
}

func vecNear(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < orbitEps
}

// newOrbitWorld spawns the singletons plus one camera at (0,0,5) looking at
// the origin, active over an 800x600 window, with snap smoothing so tests
// see exact values.
func newOrbitWorld(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSingletons(e)

	viewport := components.ViewportData{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{800, 600}}
	camEntry := factory.CreateCamera(e, mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, viewport)

	cam := components.OrbitCamera.Get(camEntry)
	cam.OrbitSmoothness = 0
	cam.PanSmoothness = 0
	cam.ZoomSmoothness = 0

	activeEntry, _ := components.ActiveCamera.First(e.World)
	win := mgl32.Vec2{800, 600}
	vp := mgl32.Vec2{800, 600}
	*components.ActiveCamera.Get(activeEntry) = components.ActiveCameraData{
		Entity:       camEntry.Entity(),
		HasEntity:    true,
		WindowSize:   &win,
		ViewportSize: &vp,
		Manual:       true,
	}

	return e, camEntry
}

func setFrame(e *ecs.ECS, frame components.InputFrameData) {
	frameEntry, _ := components.InputFrame.First(e.World)
	*components.InputFrame.Get(frameEntry) = frame
}

func TestOrbitCameraLazyInit(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	cam := components.OrbitCamera.Get(camEntry)

	if cam.Initialized {
		t.Fatal("camera should not be initialized before the first tick")
	}

	UpdateOrbitCameras(e)

	if !cam.Initialized {
		t.Fatal("camera should be initialized after the first tick")
	}
	if cam.Yaw == nil || cam.Pitch == nil || cam.Radius == nil {
		t.Fatal("spherical state should be populated")
	}
	if !near(*cam.Yaw, 0) || !near(*cam.Pitch, 0) || !near(*cam.Radius, 5) {
		t.Errorf("derived state = (%v, %v, %v), want (0, 0, 5)", *cam.Yaw, *cam.Pitch, *cam.Radius)
	}

	tr := components.Transform.Get(camEntry)
	if !vecNear(tr.Position, mgl32.Vec3{0, 0, 5}) {
		t.Errorf("init should not move the camera, got %v", tr.Position)
	}
}

func TestOrbitCameraLazyInitRespectsPresetAngles(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	cam := components.OrbitCamera.Get(camEntry)
	yaw := float32(1.5)
	cam.Yaw = &yaw

	UpdateOrbitCameras(e)

	if !near(*cam.Yaw, 1.5) {
		t.Errorf("preset yaw should win over the derived one, got %v", *cam.Yaw)
	}
	if !near(cam.TargetYaw, 1.5) {
		t.Errorf("target yaw should match the preset, got %v", cam.TargetYaw)
	}
}

func TestOrbitDragMapsWindowFractionToAngle(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	cam := components.OrbitCamera.Get(camEntry)
	UpdateOrbitCameras(e)

	// A quarter of the window width is a quarter turn.
	setFrame(e, components.InputFrameData{Orbit: mgl32.Vec2{200, 0}})
	UpdateOrbitCameras(e)

	want := float32(-math.Pi / 2)
	if !near(cam.TargetYaw, want) {
		t.Errorf("TargetYaw = %v, want %v", cam.TargetYaw, want)
	}
	if !near(*cam.Yaw, want) {
		t.Errorf("yaw should snap with zero smoothness, got %v", *cam.Yaw)
	}

	// The transform follows: the camera stays on the radius-5 sphere.
	tr := components.Transform.Get(camEntry)
	if !near(tr.Position.Len(), 5) {
		t.Errorf("camera left the orbit sphere: %v", tr.Position)
	}
}

func TestOrbitDragPitch(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	cam := components.OrbitCamera.Get(camEntry)
	UpdateOrbitCameras(e)

	setFrame(e, components.InputFrameData{Orbit: mgl32.Vec2{0, 150}})
	UpdateOrbitCameras(e)

	want := float32(150.0 / 600.0 * math.Pi)
	if !near(cam.TargetPitch, want) {
		t.Errorf("TargetPitch = %v, want %v", cam.TargetPitch, want)
	}
	// Positive pitch raises the camera above the focus.
	tr := components.Transform.Get(camEntry)
	if tr.Position.Y() <= 0 {
		t.Errorf("positive pitch should lift the camera, got %v", tr.Position)
	}
}

func TestZoomIsProportionalToDistance(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	cam := components.OrbitCamera.Get(camEntry)
	UpdateOrbitCameras(e)

	setFrame(e, components.InputFrameData{ScrollLine: 1})
	UpdateOrbitCameras(e)

	if !near(cam.TargetRadius, 4) {
		t.Errorf("TargetRadius = %v, want 4 (20%% of 5)", cam.TargetRadius)
	}
	if !near(*cam.Radius, 4) {
		t.Errorf("radius should snap with zero smoothness, got %v", *cam.Radius)
	}
}

func TestZoomNeverReachesZero(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	cam := components.OrbitCamera.Get(camEntry)
	UpdateOrbitCameras(e)

	setFrame(e, components.InputFrameData{ScrollLine: 100})
	UpdateOrbitCameras(e)

	if cam.TargetRadius < orbitmath.MinZoom {
		t.Errorf("TargetRadius = %v, below the zoom floor", cam.TargetRadius)
	}
	if !near(cam.TargetRadius, orbitmath.MinZoom) {
		t.Errorf("TargetRadius = %v, want the floor %v", cam.TargetRadius, orbitmath.MinZoom)
	}
}

func TestPixelScrollSkipsSmoothing(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	cam := components.OrbitCamera.Get(camEntry)
	cam.ZoomSmoothness = 0.9
	UpdateOrbitCameras(e)

	setFrame(e, components.InputFrameData{ScrollPixel: 1})
	UpdateOrbitCameras(e)

	// Both target and current moved by the full pixel delta despite the heavy
	// smoothing (the current value then lerps a little further).
	if *cam.Radius > 4 {
		t.Errorf("pixel scroll should bypass smoothing, radius = %v", *cam.Radius)
	}
}

func TestCancellingScrollDeltasDoNothing(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	cam := components.OrbitCamera.Get(camEntry)
	UpdateOrbitCameras(e)

	setFrame(e, components.InputFrameData{ScrollLine: 1, ScrollPixel: -1})
	UpdateOrbitCameras(e)

	if !near(cam.TargetRadius, 5) || !near(*cam.Radius, 5) {
		t.Errorf("cancelling scroll deltas moved zoom, target = %v current = %v",
			cam.TargetRadius, *cam.Radius)
	}
}

func TestPitchClampedWithoutUpsideDown(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	cam := components.OrbitCamera.Get(camEntry)
	UpdateOrbitCameras(e)

	setFrame(e, components.InputFrameData{Orbit: mgl32.Vec2{0, 600}})
	UpdateOrbitCameras(e)

	if cam.TargetPitch > float32(math.Pi/2)+orbitEps {
		t.Errorf("TargetPitch = %v, want clamp at pi/2", cam.TargetPitch)
	}
}

func TestPitchUnclampedWithUpsideDown(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	cam := components.OrbitCamera.Get(camEntry)
	cam.AllowUpsideDown = true
	UpdateOrbitCameras(e)

	setFrame(e, components.InputFrameData{Orbit: mgl32.Vec2{0, 600}})
	UpdateOrbitCameras(e)

	if cam.TargetPitch < float32(math.Pi)-orbitEps {
		t.Errorf("TargetPitch = %v, want a full half-turn", cam.TargetPitch)
	}
}

func TestUpsideDownReversesYawDirection(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	cam := components.OrbitCamera.Get(camEntry)
	cam.AllowUpsideDown = true
	UpdateOrbitCameras(e)

	// Flip the camera over the top.
	cam.TargetPitch = math.Pi
	UpdateOrbitCameras(e)

	// The flip is noticed on the next orbit press edge, then the same
	// rightward drag moves yaw the other way.
	setFrame(e, components.InputFrameData{Orbit: mgl32.Vec2{200, 0}, OrbitButtonChanged: true})
	UpdateOrbitCameras(e)

	if !cam.IsUpsideDown {
		t.Fatal("camera should report upside-down after pitching past the pole")
	}
	want := float32(math.Pi / 2)
	if !near(cam.TargetYaw, want) {
		t.Errorf("TargetYaw = %v, want %v (reversed)", cam.TargetYaw, want)
	}
}

func TestUpsideDownWaitsForOrbitButtonEdge(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	cam := components.OrbitCamera.Get(camEntry)
	cam.AllowUpsideDown = true
	UpdateOrbitCameras(e)

	// Flip the camera over the top.
	cam.TargetPitch = math.Pi
	UpdateOrbitCameras(e)

	// Mid-drag there is no press edge, so the flip goes unnoticed and the
	// drag keeps its direction.
	setFrame(e, components.InputFrameData{Orbit: mgl32.Vec2{200, 0}})
	UpdateOrbitCameras(e)

	if cam.IsUpsideDown {
		t.Fatal("upside-down state changed without an orbit press edge")
	}
	want := float32(-math.Pi / 2)
	if !near(cam.TargetYaw, want) {
		t.Errorf("TargetYaw = %v, want %v (unreversed)", cam.TargetYaw, want)
	}
}

func TestDisabledCameraIgnoresInputButKeepsSmoothing(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	cam := components.OrbitCamera.Get(camEntry)
	UpdateOrbitCameras(e)

	cam.Enabled = false
	setFrame(e, components.InputFrameData{ScrollLine: 1})
	cam.TargetYaw = 1
	UpdateOrbitCameras(e)

	if !near(cam.TargetRadius, 5) {
		t.Errorf("disabled camera consumed scroll input, TargetRadius = %v", cam.TargetRadius)
	}
	if !near(*cam.Yaw, 1) {
		t.Errorf("disabled camera should still move toward its target, yaw = %v", *cam.Yaw)
	}
}

func TestInactiveCameraIgnoresInput(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	cam := components.OrbitCamera.Get(camEntry)
	UpdateOrbitCameras(e)

	activeEntry, _ := components.ActiveCamera.First(e.World)
	components.ActiveCamera.Get(activeEntry).HasEntity = false

	setFrame(e, components.InputFrameData{ScrollLine: 1})
	UpdateOrbitCameras(e)

	if !near(cam.TargetRadius, 5) {
		t.Errorf("inactive camera consumed scroll input, TargetRadius = %v", cam.TargetRadius)
	}
}

func TestZeroWindowSizeSkipsOrbit(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	cam := components.OrbitCamera.Get(camEntry)
	UpdateOrbitCameras(e)

	activeEntry, _ := components.ActiveCamera.First(e.World)
	zero := mgl32.Vec2{}
	components.ActiveCamera.Get(activeEntry).WindowSize = &zero

	setFrame(e, components.InputFrameData{Orbit: mgl32.Vec2{200, 0}})
	UpdateOrbitCameras(e)

	if !near(cam.TargetYaw, 0) {
		t.Errorf("orbit should be skipped with a zero window, TargetYaw = %v", cam.TargetYaw)
	}
}

func TestForceUpdateIsOneShot(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	cam := components.OrbitCamera.Get(camEntry)
	UpdateOrbitCameras(e)

	cam.ForceUpdate = true
	UpdateOrbitCameras(e)

	if cam.ForceUpdate {
		t.Error("ForceUpdate should clear after being honored")
	}
}

func TestPanMovesFocusInCameraPlane(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	cam := components.OrbitCamera.Get(camEntry)
	UpdateOrbitCameras(e)

	setFrame(e, components.InputFrameData{Pan: mgl32.Vec2{100, 0}})
	UpdateOrbitCameras(e)

	// Dragging right moves the focus left along the camera's right axis.
	if cam.TargetFocus.X() >= 0 {
		t.Errorf("rightward pan should move focus toward -X, got %v", cam.TargetFocus)
	}
	if !near(cam.TargetFocus.Y(), 0) || !near(cam.TargetFocus.Z(), 0) {
		t.Errorf("pan leaked off the camera plane: %v", cam.TargetFocus)
	}
	// The camera translates with its focus.
	tr := components.Transform.Get(camEntry)
	if !near(tr.Position.X(), cam.Focus.X()) {
		t.Errorf("camera did not follow the focus: pos %v focus %v", tr.Position, cam.Focus)
	}
}

func TestFocusBoundsClampTarget(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	cam := components.OrbitCamera.Get(camEntry)
	cam.FocusBounds = orbitmath.SphereBounds(mgl32.Vec3{}, 1)
	UpdateOrbitCameras(e)

	cam.TargetFocus = mgl32.Vec3{10, 0, 0}
	UpdateOrbitCameras(e)

	if !vecNear(cam.TargetFocus, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("TargetFocus = %v, want clamped to the unit sphere", cam.TargetFocus)
	}
}

func TestYawLimitsApplyToTarget(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	cam := components.OrbitCamera.Get(camEntry)
	upper := float32(0.5)
	lower := float32(-0.5)
	cam.YawUpperLimit = &upper
	cam.YawLowerLimit = &lower
	UpdateOrbitCameras(e)

	setFrame(e, components.InputFrameData{Orbit: mgl32.Vec2{-400, 0}})
	UpdateOrbitCameras(e)

	if !near(cam.TargetYaw, 0.5) {
		t.Errorf("TargetYaw = %v, want the 0.5 limit", cam.TargetYaw)
	}
}

func TestOrthographicZoomDrivesProjectionScale(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSingletons(e)
	viewport := components.ViewportData{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{800, 600}}
	camEntry := factory.CreateOrthographicCamera(e, mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec2{8, 6}, viewport)

	cam := components.OrbitCamera.Get(camEntry)
	cam.ZoomSmoothness = 0
	activeEntry, _ := components.ActiveCamera.First(e.World)
	win := mgl32.Vec2{800, 600}
	*components.ActiveCamera.Get(activeEntry) = components.ActiveCameraData{
		Entity:       camEntry.Entity(),
		HasEntity:    true,
		WindowSize:   &win,
		ViewportSize: &win,
		Manual:       true,
	}

	UpdateOrbitCameras(e)
	proj := components.Projection.Get(camEntry)
	if cam.Scale == nil || !near(*cam.Scale, 1) {
		t.Fatalf("ortho init should seed scale from the projection")
	}

	setFrame(e, components.InputFrameData{ScrollLine: 1})
	UpdateOrbitCameras(e)

	if !near(cam.TargetScale, 0.8) {
		t.Errorf("TargetScale = %v, want 0.8", cam.TargetScale)
	}
	if !near(proj.Scale, 0.8) {
		t.Errorf("projection scale = %v, want 0.8", proj.Scale)
	}
	// Radius is untouched; ortho zoom lives entirely in the scale.
	if !near(cam.TargetRadius, 5) {
		t.Errorf("ortho zoom should not touch the radius, got %v", cam.TargetRadius)
	}
}

func TestRollTiltsReferenceFrame(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	UpdateOrbitCameras(e)

	setFrame(e, components.InputFrameData{Roll: float32(math.Pi / 4)})
	UpdateOrbitCameras(e)

	tr := components.Transform.Get(camEntry)
	up := tr.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
	if near(up.X(), 0) {
		t.Errorf("roll should tilt the camera's up vector, got %v", up)
	}
	if !near(tr.Position.Len(), 5) {
		t.Errorf("roll must not change the orbit radius, position %v", tr.Position)
	}
}

func TestIdleCameraSkipsRecompute(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	UpdateOrbitCameras(e)

	tr := components.Transform.Get(camEntry)
	before := *tr
	// Steady state: no input, at target.
	UpdateOrbitCameras(e)
	UpdateOrbitCameras(e)

	if *tr != before {
		t.Errorf("idle camera transform changed: %+v -> %+v", before, *tr)
	}
}
