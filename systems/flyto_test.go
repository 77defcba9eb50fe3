package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vantor3d/orbitcam/components"
)

func TestFlyToAnimatesTargetsAndDetaches(t *testing.T) {
	e, camEntry := newOrbitWorld(t)
	cam := components.OrbitCamera.Get(camEntry)
	UpdateOrbitCameras(e)

	StartFlyTo(camEntry, 1.0, 0.5, 2.0, mgl32.Vec3{1, 0, 0}, 0.5)
	if !camEntry.HasComponent(components.FlyTo) {
		t.Fatal("StartFlyTo should attach the tween component")
	}

	// Half a second of ticks at the singleton's 1/60 step.
	for i := 0; i < 31; i++ {
		UpdateFlyTo(e)
		UpdateOrbitCameras(e)
	}

	if camEntry.HasComponent(components.FlyTo) {
		t.Error("finished move should detach itself")
	}
	if !near(cam.TargetYaw, 1.0) || !near(cam.TargetPitch, 0.5) || !near(cam.TargetRadius, 2.0) {
		t.Errorf("targets = (%v, %v, %v), want (1, 0.5, 2)",
			cam.TargetYaw, cam.TargetPitch, cam.TargetRadius)
	}
	if !vecNear(cam.TargetFocus, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("TargetFocus = %v, want {1 0 0}", cam.TargetFocus)
	}
	// Zero smoothness: the camera arrived with its targets.
	if !near(*cam.Yaw, 1.0) {
		t.Errorf("yaw = %v, want 1", *cam.Yaw)
	}
}

func TestFlyToRequiresInitializedCamera(t *testing.T) {
	_, camEntry := newOrbitWorld(t)

	StartFlyTo(camEntry, 1, 0, 2, mgl32.Vec3{}, 0.5)

	if camEntry.HasComponent(components.FlyTo) {
		t.Error("an uninitialized camera cannot be flown")
	}
}
