package systems

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/vantor3d/orbitcam/components"
)

// StartFlyTo attaches a scripted camera move to an entity, tweening from the
// camera's current state to the given pose over duration seconds. Passing
// the current value for a field leaves that field alone.
func StartFlyTo(entry *donburi.Entry, yaw, pitch, radius float32, focus mgl32.Vec3, duration float32) {
	cam := components.OrbitCamera.Get(entry)
	if !cam.Initialized {
		return
	}

	fly := components.FlyToData{
		Yaw:       gween.New(*cam.Yaw, yaw, duration, ease.InOutQuad),
		Pitch:     gween.New(*cam.Pitch, pitch, duration, ease.InOutQuad),
		Radius:    gween.New(*cam.Radius, radius, duration, ease.InOutQuad),
		Focus:     gween.New(0, 1, duration, ease.InOutQuad),
		FocusFrom: cam.Focus,
		FocusTo:   focus,
	}
	if !entry.HasComponent(components.FlyTo) {
		entry.AddComponent(components.FlyTo)
	}
	components.FlyTo.SetValue(entry, fly)
}

// UpdateFlyTo advances active camera tweens and writes their values into the
// camera targets, forcing an update so the move plays even with no user
// input. Finished moves detach themselves. Must run before
// UpdateOrbitCameras.
func UpdateFlyTo(e *ecs.ECS) {
	dt := float32(1.0 / 60.0)
	if tickEntry, ok := components.Tick.First(e.World); ok {
		dt = components.Tick.Get(tickEntry).Delta
	}

	components.FlyTo.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.OrbitCamera) {
			entry.RemoveComponent(components.FlyTo)
			return
		}
		fly := components.FlyTo.Get(entry)
		cam := components.OrbitCamera.Get(entry)

		done := true
		if fly.Yaw != nil {
			v, finished := fly.Yaw.Update(dt)
			cam.TargetYaw = v
			done = done && finished
		}
		if fly.Pitch != nil {
			v, finished := fly.Pitch.Update(dt)
			cam.TargetPitch = v
			done = done && finished
		}
		if fly.Radius != nil {
			v, finished := fly.Radius.Update(dt)
			cam.TargetRadius = v
			done = done && finished
		}
		if fly.Focus != nil {
			t, finished := fly.Focus.Update(dt)
			cam.TargetFocus = fly.FocusFrom.Add(fly.FocusTo.Sub(fly.FocusFrom).Mul(t))
			done = done && finished
		}
		cam.ForceUpdate = true

		if done {
			entry.RemoveComponent(components.FlyTo)
		}
	})
}
