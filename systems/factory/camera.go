package factory

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/vantor3d/orbitcam/archetypes"
	"github.com/vantor3d/orbitcam/components"
	cfg "github.com/vantor3d/orbitcam/config"
)

// CreateCamera spawns a perspective orbit camera at position looking at
// focus, covering the given viewport rect. The spherical state is derived
// from the transform on the first tick.
func CreateCamera(e *ecs.ECS, position, focus mgl32.Vec3, viewport components.ViewportData) *donburi.Entry {
	camera := archetypes.Camera.Spawn(e)

	data := components.NewOrbitCameraData()
	data.Focus = focus
	data.TargetFocus = focus
	components.OrbitCamera.SetValue(camera, data)

	components.Transform.SetValue(camera, components.NewTransformData(position))

	size := viewport.Size()
	aspect := float32(1)
	if size.Y() != 0 {
		aspect = size.X() / size.Y()
	}
	components.Projection.SetValue(camera, components.NewPerspective(
		cfg.Camera.FOV, aspect, cfg.Camera.Near, cfg.Camera.Far))

	components.Viewport.SetValue(camera, viewport)

	return camera
}

// CreateOrthographicCamera spawns an orthographic orbit camera. Zoom input
// drives the projection scale instead of the orbit radius.
func CreateOrthographicCamera(e *ecs.ECS, position, focus mgl32.Vec3, area mgl32.Vec2, viewport components.ViewportData) *donburi.Entry {
	camera := CreateCamera(e, position, focus, viewport)
	components.Projection.SetValue(camera, components.NewOrthographic(
		area, cfg.Camera.Near, cfg.Camera.Far))
	return camera
}

// CreateSingletons spawns the process-wide singleton entity holding the
// active-camera record, the per-tick input frame, touch history, UI focus
// flags and the tick clock.
func CreateSingletons(e *ecs.ECS) *donburi.Entry {
	singletons := archetypes.Singletons.Spawn(e)
	components.Tick.SetValue(singletons, components.TickData{Delta: 1.0 / 60.0})
	return singletons
}
