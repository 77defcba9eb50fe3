package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// ActiveCameraData is the process-wide record of which camera entity should
// receive raw pointer/touch input this tick, along with the window and
// viewport dimensions used to normalize mouse motion. Recomputed every tick
// by the viewport-selection system unless Manual is set, in which case the
// host owns it (e.g. a camera rendering to a texture).
type ActiveCameraData struct {
	Entity       donburi.Entity
	HasEntity    bool
	ViewportSize *mgl32.Vec2 // scales panning; nil disables pan integration
	WindowSize   *mgl32.Vec2 // scales orbiting; nil disables orbit integration
	Manual       bool
}

var ActiveCamera = donburi.NewComponentType[ActiveCameraData]()

// IsActive reports whether the given entity is the active camera.
func (a *ActiveCameraData) IsActive(entity donburi.Entity) bool {
	return a.HasEntity && a.Entity == entity
}
