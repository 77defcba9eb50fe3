package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/vantor3d/orbitcam/components"
	cfg "github.com/vantor3d/orbitcam/config"
	"github.com/vantor3d/orbitcam/tags"
)

var (
	Camera = newArchetype(
		tags.Camera,
		components.OrbitCamera,
		components.Transform,
		components.Projection,
		components.Viewport,
	)
	Singletons = newArchetype(
		tags.Singleton,
		components.ActiveCamera,
		components.InputFrame,
		components.TouchTracker,
		components.UIFocus,
		components.Tick,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
