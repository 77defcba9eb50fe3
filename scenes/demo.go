package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/vantor3d/orbitcam/components"
	cfg "github.com/vantor3d/orbitcam/config"
	"github.com/vantor3d/orbitcam/systems"
	"github.com/vantor3d/orbitcam/systems/factory"
	"github.com/vantor3d/orbitcam/ui"
)

// DemoScene is a reference scene: one orbit camera around a wireframe cube,
// with a controls panel overlay.
type DemoScene struct {
	ecs      *ecs.ECS
	controls *ui.ControlsUI
	once     sync.Once
}

func NewDemoScene() *DemoScene {
	return &DemoScene{}
}

func (ds *DemoScene) Update() {
	ds.once.Do(ds.configure)
	if ds.controls != nil {
		ds.controls.Update()
	}
	ds.ecs.Update()
}

func (ds *DemoScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
	if ds.controls != nil {
		ds.controls.UI.Draw(screen)
	}
}

func (ds *DemoScene) configure() {
	world := ecs.NewECS(donburi.NewWorld())

	world.AddSystem(systems.UpdateTick)
	world.AddSystem(systems.UpdateUIFocus)
	world.AddSystem(systems.UpdateActiveCamera)
	world.AddSystem(systems.UpdateTouchTracker)
	world.AddSystem(systems.UpdateInput)
	world.AddSystem(systems.UpdateFlyTo)
	world.AddSystem(systems.UpdateOrbitCameras)

	world.AddRenderer(cfg.Default, systems.DrawScene)
	world.AddRenderer(cfg.Default, systems.DrawHUD)

	factory.CreateSingletons(world)

	viewport := components.ViewportData{
		Min: mgl32.Vec2{0, 0},
		Max: mgl32.Vec2{float32(cfg.C.Width), float32(cfg.C.Height)},
	}
	camEntry := factory.CreateCamera(world, mgl32.Vec3(cfg.Camera.StartOffset), mgl32.Vec3{}, viewport)

	cam := components.OrbitCamera.Get(camEntry)
	if saved, err := systems.LoadControls(); err == nil && saved != nil {
		systems.ApplyControls(cam, saved)
	}

	ds.controls = ui.NewControlsUI(cam, func() {
		if err := systems.SaveControls(systems.ControlsFromCamera(cam)); err != nil {
			log.Printf("Warning: Could not save controls: %v", err)
		}
	})
	systems.RegisterUI(ds.controls.UI)

	ds.ecs = world
}
