package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"

	"github.com/vantor3d/orbitcam/components"
	"github.com/vantor3d/orbitcam/fonts"
)

var hudColor = color.RGBA{200, 200, 210, 255}

// DrawHUD prints the active camera's spherical state in the corner. Handy
// while tuning sensitivities and limits.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
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
	if !cam.Initialized {
		return
	}

	face := fonts.HudSmall.Get()
	lines := []string{
		fmt.Sprintf("yaw %.2f  pitch %.2f  radius %.2f", *cam.Yaw, *cam.Pitch, *cam.Radius),
		fmt.Sprintf("focus %.2f %.2f %.2f", cam.Focus.X(), cam.Focus.Y(), cam.Focus.Z()),
	}
	y := screen.Bounds().Dy() - 10*len(lines) - 6
	for i, line := range lines {
		text.Draw(screen, line, face, 8, y+i*12, hudColor)
	}
}
