package systems

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/vantor3d/orbitcam/components"
)

// UpdateActiveCamera decides which camera entity receives raw input,
// supporting multiple viewports. It reacts only to activation edges (a
// button press, scroll, or a fresh touch), hit-testing the pointer position
// against every camera's viewport rect; among overlapping viewports the
// highest draw order wins. A Manual record is left alone so hosts can route
// input themselves. Must run before UpdateInput.
func UpdateActiveCamera(e *ecs.ECS) {
	activeEntry, ok := components.ActiveCamera.First(e.World)
	if !ok {
		return
	}
	active := components.ActiveCamera.Get(activeEntry)
	if active.Manual {
		return
	}

	src := Source
	line, pixel := src.Scroll()
	scrolled := line.Len() > 0 || pixel.Len() > 0
	touches := src.Touches()
	justPressed := src.TouchesJustPressed()
	// Touches activate only when all of them are new, so a drag that began
	// elsewhere cannot steal another viewport's camera.
	touchActivated := justPressed > 0 && justPressed == len(touches)

	pointer := pointerPosition(src, touches, touchActivated)

	var next components.ActiveCameraData
	maxOrder := -1 << 31
	hasInput := false

	components.OrbitCamera.Each(e.World, func(entry *donburi.Entry) {
		cam := components.OrbitCamera.Get(entry)
		if !orbitJustPressed(src, cam) && !panJustPressed(src, cam) && !scrolled && !touchActivated {
			return
		}
		hasInput = true
		if !entry.HasComponent(components.Viewport) {
			return
		}
		vp := components.Viewport.Get(entry)
		if vp.Contains(pointer) && vp.Order >= maxOrder {
			vpSize := vp.Size()
			winSize := src.WindowSize()
			next = components.ActiveCameraData{
				Entity:       entry.Entity(),
				HasEntity:    true,
				ViewportSize: &vpSize,
				WindowSize:   &winSize,
			}
			maxOrder = vp.Order
		}
	})

	if hasInput {
		*active = next
	}
}

// pointerPosition is the first touch on a fresh touch gesture, the cursor
// otherwise.
func pointerPosition(src InputSource, touches []components.TouchPoint, touchActivated bool) mgl32.Vec2 {
	if touchActivated && len(touches) > 0 {
		return touches[0].Position
	}
	return src.CursorPosition()
}
