package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// ViewportData describes the screen rect a camera renders to, used by
// active-viewport selection to decide which camera receives pointer input.
type ViewportData struct {
	Min   mgl32.Vec2 // top-left, window coordinates
	Max   mgl32.Vec2 // bottom-right, window coordinates
	Order int        // draw order; the highest overlapping viewport wins
}

var Viewport = donburi.NewComponentType[ViewportData]()

// Contains reports whether a window-space point lies inside the viewport.
func (v *ViewportData) Contains(p mgl32.Vec2) bool {
	return p.X() > v.Min.X() && p.X() < v.Max.X() &&
		p.Y() > v.Min.Y() && p.Y() < v.Max.Y()
}

// Size returns the viewport dimensions.
func (v *ViewportData) Size() mgl32.Vec2 {
	return v.Max.Sub(v.Min)
}
