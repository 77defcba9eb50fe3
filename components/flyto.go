package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlyToData animates a camera's target values along tweens, for scripted
// moves independent of user input. While active it drives TargetYaw,
// TargetPitch, TargetRadius and TargetFocus each tick and sets ForceUpdate;
// the component is removed when every tween has finished. Pair with zero
// smoothness for an exact tween-shaped path.
type FlyToData struct {
	Yaw    *gween.Tween
	Pitch  *gween.Tween
	Radius *gween.Tween
	// Focus is tweened along the straight line FocusFrom->FocusTo by a
	// normalized 0..1 tween.
	Focus     *gween.Tween
	FocusFrom mgl32.Vec3
	FocusTo   mgl32.Vec3
}

var FlyTo = donburi.NewComponentType[FlyToData]()
