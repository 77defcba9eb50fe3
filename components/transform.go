package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// TransformData is the camera entity's world pose. The orbit system is the
// only writer after initialization; the initial value seeds the spherical
// state on the first tick.
type TransformData struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

var Transform = donburi.NewComponentType[TransformData]()

// NewTransformData returns a pose at the given position with no rotation.
func NewTransformData(position mgl32.Vec3) TransformData {
	return TransformData{Position: position, Rotation: mgl32.QuatIdent()}
}

// ViewMatrix returns the world-to-camera matrix for this pose.
func (t *TransformData) ViewMatrix() mgl32.Mat4 {
	return t.Rotation.Inverse().Mat4().Mul4(mgl32.Translate3D(
		-t.Position.X(), -t.Position.Y(), -t.Position.Z()))
}
