package orbitmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MinZoom is the floor applied to radius and orthographic scale. A zoom of
// exactly zero produces a singular transform, so values are clamped to this
// after limits are applied.
const MinZoom = 0.05

// Basis is the right/up/forward triple the orbit angles are measured against.
// The default basis matches world axes (Y up, camera looking down -Z at
// yaw=0, pitch=0).
type Basis struct {
	Right   mgl32.Vec3
	Up      mgl32.Vec3
	Forward mgl32.Vec3
}

// DefaultBasis returns the world-aligned basis.
func DefaultBasis() Basis {
	return Basis{
		Right:   mgl32.Vec3{1, 0, 0},
		Up:      mgl32.Vec3{0, 1, 0},
		Forward: mgl32.Vec3{0, 0, 1},
	}
}

// ToLocal projects a world-space vector onto the basis axes.
func (b Basis) ToLocal(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.Dot(b.Right), v.Dot(b.Up), v.Dot(b.Forward)}
}

// ToWorld maps a basis-local vector back to world space.
func (b Basis) ToWorld(v mgl32.Vec3) mgl32.Vec3 {
	return b.Right.Mul(v.X()).Add(b.Up.Mul(v.Y())).Add(b.Forward.Mul(v.Z()))
}

// Quat returns the rotation taking the world axes to the basis axes.
func (b Basis) Quat() mgl32.Quat {
	m := mgl32.Mat4{
		b.Right.X(), b.Right.Y(), b.Right.Z(), 0,
		b.Up.X(), b.Up.Y(), b.Up.Z(), 0,
		b.Forward.X(), b.Forward.Y(), b.Forward.Z(), 0,
		0, 0, 0, 1,
	}
	return mgl32.Mat4ToQuat(m)
}

// Derive computes (yaw, pitch, radius) from a camera position and focus point.
// Used once, at initialization, to seed the orbit state from wherever the
// entity was spawned. A coincident position and focus yields radius MinZoom.
func Derive(position, focus mgl32.Vec3, basis Basis) (yaw, pitch, radius float32) {
	v := basis.ToLocal(position.Sub(focus))
	radius = v.Len()
	if radius == 0 {
		radius = MinZoom
	}
	yaw = float32(math.Atan2(float64(v.X()), float64(v.Z())))
	pitch = float32(math.Asin(float64(v.Y() / radius)))
	return yaw, pitch, radius
}

// OrbitTransform builds the camera pose for the given spherical state.
// The rotation is yaw about the basis up axis followed by pitch about the
// local right axis, premultiplied by baseRotation (the roll reference frame).
// The position places the camera at the given distance behind the focus along
// the rotated forward axis. radius must be positive.
func OrbitTransform(yaw, pitch, radius float32, focus mgl32.Vec3, basis Basis, baseRotation mgl32.Quat) (position mgl32.Vec3, rotation mgl32.Quat) {
	rotation = baseRotation.Mul(basis.Quat()).
		Mul(mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0})).
		Mul(mgl32.QuatRotate(-pitch, mgl32.Vec3{1, 0, 0}))
	position = focus.Add(rotation.Rotate(mgl32.Vec3{0, 0, radius}))
	return position, rotation
}
