package orbitmath

import "github.com/go-gl/mathgl/mgl32"

// BoundsShape selects the bounding volume used to restrict the focus point.
type BoundsShape int

const (
	// BoundsSphere restricts the focus to a sphere of Radius around Origin.
	BoundsSphere BoundsShape = iota
	// BoundsCuboid restricts the focus to an axis-aligned box of HalfExtents
	// around Origin.
	BoundsCuboid
)

// FocusBounds restricts where the focus point may move. The zero value is not
// meaningful; construct with SphereBounds or CuboidBounds.
type FocusBounds struct {
	Shape       BoundsShape
	Origin      mgl32.Vec3
	Radius      float32
	HalfExtents mgl32.Vec3
}

// SphereBounds returns bounds restricting the focus to a sphere.
func SphereBounds(origin mgl32.Vec3, radius float32) *FocusBounds {
	return &FocusBounds{Shape: BoundsSphere, Origin: origin, Radius: radius}
}

// CuboidBounds returns bounds restricting the focus to an axis-aligned box.
func CuboidBounds(origin, halfExtents mgl32.Vec3) *FocusBounds {
	return &FocusBounds{Shape: BoundsCuboid, Origin: origin, HalfExtents: halfExtents}
}

// Clamp returns the closest point to p within the bounds. Points already
// inside are returned unchanged.
func (fb *FocusBounds) Clamp(p mgl32.Vec3) mgl32.Vec3 {
	rel := p.Sub(fb.Origin)
	switch fb.Shape {
	case BoundsSphere:
		if l := rel.Len(); l > fb.Radius {
			rel = rel.Mul(fb.Radius / l)
		}
	case BoundsCuboid:
		rel = mgl32.Vec3{
			mgl32.Clamp(rel.X(), -fb.HalfExtents.X(), fb.HalfExtents.X()),
			mgl32.Clamp(rel.Y(), -fb.HalfExtents.Y(), fb.HalfExtents.Y()),
			mgl32.Clamp(rel.Z(), -fb.HalfExtents.Z(), fb.HalfExtents.Z()),
		}
	}
	return fb.Origin.Add(rel)
}
