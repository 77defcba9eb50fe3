package orbitmath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCuboidBoundsClamp(t *testing.T) {
	// Unit cuboid at the origin: (5,5,5) clamps to the nearest corner.
	fb := CuboidBounds(mgl32.Vec3{}, mgl32.Vec3{0.5, 0.5, 0.5})
	got := fb.Clamp(mgl32.Vec3{5, 5, 5})
	if !vecApprox(got, mgl32.Vec3{0.5, 0.5, 0.5}, 1e-6) {
		t.Errorf("got %v, want (0.5,0.5,0.5)", got)
	}

	inside := mgl32.Vec3{0.1, -0.2, 0.3}
	if got := fb.Clamp(inside); got != inside {
		t.Errorf("inside point moved: %v -> %v", inside, got)
	}
}

func TestCuboidBoundsOffsetOrigin(t *testing.T) {
	fb := CuboidBounds(mgl32.Vec3{10, 0, 0}, mgl32.Vec3{1, 1, 1})
	got := fb.Clamp(mgl32.Vec3{20, 0, 0})
	if !vecApprox(got, mgl32.Vec3{11, 0, 0}, 1e-6) {
		t.Errorf("got %v, want (11,0,0)", got)
	}
}

func TestSphereBoundsClamp(t *testing.T) {
	fb := SphereBounds(mgl32.Vec3{}, 2)
	got := fb.Clamp(mgl32.Vec3{10, 0, 0})
	if !vecApprox(got, mgl32.Vec3{2, 0, 0}, 1e-5) {
		t.Errorf("got %v, want (2,0,0)", got)
	}

	inside := mgl32.Vec3{0.5, 0.5, 0}
	if got := fb.Clamp(inside); got != inside {
		t.Errorf("inside point moved: %v -> %v", inside, got)
	}
}

func TestBoundsClampIdempotent(t *testing.T) {
	bounds := []*FocusBounds{
		SphereBounds(mgl32.Vec3{1, 2, 3}, 1.5),
		CuboidBounds(mgl32.Vec3{-1, 0, 1}, mgl32.Vec3{0.5, 2, 1}),
	}
	points := []mgl32.Vec3{{5, 5, 5}, {-3, 0, 0}, {1, 2, 3}, {0, -10, 4}}
	for _, fb := range bounds {
		for _, p := range points {
			once := fb.Clamp(p)
			if twice := fb.Clamp(once); !vecApprox(twice, once, 1e-6) {
				t.Errorf("not idempotent for %v: %v then %v", p, once, twice)
			}
		}
	}
}
