package components

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const touchEps = 1e-4

func pts(ps ...TouchPoint) [2]*TouchPoint {
	var out [2]*TouchPoint
	for i := range ps {
		out[i] = &ps[i]
	}
	return out
}

func TestGesturesOneFingerMotion(t *testing.T) {
	tracker := TouchTrackerData{
		Prev: pts(TouchPoint{ID: 1, Position: mgl32.Vec2{100, 100}}),
		Curr: pts(TouchPoint{ID: 1, Position: mgl32.Vec2{110, 95}}),
	}

	g := tracker.Gestures()
	if g.Kind != GestureOneFinger {
		t.Fatalf("Kind = %v, want one finger", g.Kind)
	}
	if g.Motion != (mgl32.Vec2{10, -5}) {
		t.Errorf("Motion = %v, want {10 -5}", g.Motion)
	}
}

func TestGesturesTwoFingerMidpointAndPinch(t *testing.T) {
	tracker := TouchTrackerData{
		Prev: pts(
			TouchPoint{ID: 1, Position: mgl32.Vec2{100, 100}},
			TouchPoint{ID: 2, Position: mgl32.Vec2{200, 100}},
		),
		Curr: pts(
			TouchPoint{ID: 1, Position: mgl32.Vec2{95, 110}},
			TouchPoint{ID: 2, Position: mgl32.Vec2{215, 110}},
		),
	}

	g := tracker.Gestures()
	if g.Kind != GestureTwoFinger {
		t.Fatalf("Kind = %v, want two fingers", g.Kind)
	}
	if g.Motion != (mgl32.Vec2{5, 10}) {
		t.Errorf("Motion = %v, want the midpoint delta {5 10}", g.Motion)
	}
	if math.Abs(float64(g.Pinch-20)) > touchEps {
		t.Errorf("Pinch = %v, want 20", g.Pinch)
	}
	if math.Abs(float64(g.Rotate)) > touchEps {
		t.Errorf("Rotate = %v, want 0 for a pure spread", g.Rotate)
	}
}

func TestGesturesTwoFingerRotation(t *testing.T) {
	// Fingers on a horizontal line rotating 10 degrees counterclockwise
	// around their midpoint.
	angle := 10 * math.Pi / 180
	mid := mgl32.Vec2{150, 100}
	arm := mgl32.Vec2{50, 0}
	rot := mgl32.Vec2{
		arm.X()*float32(math.Cos(angle)) - arm.Y()*float32(math.Sin(angle)),
		arm.X()*float32(math.Sin(angle)) + arm.Y()*float32(math.Cos(angle)),
	}
	tracker := TouchTrackerData{
		Prev: pts(
			TouchPoint{ID: 1, Position: mid.Sub(arm)},
			TouchPoint{ID: 2, Position: mid.Add(arm)},
		),
		Curr: pts(
			TouchPoint{ID: 1, Position: mid.Sub(rot)},
			TouchPoint{ID: 2, Position: mid.Add(rot)},
		),
	}

	g := tracker.Gestures()
	if math.Abs(math.Abs(float64(g.Rotate))-angle) > touchEps {
		t.Errorf("|Rotate| = %v, want %v", math.Abs(float64(g.Rotate)), angle)
	}
	if math.Abs(float64(g.Pinch)) > 1e-3 {
		t.Errorf("Pinch = %v, want 0 for a pure rotation", g.Pinch)
	}
}

func TestGesturesRotationStableAcrossWraparound(t *testing.T) {
	// Fingers nearly vertical, stepping across the straight-up direction. The
	// small physical rotation must not report as a near-full turn.
	step := float32(0.02)
	tracker := TouchTrackerData{
		Prev: pts(
			TouchPoint{ID: 1, Position: mgl32.Vec2{100 - step, 150}},
			TouchPoint{ID: 2, Position: mgl32.Vec2{100 + step, 50}},
		),
		Curr: pts(
			TouchPoint{ID: 1, Position: mgl32.Vec2{100 + step, 150}},
			TouchPoint{ID: 2, Position: mgl32.Vec2{100 - step, 50}},
		),
	}

	g := tracker.Gestures()
	if math.Abs(float64(g.Rotate)) > 0.01 {
		t.Errorf("Rotate = %v, want a tiny delta despite the angle wraparound", g.Rotate)
	}
}

func TestGesturesNoneOnCountChange(t *testing.T) {
	tracker := TouchTrackerData{
		Prev: pts(TouchPoint{ID: 1, Position: mgl32.Vec2{100, 100}}),
		Curr: pts(
			TouchPoint{ID: 1, Position: mgl32.Vec2{100, 100}},
			TouchPoint{ID: 2, Position: mgl32.Vec2{200, 100}},
		),
	}

	if g := tracker.Gestures(); g.Kind != GestureNone {
		t.Errorf("Kind = %v, want none when the touch count changed", g.Kind)
	}
}

func TestGesturesNoneWhenEmpty(t *testing.T) {
	var tracker TouchTrackerData
	if g := tracker.Gestures(); g.Kind != GestureNone {
		t.Errorf("Kind = %v, want none for an empty tracker", g.Kind)
	}
}
