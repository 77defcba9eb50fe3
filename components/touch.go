package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// TouchPoint is one touch's position snapshot for a single frame.
type TouchPoint struct {
	ID       int64
	Position mgl32.Vec2
}

// TouchGestureKind discriminates the gesture derived for this frame.
type TouchGestureKind int

const (
	GestureNone TouchGestureKind = iota
	GestureOneFinger
	GestureTwoFinger
)

// TouchGestures is the per-frame gesture data derived from touch snapshots.
type TouchGestures struct {
	Kind   TouchGestureKind
	Motion mgl32.Vec2 // one finger: touch delta; two fingers: midpoint delta
	Pinch  float32    // delta of the inter-touch distance
	Rotate float32    // signed delta of the inter-touch angle, radians
}

// TouchTrackerData keeps one frame of touch history. Gestures are positional
// deltas between consecutive frames; no velocity is carried further back.
type TouchTrackerData struct {
	Curr [2]*TouchPoint
	Prev [2]*TouchPoint
}

var TouchTracker = donburi.NewComponentType[TouchTrackerData]()

// signedAngle returns the signed angle from a to b.
func signedAngle(a, b mgl32.Vec2) float32 {
	return float32(math.Atan2(
		float64(a.X()*b.Y()-a.Y()*b.X()),
		float64(a.X()*b.X()+a.Y()*b.Y()),
	))
}

// Gestures derives this frame's gesture from the stored snapshots. Frames
// where the touch count changed yield GestureNone; the one-frame gap is not
// noticeable in practice.
func (t *TouchTrackerData) Gestures() TouchGestures {
	switch {
	case t.Curr[0] != nil && t.Curr[1] == nil && t.Prev[0] != nil && t.Prev[1] == nil:
		return TouchGestures{
			Kind:   GestureOneFinger,
			Motion: t.Curr[0].Position.Sub(t.Prev[0].Position),
		}
	case t.Curr[0] != nil && t.Curr[1] != nil && t.Prev[0] != nil && t.Prev[1] != nil:
		currMid := t.Curr[0].Position.Add(t.Curr[1].Position).Mul(0.5)
		prevMid := t.Prev[0].Position.Add(t.Prev[1].Position).Mul(0.5)

		currDist := t.Curr[1].Position.Sub(t.Curr[0].Position).Len()
		prevDist := t.Prev[1].Position.Sub(t.Prev[0].Position).Len()

		// The inter-touch angle measured from straight up vs straight down
		// differs by the wraparound (-1° to +1° is 358° one way, 2° the
		// other). Taking whichever delta is smaller keeps the result stable
		// when the touches swap sides.
		prevVec := t.Prev[1].Position.Sub(t.Prev[0].Position)
		currVec := t.Curr[1].Position.Sub(t.Curr[0].Position)
		down := mgl32.Vec2{0, -1}
		up := mgl32.Vec2{0, 1}
		rotDown := signedAngle(currVec, down) - signedAngle(prevVec, down)
		rotUp := signedAngle(currVec, up) - signedAngle(prevVec, up)
		rotate := rotDown
		if float32(math.Abs(float64(rotUp))) < float32(math.Abs(float64(rotDown))) {
			rotate = rotUp
		}

		return TouchGestures{
			Kind:   GestureTwoFinger,
			Motion: currMid.Sub(prevMid),
			Pinch:  currDist - prevDist,
			Rotate: rotate,
		}
	default:
		return TouchGestures{Kind: GestureNone}
	}
}
