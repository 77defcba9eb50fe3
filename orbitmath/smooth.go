package orbitmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// snapEpsilon is the distance to target below which smoothing snaps exactly,
// so values settle instead of creeping asymptotically.
const snapEpsilon = 1e-3

// smoothFactor converts a smoothness knob and a frame delta into a lerp
// fraction. The 7th power shapes the knob so its perceptual response is
// roughly linear; raising to dt makes convergence frame-rate independent.
func smoothFactor(smoothness, dt float32) float32 {
	t := float64(smoothness)
	t = t * t * t * t * t * t * t
	return 1 - float32(math.Pow(t, float64(dt)))
}

// LerpAndSnap moves current toward target with frame-rate-independent
// exponential decay. A smoothness of 0 snaps immediately; a smoothness of
// exactly 1 never converges, which callers use to mean "externally animated,
// leave it alone". Within snapEpsilon of the target (and smoothness < 1) the
// target is returned exactly.
func LerpAndSnap(current, target, smoothness, dt float32) float32 {
	next := current + (target-current)*smoothFactor(smoothness, dt)
	if smoothness < 1 && float32(math.Abs(float64(target-next))) < snapEpsilon {
		return target
	}
	return next
}

// LerpAndSnapVec3 is LerpAndSnap for a vector, with the snap test applied to
// the distance to target rather than per component.
func LerpAndSnapVec3(current, target mgl32.Vec3, smoothness, dt float32) mgl32.Vec3 {
	f := smoothFactor(smoothness, dt)
	next := current.Add(target.Sub(current).Mul(f))
	if smoothness < 1 && target.Sub(next).Len() < snapEpsilon {
		return target
	}
	return next
}
