package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/vantor3d/orbitcam/config"
	"github.com/vantor3d/orbitcam/orbitmath"
)

// TouchControls selects what one- and two-finger touch gestures do. Pinch
// always zooms, so there is a fixed set of schemes rather than per-gesture
// bindings.
type TouchControls int

const (
	// OneFingerOrbit: one finger orbits, two fingers pan, pinch zooms.
	OneFingerOrbit TouchControls = iota
	// TwoFingerOrbit: one finger pans, two fingers orbit, pinch zooms.
	TwoFingerOrbit
)

// TrackpadBehavior selects how pixel-based scroll (trackpads) is routed.
type TrackpadBehavior int

const (
	// TrackpadZoom treats all scroll as zoom, like a mouse wheel.
	TrackpadZoom TrackpadBehavior = iota
	// TrackpadBlenderLike treats pixel scroll as orbit, unless the pan or
	// zoom trackpad modifier is held, in which case it pans or zooms.
	TrackpadBlenderLike
)

// OrbitCameraData holds the full orbit state for one camera entity: current
// and target spherical coordinates, control bindings, limits and smoothing
// knobs. All fields are plain data; external code mutates them directly and
// sets ForceUpdate afterwards so the transform recomputes even without input.
type OrbitCameraData struct {
	// Focus is the current look-at point. Updated automatically; use
	// TargetFocus to move the camera programmatically.
	Focus       mgl32.Vec3
	TargetFocus mgl32.Vec3

	// Yaw/Pitch/Radius are the current spherical coordinates. Nil until the
	// first tick derives them from the entity's transform. Use the Target*
	// fields to change them after initialization.
	Yaw          *float32
	Pitch        *float32
	Radius       *float32
	TargetYaw    float32
	TargetPitch  float32
	TargetRadius float32

	// Scale is the orthographic zoom factor; unused for perspective cameras,
	// where Radius takes its place.
	Scale       *float32
	TargetScale float32

	// Optional limits. Nil means unbounded. Callers must keep lower <= upper.
	YawUpperLimit   *float32
	YawLowerLimit   *float32
	PitchUpperLimit *float32
	PitchLowerLimit *float32
	ZoomUpperLimit  *float32
	ZoomLowerLimit  *float32

	// FocusBounds restricts the focus point to a volume. Nil means unbounded.
	FocusBounds *orbitmath.FocusBounds

	// Sensitivity multipliers and smoothness knobs per motion kind.
	// Smoothness is in [0,1): 0 snaps, values near 1 lag heavily, and exactly
	// 1 never converges (meaning "externally animated, hands off").
	OrbitSensitivity float32
	OrbitSmoothness  float32
	PanSensitivity   float32
	PanSmoothness    float32
	ZoomSensitivity  float32
	ZoomSmoothness   float32

	// Control bindings.
	ButtonOrbit   ebiten.MouseButton
	ButtonPan     ebiten.MouseButton
	ModifierOrbit *ebiten.Key // required for ButtonOrbit when set
	ModifierPan   *ebiten.Key // required for ButtonPan when set
	ReversedZoom  bool

	// Touch and trackpad policy.
	TouchControls        TouchControls
	TrackpadBehavior     TrackpadBehavior
	TrackpadPanModifier  *ebiten.Key // BlenderLike: scroll pans while held
	TrackpadZoomModifier *ebiten.Key // BlenderLike: scroll zooms while held
	TrackpadSensitivity  float32
	TrackpadPinchToZoom  bool

	// IsUpsideDown is recomputed only on orbit-button press/release edges so
	// the yaw direction cannot flip mid-drag. Do not set manually.
	IsUpsideDown bool
	// AllowUpsideDown lifts the ±π/2 pitch clamp.
	AllowUpsideDown bool

	// Enabled gates new input capture. In-flight smoothing still runs.
	Enabled bool
	// Initialized latches true after the first tick seeds the spherical
	// state from the entity's transform.
	Initialized bool
	// ForceUpdate forces one transform recompute with zero input; cleared
	// automatically after it is honored.
	ForceUpdate bool

	// Axis is the right/up/forward basis the angles are measured against,
	// allowing a non-default world up.
	Axis orbitmath.Basis
	// BaseRotation is the roll reference frame, rotated directly by roll
	// input. Identity when roll is unused.
	BaseRotation mgl32.Quat
}

var OrbitCamera = donburi.NewComponentType[OrbitCameraData]()

// NewOrbitCameraData returns orbit state with the configured defaults:
// left-drag orbits, right-drag pans, scroll zooms.
func NewOrbitCameraData() OrbitCameraData {
	c := config.Camera
	return OrbitCameraData{
		TargetRadius:        1,
		TargetScale:         1,
		OrbitSensitivity:    c.OrbitSensitivity,
		OrbitSmoothness:     c.OrbitSmoothness,
		PanSensitivity:      c.PanSensitivity,
		PanSmoothness:       c.PanSmoothness,
		ZoomSensitivity:     c.ZoomSensitivity,
		ZoomSmoothness:      c.ZoomSmoothness,
		ButtonOrbit:         ebiten.MouseButtonLeft,
		ButtonPan:           ebiten.MouseButtonRight,
		ReversedZoom:        c.ReversedZoom,
		TrackpadSensitivity: c.TrackpadSensitivity,
		TrackpadPinchToZoom: c.TrackpadPinchToZoom,
		TouchControls:       TouchControls(c.TouchControls),
		TrackpadBehavior:    TrackpadBehavior(c.TrackpadBehavior),
		Enabled:             true,
		Axis:                orbitmath.DefaultBasis(),
		BaseRotation:        mgl32.QuatIdent(),
	}
}
