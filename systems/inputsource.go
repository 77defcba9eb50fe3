package systems

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vantor3d/orbitcam/components"
	cfg "github.com/vantor3d/orbitcam/config"
)

// InputSource abstracts the raw input devices the aggregation system reads.
// The default is the Ebitengine-backed source; tests and embedders that route
// input themselves (e.g. rendering to a texture) can swap it.
type InputSource interface {
	CursorPosition() mgl32.Vec2
	// MouseDelta is the cursor motion since the previous tick.
	MouseDelta() mgl32.Vec2
	MouseButtonPressed(ebiten.MouseButton) bool
	MouseButtonJustPressed(ebiten.MouseButton) bool
	MouseButtonJustReleased(ebiten.MouseButton) bool
	KeyPressed(ebiten.Key) bool
	// Scroll returns wheel motion in line units and trackpad motion in pixel
	// units. Sources that cannot tell the two apart report everything as
	// lines.
	Scroll() (line, pixel mgl32.Vec2)
	// Pinch is the trackpad pinch-gesture delta for this tick.
	Pinch() float32
	Touches() []components.TouchPoint
	// TouchesJustPressed counts touches that began this tick.
	TouchesJustPressed() int
	WindowSize() mgl32.Vec2
}

// Source is the input source the systems read. Swap before the first tick.
var Source InputSource = &EbitenSource{}

// EbitenSource reads input from Ebitengine. Mouse deltas are derived from
// cursor positions across ticks, so MouseDelta must be called exactly once
// per tick (UpdateInput does). Ebitengine reports all wheel motion in line
// units and has no pinch events; trackpad zoom arrives via touch gestures.
type EbitenSource struct {
	prevCursor    mgl32.Vec2
	cursorTracked bool
	touchIDs      []ebiten.TouchID
	justPressed   []ebiten.TouchID
}

func (s *EbitenSource) CursorPosition() mgl32.Vec2 {
	x, y := ebiten.CursorPosition()
	return mgl32.Vec2{float32(x), float32(y)}
}

func (s *EbitenSource) MouseDelta() mgl32.Vec2 {
	curr := s.CursorPosition()
	if !s.cursorTracked {
		s.prevCursor = curr
		s.cursorTracked = true
	}
	delta := curr.Sub(s.prevCursor)
	s.prevCursor = curr
	return delta
}

func (s *EbitenSource) MouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

func (s *EbitenSource) MouseButtonJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

func (s *EbitenSource) MouseButtonJustReleased(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(b)
}

func (s *EbitenSource) KeyPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (s *EbitenSource) Scroll() (line, pixel mgl32.Vec2) {
	x, y := ebiten.Wheel()
	return mgl32.Vec2{float32(x), float32(y)}, mgl32.Vec2{}
}

func (s *EbitenSource) Pinch() float32 { return 0 }

func (s *EbitenSource) Touches() []components.TouchPoint {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	points := make([]components.TouchPoint, 0, len(s.touchIDs))
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		points = append(points, components.TouchPoint{
			ID:       int64(id),
			Position: mgl32.Vec2{float32(x), float32(y)},
		})
	}
	return points
}

func (s *EbitenSource) TouchesJustPressed() int {
	s.justPressed = inpututil.AppendJustPressedTouchIDs(s.justPressed[:0])
	return len(s.justPressed)
}

func (s *EbitenSource) WindowSize() mgl32.Vec2 {
	return mgl32.Vec2{float32(cfg.C.Width), float32(cfg.C.Height)}
}
