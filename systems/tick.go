package systems

import (
	"time"

	"github.com/yohamta/donburi/ecs"

	"github.com/vantor3d/orbitcam/components"
)

// maxTickDelta caps the per-tick delta so a stall (window drag, debugger
// pause) does not make the smoothing snap across the whole remaining
// distance in one step.
const maxTickDelta = 0.1

var lastTick time.Time

// UpdateTick measures wall-clock time since the previous tick and stores it
// in the Tick singleton. Runs first, everything downstream reads the delta.
func UpdateTick(e *ecs.ECS) {
	tickEntry, ok := components.Tick.First(e.World)
	if !ok {
		return
	}
	tick := components.Tick.Get(tickEntry)

	now := time.Now()
	if lastTick.IsZero() {
		lastTick = now
		return
	}
	delta := float32(now.Sub(lastTick).Seconds())
	lastTick = now

	if delta > maxTickDelta {
		delta = maxTickDelta
	}
	tick.Delta = delta
}
