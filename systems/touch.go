package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/vantor3d/orbitcam/components"
)

// UpdateTouchTracker snapshots this tick's touch points into the tracker
// singleton, shifting the previous snapshot back one slot. Three or more
// touches leave the tracker unchanged; zero touches clear both slots so a
// lifted finger cannot pair with a stale snapshot.
func UpdateTouchTracker(e *ecs.ECS) {
	trackerEntry, ok := components.TouchTracker.First(e.World)
	if !ok {
		return
	}
	tracker := components.TouchTracker.Get(trackerEntry)

	touches := Source.Touches()
	switch len(touches) {
	case 0:
		tracker.Curr = [2]*components.TouchPoint{}
		tracker.Prev = [2]*components.TouchPoint{}
	case 1:
		t0 := touches[0]
		tracker.Prev = tracker.Curr
		tracker.Curr = [2]*components.TouchPoint{&t0, nil}
	case 2:
		t0, t1 := touches[0], touches[1]
		tracker.Prev = tracker.Curr
		tracker.Curr = [2]*components.TouchPoint{&t0, &t1}
	}
}
