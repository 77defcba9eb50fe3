package components

import "github.com/yohamta/donburi"

// TickData carries the host-supplied time step for this frame. The orbit
// system never reads a clock itself; if the host pauses time, smoothing
// halts with it.
type TickData struct {
	Delta float32 // seconds since the previous tick
}

var Tick = donburi.NewComponentType[TickData]()
