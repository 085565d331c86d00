package components

import "github.com/yohamta/donburi"

// IdleData tracks pointer inactivity for the transport fade-out.
type IdleData struct {
	LastActivity uint32 // monotonic ms of the last pointer movement
	PrevX, PrevY float64
}

var Idle = donburi.NewComponentType[IdleData]()

// ClockData supplies the monotonic millisecond clock. Injected so tests can
// drive time explicitly.
type ClockData struct {
	Now func() uint32
}

var Clock = donburi.NewComponentType[ClockData]()
