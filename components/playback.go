package components

import (
	"math"

	"github.com/yohamta/donburi"
)

// UnsetTarget is the sentinel meaning "no pending seek request".
const UnsetTarget = math.MaxInt32

// PlaybackData mirrors the playback engine's authoritative position state.
// The engine owns these values; the overlay mutates TargetFrame to request
// seeks and reads the rest.
type PlaybackData struct {
	CurrentFrame int
	TargetFrame  int // UnsetTarget when no seek is pending
	LastFrame    int
}

// SeekPending reports whether a seek request is waiting on the engine.
func (p *PlaybackData) SeekPending() bool {
	return p.TargetFrame != UnsetTarget
}

var Playback = donburi.NewComponentType[PlaybackData]()
