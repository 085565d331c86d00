// Package engine is the demo playback engine the overlay drives. It owns
// the authoritative frame position: it advances it in real time and applies
// seek targets the overlay has placed.
package engine

import (
	"github.com/slabgames/replayhud/components"
	cfg "github.com/slabgames/replayhud/config"
)

type Engine struct {
	seekRequested bool
}

func New() *Engine {
	return &Engine{}
}

// RequestSeek flags that the overlay placed a seek target. The seek is
// applied on the next Step, like a real engine picking the request up on
// its own schedule.
func (g *Engine) RequestSeek() {
	g.seekRequested = true
}

// Step advances playback by one frame, or applies a pending seek instead.
// Replays loop once the last frame is reached.
func (g *Engine) Step(pb *components.PlaybackData) {
	if g.seekRequested && pb.SeekPending() {
		frame := pb.TargetFrame
		if frame < cfg.Playback.FirstFrame {
			frame = cfg.Playback.FirstFrame
		} else if frame > pb.LastFrame {
			frame = pb.LastFrame
		}
		pb.CurrentFrame = frame
		pb.TargetFrame = components.UnsetTarget
		g.seekRequested = false
		return
	}

	if pb.CurrentFrame < pb.LastFrame {
		pb.CurrentFrame++
	} else {
		pb.CurrentFrame = cfg.Playback.FirstFrame
	}
}
