package systems

import (
	"fmt"

	"github.com/slabgames/replayhud/components"
	cfg "github.com/slabgames/replayhud/config"
	"github.com/slabgames/replayhud/osd"
	"github.com/yohamta/donburi/ecs"
)

// getOrCreateClock returns the clock singleton, defaulting to the
// process-monotonic millisecond clock the message store also uses.
func getOrCreateClock(e *ecs.ECS) *components.ClockData {
	if _, ok := components.Clock.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Clock))
		components.Clock.SetValue(ent, components.ClockData{Now: osd.TimeMS})
	}
	ent, _ := components.Clock.First(e.World)
	return components.Clock.Get(ent)
}

// FormatFrameTime renders a frame number as MM:SS at the configured
// playback rate. Frames before the first seekable frame clamp to 00:00.
func FormatFrameTime(frame int) string {
	seconds := (frame - cfg.Playback.FirstFrame) / cfg.Playback.FPS
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
