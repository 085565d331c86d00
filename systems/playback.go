package systems

import (
	"github.com/slabgames/replayhud/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayback initializes the playback state singleton. Hosts must call
// this before the first frame touches the transport controls.
func CreatePlayback(e *ecs.ECS, current, last int) *components.PlaybackData {
	ent := e.World.Entry(e.World.Create(components.Playback))
	components.Playback.SetValue(ent, components.PlaybackData{
		CurrentFrame: current,
		TargetFrame:  components.UnsetTarget,
		LastFrame:    last,
	})
	return components.Playback.Get(ent)
}

// mustPlayback returns the playback singleton. Running any transport system
// before CreatePlayback is a programming error, so this fails fast instead
// of computing on garbage.
func mustPlayback(e *ecs.ECS) *components.PlaybackData {
	ent, ok := components.Playback.First(e.World)
	if !ok {
		panic("replayhud: playback state not initialized before transport controls")
	}
	return components.Playback.Get(ent)
}

// SetHooks installs the collaborator callbacks fired by the overlay.
func SetHooks(e *ecs.ECS, hooks components.HooksData) {
	ent := getOrCreateHooksEntry(e)
	components.Hooks.SetValue(ent, hooks)
}

func getOrCreateHooks(e *ecs.ECS) *components.HooksData {
	return components.Hooks.Get(getOrCreateHooksEntry(e))
}

func getOrCreateHooksEntry(e *ecs.ECS) *donburi.Entry {
	if _, ok := components.Hooks.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Hooks))
	}
	ent, _ := components.Hooks.First(e.World)
	return ent
}

// GetOrCreateAudio returns the shared volume singleton.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	if _, ok := components.Audio.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Audio))
	}
	ent, _ := components.Audio.First(e.World)
	return components.Audio.Get(ent)
}
