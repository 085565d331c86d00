package components

import "github.com/yohamta/donburi"

// AudioData holds the shared volume value (0-100). The audio subsystem
// co-owns it; the overlay mutates it and fires the volume-changed hook.
type AudioData struct {
	Volume int
}

var Audio = donburi.NewComponentType[AudioData]()
