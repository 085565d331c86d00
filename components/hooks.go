package components

import "github.com/yohamta/donburi"

// HooksData carries the collaborator callbacks the overlay fires. The host
// wires these once at scene setup; nil hooks are simply skipped.
type HooksData struct {
	OnSeek          func()    // Fired when a seek request has been placed
	OnVolumeChanged func(int) // Fired with the new volume on every accepted change
	OnFullscreen    func()    // Fired on fullscreen toggle
}

var Hooks = donburi.NewComponentType[HooksData]()
