package components

import "github.com/yohamta/donburi"

// SliderState is a widget's drag-in-progress flag. Each slider owns its own
// instance so there is no hidden coupling between controls.
type SliderState struct {
	Held bool
}

// SeekBarData is the seek bar singleton. Value tracks the engine's position
// while idle and the pointer while dragging; the engine seek only fires on
// drag release.
type SeekBarData struct {
	State      SliderState
	Value      int
	Hovered    bool
	HoverValue int // Frame under the pointer, for the time tooltip
}

var SeekBar = donburi.NewComponentType[SeekBarData]()

// VolumeBarData is the volume bar singleton. Volume changes commit
// continuously, so it carries no pending value of its own.
type VolumeBarData struct {
	State   SliderState
	Hovered bool
}

var VolumeBar = donburi.NewComponentType[VolumeBarData]()
