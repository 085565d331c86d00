package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TransportButton identifies one of the discrete transport controls.
type TransportButton int

const (
	ButtonNone TransportButton = iota - 1
	ButtonJumpBack
	ButtonStepBack
	ButtonStepForward
	ButtonJumpForward
	ButtonMute
	ButtonHelp
	ButtonFullscreen

	ButtonCount
)

// TransportData is the singleton state of the transport control surface.
type TransportData struct {
	ShowHelp      bool
	HelpAlpha     float32
	HelpTween     *gween.Tween
	PrevVolume    int             // Last nonzero volume, restored on un-mute
	SurfaceAlpha  float64         // Idle-fade alpha gating the whole surface
	HoveredButton TransportButton // ButtonNone when the pointer is elsewhere
}

var Transport = donburi.NewComponentType[TransportData]()
