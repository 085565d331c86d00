package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer everything in the overlay draws on.
const Default = ecs.LayerDefault

// MessageConfig contains on-screen message layout configuration
type MessageConfig struct {
	LeftMargin float64 // Pixels to the left of OSD messages
	TopMargin  float64 // Pixels above the first OSD message
	Padding    float64 // Pixels between subsequent OSD messages
	BoxPadding float64 // Padding inside each message box
	BoxColor   color.RGBA
}

// TransportConfig contains transport control surface configuration
type TransportConfig struct {
	ButtonSize    float64 // Square buttons, like the reference player bar
	ButtonRowRise float64 // Distance of the button row above the bottom edge
	PanelHeight   float64 // Height of the darkened panel behind the controls

	// Seek bar geometry (all measured up from the bottom edge)
	SeekBarRise      float64 // Track line position
	SeekHoverTop     float64 // Top of the hover-sensitive strip
	SeekHoverInset   float64 // Horizontal inset of the hover strip
	SeekTooltipRise  float64 // Tooltip baseline above the track
	SeekLineWidth    float32
	SeekHandleRadius float32

	// Volume bar geometry
	VolumeBarWidth  float64
	VolumeBarTop    float64 // Up from the bottom edge
	VolumeBarBottom float64

	// Transport command offsets, in frames
	StepFrames int
	JumpFrames int

	// Volume
	DefaultVolume int // Restored on un-mute when no previous volume is known

	// Idle fade
	IdleGraceMS  uint32  // Idle time that is not penalized
	IdleFadeMS   uint32  // Fade-out window after the grace period
	MinAlpha     float64 // Floor so controls never become fully invisible
	HelpFadeSecs float32 // Help panel tween duration

	// Tooltip / label box geometry
	LabelBoxRise float64
	LabelBoxH    float64
}

// PlaybackConfig contains playback timing constants
type PlaybackConfig struct {
	FirstFrame int // Lowest seekable frame number
	FPS        int // Frames per second, used for MM:SS time labels
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Message MessageConfig
var Transport TransportConfig
var Playback PlaybackConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Green       = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Red         = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	Grey        = color.RGBA{R: 255, G: 255, B: 255, A: 128}
	BlackBox    = color.RGBA{R: 0, G: 0, B: 0, A: 230}
	PanelShade  = color.RGBA{R: 0, G: 0, B: 0, A: 191}
	SeekDarken  = color.RGBA{R: 0, G: 0, B: 0, A: 153}
	HelpBoxFill = color.RGBA{R: 0, G: 0, B: 0, A: 204}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	Message = MessageConfig{
		LeftMargin: 10,
		TopMargin:  10,
		Padding:    4,
		BoxPadding: 6,
		BoxColor:   color.RGBA{R: 0, G: 0, B: 0, A: 160},
	}

	Transport = TransportConfig{
		ButtonSize:    54,
		ButtonRowRise: 62,
		PanelHeight:   70,

		SeekBarRise:      74,
		SeekHoverTop:     95,
		SeekHoverInset:   5,
		SeekTooltipRise:  30,
		SeekLineWidth:    8,
		SeekHandleRadius: 12,

		VolumeBarWidth:  80,
		VolumeBarTop:    50,
		VolumeBarBottom: 32,

		StepFrames: 300,
		JumpFrames: 1200,

		DefaultVolume: 30,

		IdleGraceMS:  1000,
		IdleFadeMS:   1000,
		MinAlpha:     0.0001,
		HelpFadeSecs: 0.15,

		LabelBoxRise: 150,
		LabelBoxH:    54,
	}

	Playback = PlaybackConfig{
		FirstFrame: 0,
		FPS:        60,
	}
}
