package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/slabgames/replayhud/components"
	cfg "github.com/slabgames/replayhud/config"
	"github.com/slabgames/replayhud/fonts"
	"github.com/yohamta/donburi/ecs"
)

// seekBarRects returns the hover-sensitive strip and the value track.
// The sensitive strip extends well above the drawn line so the bar is easy
// to grab with a fast pointer swipe toward the bottom of the window.
func seekBarRects() (hover, bar rectF) {
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)
	hover = rectF{
		X0: cfg.Transport.SeekHoverInset,
		Y0: h - cfg.Transport.SeekHoverTop,
		X1: w - cfg.Transport.SeekHoverInset,
		Y1: h - cfg.Transport.PanelHeight,
	}
	bar = rectF{X0: 0, Y0: h - cfg.Transport.PanelHeight, X1: w, Y1: h}
	return hover, bar
}

// UpdateSeekBar advances the seek bar's drag state. The shared value updates
// live while dragging for visual feedback; the engine seek fires exactly
// once, on the frame the drag is released.
func UpdateSeekBar(e *ecs.ECS) {
	pb := mustPlayback(e)
	sb := getOrCreateSeekBar(e)
	p := getOrCreatePointer(e)

	// While idle the displayed value tracks the engine: a pending target if
	// one exists, the live playback position otherwise.
	if !sb.State.Held {
		if pb.SeekPending() {
			sb.Value = pb.TargetFrame
		} else {
			sb.Value = pb.CurrentFrame
		}
	}

	hover, bar := seekBarRects()
	res := stepSlider(&sb.State, sliderInput{X: p.X, Y: p.Y, Pressed: p.Pressed},
		hover, bar, axisHorizontal, &sb.Value, cfg.Playback.FirstFrame, pb.LastFrame, 1)
	sb.Hovered = res.Hovered
	sb.HoverValue = res.Value

	if res.Released {
		pb.TargetFrame = sb.Value
		hooks := getOrCreateHooks(e)
		if hooks.OnSeek != nil {
			hooks.OnSeek()
		}
	}
}

func getOrCreateSeekBar(e *ecs.ECS) *components.SeekBarData {
	if _, ok := components.SeekBar.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.SeekBar))
	}
	ent, _ := components.SeekBar.First(e.World)
	return components.SeekBar.Get(ent)
}

// seekPosForValue converts a frame number to a track x position.
func seekPosForValue(v, vMin, vMax int, bar rectF) float64 {
	t := 0.0
	if vMax > vMin {
		t = float64(v-vMin) / float64(vMax-vMin)
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	return bar.X0 + t*(bar.X1-bar.X0)
}

// drawSeekBar paints the track, progress, grab handle and time tooltip.
// surfaceAlpha is the idle-fade alpha of the whole control surface; the
// held-state highlights intentionally ignore it so an active drag is always
// fully visible.
func drawSeekBar(e *ecs.ECS, screen *ebiten.Image, surfaceAlpha float64) {
	pb := mustPlayback(e)
	sb := getOrCreateSeekBar(e)

	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	trackY := h - float32(cfg.Transport.SeekBarRise)
	lineW := cfg.Transport.SeekLineWidth
	held := sb.State.Held

	_, bar := seekBarRects()

	// Darken the frame behind an in-progress scrub.
	if held {
		vector.DrawFilledRect(screen, 0, 0, w, h, cfg.SeekDarken, false)
	}

	// Background track.
	vector.StrokeLine(screen, 0, trackY, w, trackY, lineW,
		scaleRGBA(cfg.White, 0.5*surfaceAlpha), false)

	hoverPos := float32(seekPosForValue(sb.HoverValue, cfg.Playback.FirstFrame, pb.LastFrame, bar))

	// Brighter line up to the hovered position.
	if sb.Hovered && !held {
		vector.StrokeLine(screen, 0, trackY, hoverPos, trackY, lineW,
			scaleRGBA(cfg.White, surfaceAlpha), false)
	}

	// Floating time label near the pointer.
	if sb.Hovered || held {
		label := FormatFrameTime(sb.HoverValue)
		face := fonts.Small.Get()
		bounds := text.BoundString(face, label)
		x := int(hoverPos) - bounds.Dx()/2
		y := int(h) - int(cfg.Transport.SeekBarRise+cfg.Transport.SeekTooltipRise)
		text.Draw(screen, label, face, x, y, cfg.White)
	}

	if held {
		pos := float32(seekPosForValue(sb.Value, cfg.Playback.FirstFrame, pb.LastFrame, bar))
		vector.StrokeLine(screen, 0, trackY, pos, trackY, lineW, cfg.Green, false)
		vector.DrawFilledCircle(screen, pos, trackY+2, cfg.Transport.SeekHandleRadius, cfg.Green, false)
	} else {
		pos := float32(seekPosForValue(sb.Value, cfg.Playback.FirstFrame, pb.LastFrame, bar))
		vector.StrokeLine(screen, 0, trackY, pos, trackY, lineW,
			scaleRGBA(cfg.Green, surfaceAlpha), false)
	}
}
