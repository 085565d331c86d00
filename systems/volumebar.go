package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/slabgames/replayhud/components"
	cfg "github.com/slabgames/replayhud/config"
	"github.com/yohamta/donburi/ecs"
)

// volumeBarRect returns the volume track, sitting to the right of the
// transport buttons. Its hover region is the track itself.
func volumeBarRect() rectF {
	h := float64(cfg.C.Height)
	x0 := cfg.Transport.ButtonSize * 5
	return rectF{
		X0: x0,
		Y0: h - cfg.Transport.VolumeBarTop,
		X1: x0 + cfg.Transport.VolumeBarWidth,
		Y1: h - cfg.Transport.VolumeBarBottom,
	}
}

// UpdateVolumeBar advances the volume bar's drag state. Unlike the seek bar
// there is no commit step: every accepted change notifies the audio
// subsystem immediately.
func UpdateVolumeBar(e *ecs.ECS) {
	mustPlayback(e)
	vb := getOrCreateVolumeBar(e)
	audio := GetOrCreateAudio(e)
	p := getOrCreatePointer(e)

	bar := volumeBarRect()
	res := stepSlider(&vb.State, sliderInput{X: p.X, Y: p.Y, Pressed: p.Pressed},
		bar, bar, axisHorizontal, &audio.Volume, 0, 100, 1)
	vb.Hovered = res.Hovered

	if res.Changed {
		hooks := getOrCreateHooks(e)
		if hooks.OnVolumeChanged != nil {
			hooks.OnVolumeChanged(audio.Volume)
		}
	}
}

func getOrCreateVolumeBar(e *ecs.ECS) *components.VolumeBarData {
	if _, ok := components.VolumeBar.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.VolumeBar))
	}
	ent, _ := components.VolumeBar.First(e.World)
	return components.VolumeBar.Get(ent)
}

// drawVolumeBar paints the volume track, fill and grab handle.
func drawVolumeBar(e *ecs.ECS, screen *ebiten.Image, surfaceAlpha float64) {
	vb := getOrCreateVolumeBar(e)
	audio := GetOrCreateAudio(e)

	bar := volumeBarRect()
	y := float32(bar.Y1) - 5
	lineW := cfg.Transport.SeekLineWidth

	vector.StrokeLine(screen, float32(bar.X0), y, float32(bar.X1), y, lineW,
		scaleRGBA(cfg.White, 0.5*surfaceAlpha), false)

	t := float64(audio.Volume) / 100
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	fillX := float32(bar.X0 + t*(bar.X1-bar.X0))
	vector.StrokeLine(screen, float32(bar.X0), y, fillX, y, lineW,
		scaleRGBA(cfg.White, surfaceAlpha), false)

	if vb.State.Held {
		vector.DrawFilledCircle(screen, fillX, y, cfg.Transport.SeekHandleRadius,
			scaleRGBA(cfg.White, surfaceAlpha), false)
	}
}
