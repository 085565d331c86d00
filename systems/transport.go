package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/slabgames/replayhud/components"
	cfg "github.com/slabgames/replayhud/config"
	"github.com/slabgames/replayhud/fonts"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// buttonLabels are the glyphs drawn on each transport button.
var buttonLabels = map[components.TransportButton]string{
	components.ButtonJumpBack:    "<<",
	components.ButtonStepBack:    "<",
	components.ButtonStepForward: ">",
	components.ButtonJumpForward: ">>",
	components.ButtonMute:        "VOL",
	components.ButtonHelp:        "?",
	components.ButtonFullscreen:  "[ ]",
}

// buttonTips are the hover tooltips, matching the help panel wording.
var buttonTips = map[components.TransportButton]string{
	components.ButtonJumpBack:    "Jump Back (Shift + Left Arrow)",
	components.ButtonStepBack:    "Step Back (Left Arrow)",
	components.ButtonStepForward: "Step Forward (Right Arrow)",
	components.ButtonJumpForward: "Jump Forward (Shift + Right Arrow)",
	components.ButtonMute:        "Toggle Mute (M)",
	components.ButtonHelp:        "View Help",
	components.ButtonFullscreen:  "Toggle Fullscreen (F11)",
}

var helpLines = []string{
	"Step Back (5s): Left Arrow",
	"Step Forward (5s): Right Arrow",
	"Jump Back (20s): Shift + Left Arrow",
	"Jump Forward (20s): Shift + Right Arrow",
	"Toggle Mute: M",
	"Toggle Fullscreen: F11",
	"Big jumps may take several seconds.",
}

// transportButtonRect derives a button's screen region from the window
// size. Layout is stateless and recomputed every frame.
func transportButtonRect(b components.TransportButton) rectF {
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)
	bs := cfg.Transport.ButtonSize
	y := h - cfg.Transport.ButtonRowRise

	var x float64
	switch b {
	case components.ButtonJumpBack:
		x = 0
	case components.ButtonStepBack:
		x = bs
	case components.ButtonStepForward:
		x = bs * 2
	case components.ButtonJumpForward:
		x = bs * 3
	case components.ButtonMute:
		x = bs * 4
	case components.ButtonHelp:
		x = w - bs*2
	case components.ButtonFullscreen:
		x = w - bs
	}
	return rectF{X0: x, Y0: y, X1: x + bs, Y1: y + bs}
}

// UpdateTransport handles the one-shot transport buttons, their keyboard
// shortcuts, and the help panel tween. Runs after the widget systems so the
// idle controller sees this frame's hover state.
func UpdateTransport(e *ecs.ECS) {
	pb := mustPlayback(e)
	t := getOrCreateTransport(e)
	p := getOrCreatePointer(e)
	audio := GetOrCreateAudio(e)
	hooks := getOrCreateHooks(e)

	t.HoveredButton = components.ButtonNone
	for b := components.TransportButton(0); b < components.ButtonCount; b++ {
		if !transportButtonRect(b).contains(p.X, p.Y) {
			continue
		}
		t.HoveredButton = b
		if p.JustPressed {
			pressButton(b, pb, t, audio, hooks)
		}
	}

	handleShortcuts(pb, t, audio, hooks)

	if t.HelpTween != nil {
		v, done := t.HelpTween.Update(1.0 / float32(cfg.Playback.FPS))
		t.HelpAlpha = v
		if done {
			t.HelpTween = nil
		}
	}
}

func pressButton(b components.TransportButton, pb *components.PlaybackData,
	t *components.TransportData, audio *components.AudioData, hooks *components.HooksData) {

	switch b {
	case components.ButtonJumpBack:
		requestSeek(pb, hooks, -cfg.Transport.JumpFrames)
	case components.ButtonStepBack:
		requestSeek(pb, hooks, -cfg.Transport.StepFrames)
	case components.ButtonStepForward:
		requestSeek(pb, hooks, cfg.Transport.StepFrames)
	case components.ButtonJumpForward:
		requestSeek(pb, hooks, cfg.Transport.JumpFrames)
	case components.ButtonMute:
		toggleMute(t, audio, hooks)
	case components.ButtonHelp:
		toggleHelp(t)
	case components.ButtonFullscreen:
		if hooks.OnFullscreen != nil {
			hooks.OnFullscreen()
		}
	}
}

// requestSeek places a relative seek and commits it immediately. A pending
// seek (sentinel already replaced) swallows further presses until the
// engine catches up.
func requestSeek(pb *components.PlaybackData, hooks *components.HooksData, offset int) {
	if pb.SeekPending() {
		return
	}
	pb.TargetFrame = pb.CurrentFrame + offset
	if hooks.OnSeek != nil {
		hooks.OnSeek()
	}
}

// toggleMute zeroes the volume, remembering the last nonzero level so
// un-mute can restore it. Both directions notify the audio subsystem.
func toggleMute(t *components.TransportData, audio *components.AudioData, hooks *components.HooksData) {
	if audio.Volume == 0 {
		restored := t.PrevVolume
		if restored == 0 {
			restored = cfg.Transport.DefaultVolume
		}
		audio.Volume = restored
	} else {
		t.PrevVolume = audio.Volume
		audio.Volume = 0
	}
	if hooks.OnVolumeChanged != nil {
		hooks.OnVolumeChanged(audio.Volume)
	}
}

func toggleHelp(t *components.TransportData) {
	t.ShowHelp = !t.ShowHelp
	target := float32(0)
	if t.ShowHelp {
		target = 1
	}
	t.HelpTween = gween.New(t.HelpAlpha, target, cfg.Transport.HelpFadeSecs, ease.OutQuad)
}

// handleShortcuts mirrors the buttons on the keyboard, as listed in the
// help panel.
func handleShortcuts(pb *components.PlaybackData, t *components.TransportData,
	audio *components.AudioData, hooks *components.HooksData) {

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		if shift {
			requestSeek(pb, hooks, -cfg.Transport.JumpFrames)
		} else {
			requestSeek(pb, hooks, -cfg.Transport.StepFrames)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		if shift {
			requestSeek(pb, hooks, cfg.Transport.JumpFrames)
		} else {
			requestSeek(pb, hooks, cfg.Transport.StepFrames)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		toggleMute(t, audio, hooks)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		toggleHelp(t)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if hooks.OnFullscreen != nil {
			hooks.OnFullscreen()
		}
	}
}

func getOrCreateTransport(e *ecs.ECS) *components.TransportData {
	if _, ok := components.Transport.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Transport))
		components.Transport.SetValue(ent, components.TransportData{
			SurfaceAlpha:  1,
			HoveredButton: components.ButtonNone,
		})
	}
	ent, _ := components.Transport.First(e.World)
	return components.Transport.Get(ent)
}

// DrawTransportControls renders the whole control surface: panel, seek bar,
// buttons, volume bar, tooltips, help panel and the time readout. Render
// thread only, once per frame during playback mode.
func DrawTransportControls(e *ecs.ECS, screen *ebiten.Image) {
	pb := mustPlayback(e)
	t := getOrCreateTransport(e)
	audio := GetOrCreateAudio(e)
	alpha := t.SurfaceAlpha

	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())

	// Panel shade behind the controls.
	panelTop := h - float32(cfg.Transport.PanelHeight)
	vector.DrawFilledRect(screen, 0, panelTop, w, float32(cfg.Transport.PanelHeight),
		scaleRGBA(cfg.PanelShade, alpha), false)

	drawSeekBar(e, screen, alpha)

	face := fonts.Bold.Get()
	for b := components.TransportButton(0); b < components.ButtonCount; b++ {
		r := transportButtonRect(b)
		label := buttonLabels[b]
		if b == components.ButtonMute && audio.Volume == 0 {
			label = "MUTE"
		}

		labelAlpha := 0.6 * alpha
		if b == t.HoveredButton {
			labelAlpha = alpha
		}
		bounds := text.BoundString(face, label)
		x := int(r.X0) + (int(r.X1-r.X0)-bounds.Dx())/2
		y := int(r.Y0) + (int(r.Y1-r.Y0)+bounds.Dy())/2
		text.Draw(screen, label, face, x, y, scaleRGBA(cfg.White, labelAlpha))
	}

	drawVolumeBar(e, screen, alpha)
	drawButtonTip(t, screen)
	drawHelpPanel(t, screen)
	drawTimeText(pb, screen, alpha)
}

// drawButtonTip paints the hovered button's tooltip box above the controls.
func drawButtonTip(t *components.TransportData, screen *ebiten.Image) {
	tip, ok := buttonTips[t.HoveredButton]
	if !ok {
		return
	}
	h := float32(screen.Bounds().Dy())
	r := transportButtonRect(t.HoveredButton)

	face := fonts.Small.Get()
	bounds := text.BoundString(face, tip)
	boxTop := h - float32(cfg.Transport.LabelBoxRise)
	boxX := float32(r.X0)
	boxW := float32(bounds.Dx()) + 20

	// Keep the box on-screen for the right-aligned buttons.
	if boxX+boxW > float32(cfg.C.Width) {
		boxX = float32(cfg.C.Width) - boxW - 5
	}

	vector.DrawFilledRect(screen, boxX, boxTop, boxW, float32(cfg.Transport.LabelBoxH),
		cfg.BlackBox, false)
	text.Draw(screen, tip, face, int(boxX)+10,
		int(boxTop)+int(cfg.Transport.LabelBoxH)/2+bounds.Dy()/2, cfg.White)
}

// drawHelpPanel paints the keyboard shortcut reference while it has any
// tweened visibility left.
func drawHelpPanel(t *components.TransportData, screen *ebiten.Image) {
	if t.HelpAlpha <= 0 {
		return
	}
	a := float64(t.HelpAlpha)
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())

	lineH := 26
	boxW := float32(440)
	boxH := float32(lineH*len(helpLines) + 40)
	boxX := w - boxW - 50
	boxY := h - float32(cfg.Transport.LabelBoxRise) - boxH

	vector.DrawFilledRect(screen, boxX, boxY, boxW, boxH, scaleRGBA(cfg.HelpBoxFill, a), false)

	face := fonts.Regular.Get()
	for i, line := range helpLines {
		text.Draw(screen, line, face, int(boxX)+20, int(boxY)+30+i*lineH, scaleRGBA(cfg.White, a))
	}
}

// drawTimeText paints the "current / end" MM:SS readout next to the volume
// bar.
func drawTimeText(pb *components.PlaybackData, screen *ebiten.Image, alpha float64) {
	h := screen.Bounds().Dy()
	label := FormatFrameTime(pb.CurrentFrame) + " / " + FormatFrameTime(pb.LastFrame)
	face := fonts.Regular.Get()
	x := int(cfg.Transport.ButtonSize*5 + cfg.Transport.VolumeBarWidth + 20)
	y := h - int(cfg.Transport.VolumeBarBottom)
	text.Draw(screen, label, face, x, y, scaleRGBA(cfg.White, alpha))
}

// scaleRGBA multiplies a premultiplied-alpha color by a 0..1 factor.
func scaleRGBA(c color.RGBA, a float64) color.RGBA {
	if a >= 1 {
		return c
	}
	if a < 0 {
		a = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
