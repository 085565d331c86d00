package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/slabgames/replayhud/components"
	cfg "github.com/slabgames/replayhud/config"
	"github.com/slabgames/replayhud/engine"
	"github.com/slabgames/replayhud/osd"
	"github.com/slabgames/replayhud/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// demoLastFrame is the length of the bundled demo replay (3 minutes at 60fps).
const demoLastFrame = 10800

// PlaybackScene runs the demo replay with the overlay controls on top
type PlaybackScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	engine       *engine.Engine
	speaker      *engine.Speaker
	playback     *components.PlaybackData
	once         sync.Once
}

// NewPlaybackScene creates a new playback scene
func NewPlaybackScene(sc SceneChanger) *PlaybackScene {
	return &PlaybackScene{sceneChanger: sc}
}

func (ps *PlaybackScene) Update() {
	ps.once.Do(ps.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ps.speaker.SetVolume(0)
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
		return
	}

	ps.ecs.Update()
}

func (ps *PlaybackScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}

	ps.drawBackdrop(screen)
	ps.ecs.Draw(screen)
}

func (ps *PlaybackScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Input sampling must run before anything that reads the pointer
	e.AddSystem(systems.UpdatePointer)
	e.AddSystem(systems.UpdateSeekBar)
	e.AddSystem(systems.UpdateVolumeBar)
	e.AddSystem(systems.UpdateTransport)
	e.AddSystem(systems.UpdateIdle)
	e.AddSystem(ps.stepEngine)

	e.AddRenderer(cfg.Default, systems.DrawTransportControls)
	e.AddRenderer(cfg.Default, systems.DrawMessages)

	ps.ecs = e
	ps.engine = engine.New()
	ps.playback = systems.CreatePlayback(e, cfg.Playback.FirstFrame, demoLastFrame)

	volume := cfg.Transport.DefaultVolume
	if saved, err := systems.LoadSettings(); err != nil {
		log.Printf("Warning: could not load settings: %v", err)
	} else if saved != nil {
		volume = saved.Volume
	}
	audio := systems.GetOrCreateAudio(e)
	audio.Volume = volume

	ps.speaker = engine.NewSpeaker(volume)

	systems.SetHooks(e, components.HooksData{
		OnSeek:          ps.onSeek,
		OnVolumeChanged: ps.onVolumeChanged,
		OnFullscreen:    ps.onFullscreen,
	})

	osd.AddMessage("Playing demo replay", 3000, cfg.White)
}

// stepEngine advances the fake playback engine once per tick
func (ps *PlaybackScene) stepEngine(e *ecs.ECS) {
	ps.engine.Step(ps.playback)
}

func (ps *PlaybackScene) onSeek() {
	ps.engine.RequestSeek()
	osd.AddTypedMessage(osd.SeekInfo,
		"Seeking to "+systems.FormatFrameTime(ps.playback.TargetFrame),
		2000, cfg.Yellow)
}

func (ps *PlaybackScene) onVolumeChanged(volume int) {
	ps.speaker.SetVolume(volume)
	osd.AddTypedMessage(osd.VolumeLevel,
		fmt.Sprintf("Volume: %d%%", volume),
		2000, cfg.White)
	ps.saveSettings(volume)
}

func (ps *PlaybackScene) onFullscreen() {
	ebiten.SetFullscreen(!ebiten.IsFullscreen())
	audioEntry := systems.GetOrCreateAudio(ps.ecs)
	ps.saveSettings(audioEntry.Volume)
}

func (ps *PlaybackScene) saveSettings(volume int) {
	err := systems.SaveSettings(&systems.SavedSettings{
		Volume:     volume,
		Fullscreen: ebiten.IsFullscreen(),
	})
	if err != nil {
		log.Printf("Warning: could not save settings: %v", err)
	}
}

// drawBackdrop renders a stand-in for decoded video so the overlay has
// something to float above. Bars sweep with the current frame so seeking
// is visible.
func (ps *PlaybackScene) drawBackdrop(screen *ebiten.Image) {
	w := float32(cfg.C.Width)
	h := float32(cfg.C.Height)
	frame := float64(ps.playback.CurrentFrame)

	vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{18, 20, 30, 255}, false)

	const bars = 6
	for i := 0; i < bars; i++ {
		phase := frame/90.0 + float64(i)*math.Pi/bars
		x := float32((math.Sin(phase)*0.5 + 0.5)) * (w - 80)
		shade := uint8(40 + i*12)
		vector.DrawFilledRect(screen, x, 0, 80, h, color.RGBA{shade, shade, uint8(60 + i*10), 255}, false)
	}
}
