package engine

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate = 48000
	toneHz     = 220
)

// toneStream is an endless 16-bit stereo sine wave, enough signal for the
// volume control to be audible in the demo.
type toneStream struct {
	pos int64
}

func (s *toneStream) Read(buf []byte) (int, error) {
	n := len(buf) / 4 * 4 // whole stereo frames only
	for i := 0; i < n; i += 4 {
		v := int16(math.Sin(2*math.Pi*toneHz*float64(s.pos)/sampleRate) * 6000)
		buf[i] = byte(v)
		buf[i+1] = byte(v >> 8)
		buf[i+2] = byte(v)
		buf[i+3] = byte(v >> 8)
		s.pos++
	}
	return n, nil
}

// Speaker is the demo stand-in for the audio subsystem: a looping tone
// whose player volume follows the shared volume value.
type Speaker struct {
	player *audio.Player
}

// NewSpeaker starts the tone at the given volume (0-100). Returns nil when
// no audio device is available; callers treat a nil Speaker as muted.
func NewSpeaker(volume int) *Speaker {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	player, err := ctx.NewPlayer(&toneStream{})
	if err != nil {
		log.Printf("Warning: Could not open audio player: %v", err)
		return nil
	}
	s := &Speaker{player: player}
	s.SetVolume(volume)
	player.Play()
	return s
}

// SetVolume maps the shared 0-100 volume onto the player.
func (s *Speaker) SetVolume(volume int) {
	if s == nil {
		return
	}
	if volume < 0 {
		volume = 0
	} else if volume > 100 {
		volume = 100
	}
	s.player.SetVolume(float64(volume) / 100)
}
