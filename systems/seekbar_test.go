package systems

import (
	"testing"

	"github.com/slabgames/replayhud/components"
	cfg "github.com/slabgames/replayhud/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// withTestWindow pins the window size so widget geometry is predictable:
// the seek hover strip covers y 405..430 and the track spans x 0..1000.
func withTestWindow(t *testing.T) {
	t.Helper()
	old := cfg.C
	cfg.C = &cfg.Config{Width: 1000, Height: 500}
	t.Cleanup(func() { cfg.C = old })
}

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestSeekBarCommitsOnReleaseOnly(t *testing.T) {
	withTestWindow(t)
	e := newTestECS()
	pb := CreatePlayback(e, 100, 1000)

	seeks := 0
	SetHooks(e, components.HooksData{OnSeek: func() { seeks++ }})

	p := getOrCreatePointer(e)

	// Press inside the hover strip at 20% of the track width.
	p.Advance(200, 410, true)
	UpdateSeekBar(e)

	sb := getOrCreateSeekBar(e)
	if !sb.State.Held {
		t.Fatal("press inside the hover strip should start a drag")
	}
	if sb.Value != 200 {
		t.Errorf("drag value = %d, want 200", sb.Value)
	}
	if pb.SeekPending() {
		t.Error("seek must not commit while the drag is in progress")
	}
	if seeks != 0 {
		t.Errorf("seek hook fired %d times during drag, want 0", seeks)
	}

	// Drag further, still held.
	p.Advance(600, 200, true)
	UpdateSeekBar(e)
	if sb.Value != 600 {
		t.Errorf("drag value = %d, want 600 (drag may leave the strip)", sb.Value)
	}
	if seeks != 0 {
		t.Errorf("seek hook fired %d times during drag, want 0", seeks)
	}

	// Release commits exactly once.
	p.Advance(600, 200, false)
	UpdateSeekBar(e)
	if pb.TargetFrame != 600 {
		t.Errorf("TargetFrame = %d, want 600", pb.TargetFrame)
	}
	if seeks != 1 {
		t.Errorf("seek hook fired %d times, want 1", seeks)
	}

	// Nothing further once the pointer idles.
	p.Advance(600, 200, false)
	UpdateSeekBar(e)
	if seeks != 1 {
		t.Errorf("seek hook fired %d times after release, want 1", seeks)
	}
}

func TestSeekBarTracksPlaybackWhileIdle(t *testing.T) {
	withTestWindow(t)
	e := newTestECS()
	pb := CreatePlayback(e, 250, 1000)

	p := getOrCreatePointer(e)
	p.Advance(500, 50, false) // far from the bar
	UpdateSeekBar(e)

	sb := getOrCreateSeekBar(e)
	if sb.Value != 250 {
		t.Errorf("idle value = %d, want the playback position 250", sb.Value)
	}

	// With a seek pending, the displayed value is the target instead.
	pb.TargetFrame = 800
	UpdateSeekBar(e)
	if sb.Value != 800 {
		t.Errorf("idle value = %d, want the pending target 800", sb.Value)
	}
}

func TestSeekBarHoverPreviewDoesNotWrite(t *testing.T) {
	withTestWindow(t)
	e := newTestECS()
	pb := CreatePlayback(e, 100, 1000)

	p := getOrCreatePointer(e)
	p.Advance(300, 410, false)
	UpdateSeekBar(e)

	sb := getOrCreateSeekBar(e)
	if !sb.Hovered {
		t.Fatal("expected hover inside the sensitive strip")
	}
	if sb.HoverValue != 300 {
		t.Errorf("HoverValue = %d, want 300", sb.HoverValue)
	}
	if sb.Value != 100 {
		t.Errorf("Value = %d, want the untouched playback position 100", sb.Value)
	}
	if pb.SeekPending() {
		t.Error("hover alone must not request a seek")
	}
}
