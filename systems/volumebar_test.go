package systems

import (
	"testing"

	"github.com/slabgames/replayhud/components"
)

// The volume track sits at x 270..350, y 450..468 with the test window.

func TestVolumeBarCommitsContinuously(t *testing.T) {
	withTestWindow(t)
	e := newTestECS()
	CreatePlayback(e, 0, 1000)

	var changes []int
	SetHooks(e, components.HooksData{
		OnVolumeChanged: func(v int) { changes = append(changes, v) },
	})

	audio := GetOrCreateAudio(e)
	audio.Volume = 30
	p := getOrCreatePointer(e)

	// Press at the midpoint of the track.
	p.Advance(310, 460, true)
	UpdateVolumeBar(e)
	if audio.Volume != 50 {
		t.Errorf("Volume = %d, want 50", audio.Volume)
	}
	if len(changes) != 1 || changes[0] != 50 {
		t.Fatalf("changes = %v, want [50]", changes)
	}

	// Holding still must not re-notify.
	p.Advance(310, 460, true)
	UpdateVolumeBar(e)
	if len(changes) != 1 {
		t.Errorf("unchanged frame notified: changes = %v", changes)
	}

	// Dragging to the right edge notifies again, before any release.
	p.Advance(350, 460, true)
	UpdateVolumeBar(e)
	if audio.Volume != 100 {
		t.Errorf("Volume = %d, want 100", audio.Volume)
	}
	if len(changes) != 2 || changes[1] != 100 {
		t.Errorf("changes = %v, want [50 100]", changes)
	}

	// Release is not an event for the volume bar.
	p.Advance(350, 460, false)
	UpdateVolumeBar(e)
	if len(changes) != 2 {
		t.Errorf("release notified: changes = %v", changes)
	}
}

func TestVolumeBarIgnoresPressOutsideTrack(t *testing.T) {
	withTestWindow(t)
	e := newTestECS()
	CreatePlayback(e, 0, 1000)

	audio := GetOrCreateAudio(e)
	audio.Volume = 30
	p := getOrCreatePointer(e)

	p.Advance(310, 100, true) // right x, wrong y
	UpdateVolumeBar(e)
	if audio.Volume != 30 {
		t.Errorf("Volume = %d, want 30 untouched", audio.Volume)
	}

	vb := getOrCreateVolumeBar(e)
	if vb.State.Held {
		t.Error("press outside the track must not start a drag")
	}
}
