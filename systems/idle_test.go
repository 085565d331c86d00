package systems

import (
	"testing"
)

func TestIdleFadeAfterGracePeriod(t *testing.T) {
	withTestWindow(t)
	e := newTestECS()

	now := uint32(0)
	clock := getOrCreateClock(e)
	clock.Now = func() uint32 { return now }

	p := getOrCreatePointer(e)
	p.Advance(500, 50, false)
	UpdateIdle(e)

	tr := getOrCreateTransport(e)
	if tr.SurfaceAlpha != 1 {
		t.Errorf("SurfaceAlpha = %v, want 1 right after activity", tr.SurfaceAlpha)
	}

	// Inside the grace period nothing fades.
	now = 900
	UpdateIdle(e)
	if tr.SurfaceAlpha != 1 {
		t.Errorf("SurfaceAlpha = %v, want 1 inside the grace period", tr.SurfaceAlpha)
	}

	// Halfway through the fade window.
	now = 1500
	UpdateIdle(e)
	if tr.SurfaceAlpha != 0.5 {
		t.Errorf("SurfaceAlpha = %v, want 0.5 halfway through the fade", tr.SurfaceAlpha)
	}

	// Past the grace period plus the full fade window the alpha floors
	// instead of reaching zero.
	now = 2024
	UpdateIdle(e)
	if tr.SurfaceAlpha != 0.0001 {
		t.Errorf("SurfaceAlpha = %v, want the 0.0001 floor", tr.SurfaceAlpha)
	}

	// And it stays there indefinitely.
	now = 60000
	UpdateIdle(e)
	if tr.SurfaceAlpha != 0.0001 {
		t.Errorf("SurfaceAlpha = %v, want the 0.0001 floor", tr.SurfaceAlpha)
	}

	// Any pointer movement snaps the surface back.
	p.Advance(501, 50, false)
	UpdateIdle(e)
	if tr.SurfaceAlpha != 1 {
		t.Errorf("SurfaceAlpha = %v, want 1 after pointer movement", tr.SurfaceAlpha)
	}
}

func TestIdleFadeHeldOffWhileFocused(t *testing.T) {
	withTestWindow(t)
	e := newTestECS()

	now := uint32(0)
	clock := getOrCreateClock(e)
	clock.Now = func() uint32 { return now }

	p := getOrCreatePointer(e)
	p.Advance(500, 50, false)
	UpdateIdle(e)

	tr := getOrCreateTransport(e)

	// An open help panel pins the surface fully visible no matter how long
	// the pointer has been still.
	tr.ShowHelp = true
	now = 60000
	UpdateIdle(e)
	if tr.SurfaceAlpha != 1 {
		t.Errorf("SurfaceAlpha = %v, want 1 with help open", tr.SurfaceAlpha)
	}
	tr.ShowHelp = false

	// A held seek drag does the same.
	sb := getOrCreateSeekBar(e)
	sb.State.Held = true
	UpdateIdle(e)
	if tr.SurfaceAlpha != 1 {
		t.Errorf("SurfaceAlpha = %v, want 1 during a seek drag", tr.SurfaceAlpha)
	}
	sb.State.Held = false

	// Without either, the same timestamp fades the surface out.
	UpdateIdle(e)
	if tr.SurfaceAlpha != 0.0001 {
		t.Errorf("SurfaceAlpha = %v, want the floor when unfocused", tr.SurfaceAlpha)
	}
}
