package osd

import (
	"fmt"
	"image/color"
	"sync"
	"testing"
)

var (
	white  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

func newTestStore() (*Store, *uint32) {
	now := uint32(10000)
	s := NewStoreWithClock(func() uint32 { return now })
	return s, &now
}

func TestMessageExpiry(t *testing.T) {
	s, now := newTestStore()
	added := *now
	s.AddMessage("hello", 500, white)

	if got := len(s.Sweep(added + 499)); got != 1 {
		t.Fatalf("expected message live at 499ms, got %d entries", got)
	}
	if got := len(s.Sweep(added + 500)); got != 0 {
		t.Fatalf("expected message expired at 500ms, got %d entries", got)
	}
	if s.Len() != 0 {
		t.Fatalf("expected expired message removed from store, got %d", s.Len())
	}
}

func TestTypedMessageReplaces(t *testing.T) {
	s, now := newTestStore()
	s.AddTypedMessage(VolumeLevel, "Volume: 40%", 2000, white)
	s.AddTypedMessage(VolumeLevel, "Volume: 55%", 2000, yellow)

	reqs := s.Sweep(*now + 1)
	if len(reqs) != 1 {
		t.Fatalf("expected exactly one live message, got %d", len(reqs))
	}
	if reqs[0].Text != "Volume: 55%" {
		t.Fatalf("expected last write to win, got %q", reqs[0].Text)
	}
	if reqs[0].Color != yellow {
		t.Fatalf("expected second message's color, got %v", reqs[0].Color)
	}
}

func TestTypelessMessagesAccumulate(t *testing.T) {
	s, now := newTestStore()
	s.AddMessage("first", 2000, white)
	s.AddMessage("second", 2000, white)
	s.AddTypedMessage(Typeless, "third", 2000, white)

	reqs := s.Sweep(*now + 1)
	if len(reqs) != 3 {
		t.Fatalf("expected all typeless messages live, got %d", len(reqs))
	}
	if reqs[0].Text != "first" || reqs[1].Text != "second" || reqs[2].Text != "third" {
		t.Fatalf("expected insertion order, got %v", reqs)
	}
}

func TestClearMessages(t *testing.T) {
	s, now := newTestStore()
	s.AddMessage("a", 5000, white)
	s.AddTypedMessage(PlaybackInfo, "b", 5000, white)
	s.ClearMessages()

	if got := len(s.Sweep(*now + 1)); got != 0 {
		t.Fatalf("expected empty sweep after clear, got %d entries", got)
	}
}

func TestSweepFadeAlpha(t *testing.T) {
	s, now := newTestStore()
	added := *now
	s.AddMessage("fading", 2048, white)

	cases := []struct {
		at   uint32
		want float64
	}{
		{added + 1, 1.0},           // plenty of time left, clamped to 1
		{added + 2048 - 1024, 1.0}, // exactly at the fade window edge
		{added + 2048 - 512, 0.5},  // halfway through the fade window
		{added + 2048 - 256, 0.25}, // three quarters faded
	}
	for _, c := range cases {
		reqs := s.Sweep(c.at)
		if len(reqs) != 1 {
			t.Fatalf("at %d: expected one live message, got %d", c.at, len(reqs))
		}
		if reqs[0].Alpha != c.want {
			t.Fatalf("at %d: expected alpha %v, got %v", c.at, c.want, reqs[0].Alpha)
		}
	}
}

func TestConcurrentProducers(t *testing.T) {
	s, now := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.AddMessage(fmt.Sprintf("g%d-%d", n, j), 5000, white)
				s.AddTypedMessage(SeekInfo, "seek", 5000, white)
			}
		}(i)
	}
	wg.Wait()

	// 800 typeless messages plus exactly one SeekInfo survivor.
	if got := len(s.Sweep(*now + 1)); got != 801 {
		t.Fatalf("expected 801 live messages, got %d", got)
	}
}
