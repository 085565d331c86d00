// Package osd holds transient on-screen messages for the overlay renderer.
// Adding and clearing messages is safe from any goroutine; sweeping the
// store for drawing must happen on the render thread, once per frame.
package osd

import (
	"image/color"
	"sync"
	"time"
)

// MessageType partitions messages into replace-on-write categories.
// Every category except Typeless keeps at most one live message;
// Typeless messages accumulate independently.
type MessageType int

const (
	Typeless MessageType = iota
	PlaybackInfo
	SeekInfo
	VolumeLevel

	messageTypeCount
)

// fadeWindowMS is how long before expiry a message starts fading out.
const fadeWindowMS = 1024

// Message is a single on-screen notification. The store owns all Message
// values; callers only ever see copies through DrawRequest.
type Message struct {
	Text   string
	Expiry uint32 // monotonic ms
	Color  color.RGBA
}

// DrawRequest is one entry of the per-frame draw list produced by Sweep.
type DrawRequest struct {
	Text  string
	Color color.RGBA
	Alpha float64 // 0..1, fades near expiry
}

// Store is a thread-safe container of live messages keyed by category.
type Store struct {
	mu   sync.Mutex
	now  func() uint32
	msgs map[MessageType][]Message
}

// NewStore creates a store using the process-monotonic millisecond clock.
func NewStore() *Store {
	return NewStoreWithClock(TimeMS)
}

// NewStoreWithClock creates a store with an injected clock, for tests and
// hosts that already own a monotonic timer.
func NewStoreWithClock(now func() uint32) *Store {
	return &Store{
		now:  now,
		msgs: map[MessageType][]Message{},
	}
}

// AddTypedMessage inserts a message under the given category. For any
// category other than Typeless the previous message of that category is
// replaced.
func (s *Store) AddTypedMessage(t MessageType, text string, ms uint32, clr color.RGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := Message{Text: text, Expiry: s.now() + ms, Color: clr}
	if t == Typeless {
		s.msgs[t] = append(s.msgs[t], m)
		return
	}
	s.msgs[t] = []Message{m}
}

// AddMessage inserts a Typeless message. Typeless messages are never
// deduplicated, so several may be live at the same time.
func (s *Store) AddMessage(text string, ms uint32, clr color.RGBA) {
	s.AddTypedMessage(Typeless, text, ms, clr)
}

// ClearMessages empties the store unconditionally.
func (s *Store) ClearMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = map[MessageType][]Message{}
}

// Sweep removes expired messages and returns the draw list for this frame,
// in category order. It is the once-per-frame tick and must only be called
// from the render thread.
func (s *Store) Sweep(now uint32) []DrawRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	var reqs []DrawRequest
	for t := MessageType(0); t < messageTypeCount; t++ {
		bucket, ok := s.msgs[t]
		if !ok {
			continue
		}
		live := bucket[:0]
		for _, m := range bucket {
			// Wraparound-safe: expiry and now are both u32 ms.
			timeLeft := int32(m.Expiry - now)
			if timeLeft <= 0 {
				continue
			}
			live = append(live, m)
			alpha := float64(timeLeft) / fadeWindowMS
			if alpha > 1 {
				alpha = 1
			}
			reqs = append(reqs, DrawRequest{Text: m.Text, Color: m.Color, Alpha: alpha})
		}
		if len(live) == 0 {
			delete(s.msgs, t)
		} else {
			s.msgs[t] = live
		}
	}
	return reqs
}

// Len reports the number of live messages without expiring any.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, bucket := range s.msgs {
		n += len(bucket)
	}
	return n
}

var processStart = time.Now()

// TimeMS is the default monotonic millisecond clock, measured from process
// start so it comfortably fits u32 arithmetic.
func TimeMS() uint32 {
	return uint32(time.Since(processStart).Milliseconds())
}

// std is the process-wide store collaborators post to.
var std = NewStore()

// AddMessage posts a Typeless message to the process-wide store.
func AddMessage(text string, ms uint32, clr color.RGBA) {
	std.AddMessage(text, ms, clr)
}

// AddTypedMessage posts a categorized message to the process-wide store.
func AddTypedMessage(t MessageType, text string, ms uint32, clr color.RGBA) {
	std.AddTypedMessage(t, text, ms, clr)
}

// ClearMessages empties the process-wide store.
func ClearMessages() {
	std.ClearMessages()
}

// Sweep ticks the process-wide store. Render thread only.
func Sweep(now uint32) []DrawRequest {
	return std.Sweep(now)
}
