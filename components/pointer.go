package components

import "github.com/yohamta/donburi"

// PointerData is the per-frame pointer sample every widget reacts to.
// It is written once per frame by the pointer system so widget systems
// and tests never poll the input device directly.
type PointerData struct {
	X, Y         float64
	Pressed      bool // Primary button currently down
	JustPressed  bool // Went down this frame
	JustReleased bool // Went up this frame

	prevPressed bool
}

// Advance folds a new sample into the pointer state, deriving
// the edge-triggered flags from the previous frame.
func (p *PointerData) Advance(x, y float64, pressed bool) {
	p.X, p.Y = x, y
	p.JustPressed = pressed && !p.prevPressed
	p.JustReleased = !pressed && p.prevPressed
	p.Pressed = pressed
	p.prevPressed = pressed
}

var Pointer = donburi.NewComponentType[PointerData]()
