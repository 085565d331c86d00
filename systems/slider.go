package systems

import (
	"math"

	"github.com/slabgames/replayhud/components"
)

// sliderAxis selects which screen axis a slider maps onto its value range.
type sliderAxis int

const (
	axisHorizontal sliderAxis = iota
	axisVertical
)

// rectF is an axis-aligned region in screen coordinates.
type rectF struct {
	X0, Y0, X1, Y1 float64
}

func (r rectF) contains(x, y float64) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

func (r rectF) span(axis sliderAxis) (lo, hi float64) {
	if axis == axisVertical {
		return r.Y0, r.Y1
	}
	return r.X0, r.X1
}

// sliderInput is the pointer sample a slider reacts to on one frame.
type sliderInput struct {
	X, Y    float64
	Pressed bool
}

// sliderResult reports what a single slider frame did.
type sliderResult struct {
	Hovered  bool
	Changed  bool // the shared value was rewritten this frame
	Released bool // held went true -> false this frame
	Value    int  // value under the pointer; valid while Hovered or held
}

// stepSlider advances one frame of direct-manipulation state for a slider.
//
// The hover region may be larger than the value track (the seek bar's
// sensitive strip extends above its drawn line). While the widget is held
// the pointer may leave both regions; the normalized position is clamped to
// [0,1] so the mapped value always stays inside [vMin, vMax]. The shared
// value is only rewritten while the primary button is down.
//
// power selects the value-mapping curve. Every current caller passes 1
// (pure linear); other exponents bend the normalized position before the
// linear mapping.
func stepSlider(state *components.SliderState, in sliderInput, hoverRect, barRect rectF,
	axis sliderAxis, v *int, vMin, vMax int, power float64) sliderResult {

	hovered := hoverRect.contains(in.X, in.Y)
	res := sliderResult{Hovered: hovered, Value: *v}

	if hovered || state.Held {
		lo, hi := barRect.span(axis)
		pos := in.X
		if axis == axisVertical {
			pos = in.Y
		}
		t := 0.0
		if hi > lo {
			t = (pos - lo) / (hi - lo)
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
		}
		if axis == axisVertical {
			t = 1 - t
		}

		newValue := mapSliderValue(t, vMin, vMax, power)
		res.Value = newValue
		if in.Pressed && newValue != *v {
			*v = newValue
			res.Changed = true
		}
	}

	if state.Held {
		state.Held = in.Pressed
		if !state.Held {
			res.Released = true
		}
	} else {
		state.Held = hovered && in.Pressed
	}

	return res
}

// mapSliderValue maps a normalized position to the value range, rounded to
// the nearest integer.
func mapSliderValue(t float64, vMin, vMax int, power float64) int {
	if power != 1 {
		t = math.Pow(t, power)
	}
	return vMin + int(math.Round(t*float64(vMax-vMin)))
}
