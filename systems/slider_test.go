package systems

import (
	"testing"

	"github.com/slabgames/replayhud/components"
)

func TestMapSliderValueLinear(t *testing.T) {
	cases := []struct {
		t    float64
		want int
	}{
		{0, 0},
		{0.5, 500},
		{1, 1000},
		{0.2494, 249}, // rounds down
		{0.2496, 250}, // rounds up
	}
	for _, c := range cases {
		if got := mapSliderValue(c.t, 0, 1000, 1); got != c.want {
			t.Errorf("mapSliderValue(%v) = %d, want %d", c.t, got, c.want)
		}
	}
}

func TestMapSliderValueOffsetRange(t *testing.T) {
	if got := mapSliderValue(0.5, 100, 300, 1); got != 200 {
		t.Errorf("mapSliderValue(0.5, 100, 300) = %d, want 200", got)
	}
}

func TestStepSliderWritesOnlyWhilePressed(t *testing.T) {
	state := &components.SliderState{}
	bar := rectF{X0: 0, Y0: 90, X1: 100, Y1: 100}
	v := 10

	// Hovering without the button down previews but does not write.
	res := stepSlider(state, sliderInput{X: 50, Y: 95, Pressed: false},
		bar, bar, axisHorizontal, &v, 0, 100, 1)
	if !res.Hovered {
		t.Fatal("expected hover")
	}
	if res.Value != 50 {
		t.Errorf("preview value = %d, want 50", res.Value)
	}
	if v != 10 || res.Changed {
		t.Errorf("value written without press: v=%d changed=%v", v, res.Changed)
	}

	// Pressing writes.
	res = stepSlider(state, sliderInput{X: 50, Y: 95, Pressed: true},
		bar, bar, axisHorizontal, &v, 0, 100, 1)
	if v != 50 || !res.Changed {
		t.Errorf("press did not write: v=%d changed=%v", v, res.Changed)
	}
	if !state.Held {
		t.Error("expected held after press inside hover region")
	}
}

func TestStepSliderClampsOutsideTrack(t *testing.T) {
	state := &components.SliderState{Held: true}
	bar := rectF{X0: 0, Y0: 90, X1: 100, Y1: 100}
	v := 50

	// Held drag far past the right edge pins the value to the max.
	stepSlider(state, sliderInput{X: 5000, Y: 400, Pressed: true},
		bar, bar, axisHorizontal, &v, 0, 100, 1)
	if v != 100 {
		t.Errorf("v = %d, want 100 when dragged past the right edge", v)
	}
	if !state.Held {
		t.Error("drag should stay held while the button is down")
	}

	// And far past the left edge pins to the min.
	stepSlider(state, sliderInput{X: -5000, Y: 400, Pressed: true},
		bar, bar, axisHorizontal, &v, 0, 100, 1)
	if v != 0 {
		t.Errorf("v = %d, want 0 when dragged past the left edge", v)
	}
}

func TestStepSliderReleaseReported(t *testing.T) {
	state := &components.SliderState{Held: true}
	bar := rectF{X0: 0, Y0: 90, X1: 100, Y1: 100}
	v := 50

	res := stepSlider(state, sliderInput{X: 70, Y: 95, Pressed: false},
		bar, bar, axisHorizontal, &v, 0, 100, 1)
	if !res.Released {
		t.Fatal("expected release on held -> !pressed")
	}
	if state.Held {
		t.Error("state should no longer be held")
	}
	if v != 50 {
		t.Errorf("release frame must not write the value, got %d", v)
	}

	// A later frame with no press and no hover reports nothing.
	res = stepSlider(state, sliderInput{X: 500, Y: 500, Pressed: false},
		bar, bar, axisHorizontal, &v, 0, 100, 1)
	if res.Released || res.Hovered || res.Changed {
		t.Errorf("idle frame reported activity: %+v", res)
	}
}

func TestStepSliderVerticalInverted(t *testing.T) {
	state := &components.SliderState{}
	bar := rectF{X0: 0, Y0: 0, X1: 10, Y1: 100}
	v := 0

	// Pointer near the top of a vertical slider maps to the high end.
	stepSlider(state, sliderInput{X: 5, Y: 10, Pressed: true},
		bar, bar, axisVertical, &v, 0, 100, 1)
	if v != 90 {
		t.Errorf("v = %d, want 90 near the top of a vertical track", v)
	}
}
