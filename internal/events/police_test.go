package events_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davepl/brakelights/internal/events"
	"github.com/davepl/brakelights/internal/strip"
	"github.com/davepl/brakelights/internal/strip/striptest"
)

func expectedPoliceRows(colors events.Palette) [][8]strip.Color {
	r, b, w := colors.Red, colors.Blue, colors.White
	return [][8]strip.Color{
		{b, b, r, r, b, b, r, r},
		{r, r, b, b, r, r, b, b},
		{w, b, r, r, b, b, r, r},
		{b, b, r, r, b, b, r, w},
		{b, w, r, r, b, b, r, r},
		{b, b, r, r, b, b, w, r},
		{b, b, w, r, b, b, r, r},
		{b, b, r, r, b, w, r, r},
		{b, b, r, w, b, b, r, r},
		{b, b, r, r, w, b, r, r},
		{r, r, b, b, r, r, b, b},
	}
}

func expectedPoliceHolds() []time.Duration {
	return []time.Duration{
		200 * time.Millisecond,
		200 * time.Millisecond,
		20 * time.Millisecond,
		20 * time.Millisecond,
		20 * time.Millisecond,
		20 * time.Millisecond,
		20 * time.Millisecond,
		20 * time.Millisecond,
		20 * time.Millisecond,
		20 * time.Millisecond,
		200 * time.Millisecond,
	}
}

func TestPoliceBar_PlaysFullTablePerDraw(t *testing.T) {
	colors := events.DefaultPalette()
	clock := &manualClock{}
	recorder := striptest.New(testPixels)
	ev := events.NewPoliceBar(recorder, clock, testGeometry(), colors)

	ev.Begin()
	ev.Draw()

	require.Equal(t, 11, recorder.Shows())
	assert.Equal(t, expectedPoliceHolds(), clock.slept)

	// 16 usable pixels over 8 sections: pixels 0-1 take section 0's color,
	// pixels 14-15 take section 7's
	for row, frame := range recorder.Frames {
		want := expectedPoliceRows(colors)[row]
		for i, c := range frame {
			assert.Equalf(t, want[i/2], c, "row %d pixel %d", row, i)
		}
	}
}

func TestPoliceBar_DrawRestartsSequence(t *testing.T) {
	colors := events.DefaultPalette()
	clock := &manualClock{}
	recorder := striptest.New(testPixels)
	ev := events.NewPoliceBar(recorder, clock, testGeometry(), colors)

	ev.Begin()
	ev.Draw()
	clock.ms += 5000 // elapsed time is irrelevant to playback
	ev.Draw()

	require.Equal(t, 22, recorder.Shows())
	assert.Equal(t, recorder.Frames[0], recorder.Frames[11])
}

func TestPoliceBar_FinalSectionAbsorbsRemainder(t *testing.T) {
	colors := events.DefaultPalette()
	clock := &manualClock{}
	pixels := 20 // sectionSize 2, pixels 16-19 overflow into section 7
	recorder := striptest.New(pixels)
	geo := events.Geometry{UsablePixels: pixels, SignalPixels: 4}
	ev := events.NewPoliceBar(recorder, clock, geo, colors)

	ev.Begin()
	ev.Draw()

	want := expectedPoliceRows(colors)
	for row, frame := range recorder.Frames {
		for i := 16; i < pixels; i++ {
			assert.Equalf(t, want[row][7], frame[i], "row %d pixel %d should take the final section color", row, i)
		}
	}
}

func TestPoliceBar_TinyStrip(t *testing.T) {
	colors := events.DefaultPalette()
	clock := &manualClock{}
	pixels := 4 // fewer pixels than sections
	recorder := striptest.New(pixels)
	geo := events.Geometry{UsablePixels: pixels, SignalPixels: 1}
	ev := events.NewPoliceBar(recorder, clock, geo, colors)

	ev.Begin()
	ev.Draw()

	// floor division would give a zero section size; each pixel maps to one
	// section instead of dividing by zero
	require.Equal(t, 11, recorder.Shows())
	want := expectedPoliceRows(colors)
	for row, frame := range recorder.Frames {
		for i, c := range frame {
			assert.Equalf(t, want[row][i], c, "row %d pixel %d", row, i)
		}
	}
}
