package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davepl/brakelights/internal/events"
	"github.com/davepl/brakelights/internal/strip/striptest"
)

func drawLeftSignalAt(t *testing.T, millis uint32) *striptest.Recorder {
	t.Helper()
	clock := &manualClock{}
	recorder := striptest.New(testPixels)
	ev := events.NewSignal(recorder, clock, testGeometry(), events.DefaultPalette(), events.LeftTurn)

	ev.Begin()
	clock.ms = millis
	ev.Draw()
	require.Equal(t, 1, recorder.Shows())
	return recorder
}

func TestSignal_LeftTurnCycle(t *testing.T) {
	colors := events.DefaultPalette()

	tests := []struct {
		name      string
		millis    uint32
		wantAmber []int
	}{
		{name: "bloom start", millis: 0, wantAmber: nil},
		{name: "bloom quarter", millis: 250, wantAmber: []int{2, 3}},
		{name: "bloom nearly full", millis: 499, wantAmber: []int{1, 2, 3}},
		// the exact phase boundary still resolves to the bloom branch, fully
		// lit; positions past the bloom time land in the hold comparison
		// first, so the bloom clamp can never fire through this API
		{name: "bloom boundary", millis: 500, wantAmber: []int{0, 1, 2, 3}},
		{name: "hold start", millis: 501, wantAmber: []int{0, 1, 2, 3}},
		{name: "hold", millis: 600, wantAmber: []int{0, 1, 2, 3}},
		{name: "fade half", millis: 813, wantAmber: []int{0, 1}},
		{name: "off", millis: 1000, wantAmber: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := drawLeftSignalAt(t, tt.millis)

			amber := make(map[int]bool, len(tt.wantAmber))
			for _, i := range tt.wantAmber {
				amber[i] = true
			}
			frame := recorder.LastFrame()
			for i := 0; i < testSignalPixels; i++ {
				if amber[i] {
					assert.Equalf(t, colors.Amber, frame[i], "signal pixel %d should be amber", i)
				} else {
					assert.Equalf(t, colors.Black, frame[i], "signal pixel %d should be off", i)
				}
			}

			// a left signal never touches the mirrored end of the strip
			for i := testSignalPixels; i < testPixels; i++ {
				assert.Falsef(t, recorder.Touched(i), "pixel %d should be untouched", i)
			}
		})
	}
}

func TestSignal_CycleRepeats(t *testing.T) {
	first := drawLeftSignalAt(t, 600)
	second := drawLeftSignalAt(t, 600+1125)

	assert.Equal(t, first.LastFrame(), second.LastFrame())
}

func TestSignal_FadeShrinksToZero(t *testing.T) {
	colors := events.DefaultPalette()

	var prevLit int = testSignalPixels
	for _, millis := range []uint32{760, 790, 820, 850, 875} {
		recorder := drawLeftSignalAt(t, millis)

		lit := 0
		for _, c := range recorder.LastFrame()[:testSignalPixels] {
			if c == colors.Amber {
				lit++
			}
		}
		assert.LessOrEqualf(t, lit, prevLit, "lit count grew during fade at %dms", millis)
		prevLit = lit
	}
	assert.Zero(t, prevLit)
}

func TestSignal_RightTurnMirrors(t *testing.T) {
	colors := events.DefaultPalette()
	clock := &manualClock{}
	recorder := striptest.New(testPixels)
	ev := events.NewSignal(recorder, clock, testGeometry(), colors, events.RightTurn)

	ev.Begin()
	clock.ms = 600 // hold phase
	ev.Draw()

	frame := recorder.LastFrame()
	for i := 0; i < testSignalPixels; i++ {
		assert.Equalf(t, colors.Amber, frame[testPixels-1-i], "mirrored pixel %d should be amber", testPixels-1-i)
		assert.Falsef(t, recorder.Touched(i), "pixel %d should be untouched", i)
	}
}

func TestSignal_HazardMirrorsBothEnds(t *testing.T) {
	for _, millis := range []uint32{0, 250, 499, 600, 813, 1000} {
		clock := &manualClock{}
		recorder := striptest.New(testPixels)
		ev := events.NewSignal(recorder, clock, testGeometry(), events.DefaultPalette(), events.Hazard)

		ev.Begin()
		clock.ms = millis
		ev.Draw()

		frame := recorder.LastFrame()
		for i := 0; i < testSignalPixels; i++ {
			assert.Equalf(t, frame[i], frame[testPixels-1-i],
				"hazard ends differ at %dms (pixel %d vs %d)", millis, i, testPixels-1-i)
		}
	}
}

func TestSignal_StyleString(t *testing.T) {
	assert.Equal(t, "left", events.LeftTurn.String())
	assert.Equal(t, "right", events.RightTurn.String())
	assert.Equal(t, "hazard", events.Hazard.String())
	assert.Equal(t, "invalid", events.SignalStyle(0).String())
}
