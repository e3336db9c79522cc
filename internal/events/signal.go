package events

import (
	"math"

	"github.com/davepl/brakelights/internal/strip"
)

// SignalStyle selects which end(s) of the strip a SignalEvent drives. It is
// fixed at construction.
type SignalStyle int

const (
	LeftTurn SignalStyle = iota + 1
	RightTurn
	Hazard
)

func (s SignalStyle) String() string {
	switch s {
	case LeftTurn:
		return "left"
	case RightTurn:
		return "right"
	case Hazard:
		return "hazard"
	}
	return "invalid"
}

// One signal cycle: bloom toward the vehicle center, hold, fade out from the
// tip backward, then stay dark until the cycle repeats.
const (
	signalBloomStart = 0.0
	signalBloomTime  = 0.50

	signalHoldStart = signalBloomStart + signalBloomTime
	signalHoldTime  = 0.25

	signalFadeStart = signalHoldStart + signalHoldTime
	signalFadeTime  = 0.125

	signalOffStart = signalFadeStart + signalFadeTime
	signalOffTime  = 0.25

	signalCycleTime = signalOffStart + signalOffTime
)

// SignalEvent handles left turns, right turns, and standard hazards (simply
// both signals at once) as a repeating sequential chase.
//
// The current phase is always recomputed from elapsed time modulo the cycle
// length; there is no stored phase variable, which keeps the animation
// restart-safe. Phase boundaries are checked from the end of the cycle
// backward so the overlapping comparisons resolve correctly.
type SignalEvent struct {
	base
	style SignalStyle
}

var _ Event = (*SignalEvent)(nil)

func NewSignal(s strip.Strip, clock Clock, geo Geometry, colors Palette, style SignalStyle) *SignalEvent {
	return &SignalEvent{
		base:  newBase(s, clock, geo, colors),
		style: style,
	}
}

func (e *SignalEvent) Style() SignalStyle {
	return e.style
}

func (e *SignalEvent) Draw() {
	if !e.Active() {
		return
	}

	cyclePosition := math.Mod(e.elapsedSeconds(), signalCycleTime)
	n := e.geo.SignalPixels

	if cyclePosition > signalOffStart {
		for i := 0; i < n; i++ {
			e.setTurnLED(i, e.colors.Black)
		}
	} else if cyclePosition > signalFadeStart {
		pctComplete := (cyclePosition - signalFadeStart) / signalFadeTime
		lit := n - int(float64(n)*pctComplete)
		for i := 0; i < n; i++ {
			if i < lit {
				e.setTurnLED(i, e.colors.Amber)
			} else {
				e.setTurnLED(i, e.colors.Black)
			}
		}
	} else if cyclePosition > signalHoldStart {
		for i := 0; i < n; i++ {
			e.setTurnLED(i, e.colors.Amber)
		}
	} else {
		if cyclePosition > signalBloomTime {
			// Boundary ordering should make this impossible; clamp rather
			// than fail since there is no error channel mid-animation.
			logger.With("cyclePosition", cyclePosition).Warn("Bloom phase position out of range - clamping")
			cyclePosition = signalBloomTime
		}
		pctComplete := cyclePosition / signalBloomTime
		lit := int(float64(n) * pctComplete)
		for i := 0; i < n; i++ {
			if i >= n-lit {
				e.setTurnLED(i, e.colors.Amber)
			} else {
				e.setTurnLED(i, e.colors.Black)
			}
		}
	}
	e.strip.Show()
}

// setTurnLED lights the i'th signal pixel on the end(s) of the strip matching
// the turn direction; hazards mirror the same index to both ends.
func (e *SignalEvent) setTurnLED(i int, c strip.Color) {
	if e.style == LeftTurn || e.style == Hazard {
		e.strip.SetPixelColor(i, c)
	}
	if e.style == RightTurn || e.style == Hazard {
		e.strip.SetPixelColor(e.geo.UsablePixels-1-i, c)
	}
}
