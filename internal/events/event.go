// Package events renders time-based light animations onto an addressable LED
// strip to signal vehicle states: braking, backing up, turn signals/hazards,
// and a police-style alternating pattern.
//
// Each event is a small state machine keyed off elapsed time since Begin:
// Draw maps "now" to a pixel frame and flushes it, so animations are
// restart-safe and need no stored phase. The caller activates one event at a
// time, calls Draw once per frame tick, and Ends it to blank the strip.
package events

import (
	"github.com/davepl/brakelights/internal/logging"
	"github.com/davepl/brakelights/internal/strip"
)

var logger = logging.New("events")

// Event is the capability every animation exposes. Draw must be a no-op with
// zero strip writes while the event is inactive.
type Event interface {
	// Begin activates the event and re-arms its animation from the start
	// phase, even if it is already active.
	Begin()
	// End deactivates the event, blanks all usable pixels and flushes once.
	End()
	// Draw renders the animation state for the current instant. Braking and
	// police bar draws block the caller (~50ms and the full table duration
	// respectively) to keep their strobe cadence accurate.
	Draw()
	Active() bool
}

// Palette is the immutable color bundle injected at construction.
type Palette struct {
	Black   strip.Color
	White   strip.Color
	Red     strip.Color
	DarkRed strip.Color
	Blue    strip.Color
	Amber   strip.Color
}

func DefaultPalette() Palette {
	return Palette{
		Black:   strip.RGB(0x00, 0x00, 0x00),
		White:   strip.RGB(0xFF, 0xFF, 0xFF),
		Red:     strip.RGB(0xFF, 0x00, 0x00),
		DarkRed: strip.RGB(0x20, 0x00, 0x00),
		Blue:    strip.RGB(0x00, 0x00, 0xFF),
		Amber:   strip.RGB(0xFF, 0x99, 0x00),
	}
}

// Geometry describes the usable strip and the sub-range reserved at each end
// for turn signals.
type Geometry struct {
	UsablePixels int
	SignalPixels int
}

// normalized clamps SignalPixels so left and right signals never overlap.
func (g Geometry) normalized() Geometry {
	if g.UsablePixels < 0 {
		g.UsablePixels = 0
	}
	if max := g.UsablePixels / 2; g.SignalPixels > max {
		g.SignalPixels = max
	}
	if g.SignalPixels < 0 {
		g.SignalPixels = 0
	}
	return g
}

// base carries the lifecycle bookkeeping shared by all animations. The strip
// reference is non-owning; its lifetime exceeds any event.
type base struct {
	strip       strip.Strip
	clock       Clock
	geo         Geometry
	colors      Palette
	startMillis uint32
	active      bool
}

func newBase(s strip.Strip, clock Clock, geo Geometry, colors Palette) base {
	return base{
		strip:  s,
		clock:  clock,
		geo:    geo.normalized(),
		colors: colors,
	}
}

func (b *base) Begin() {
	b.active = true
	b.startMillis = b.clock.Millis()
}

func (b *base) End() {
	b.active = false
	for i := 0; i < b.geo.UsablePixels; i++ {
		b.strip.SetPixelColor(i, b.colors.Black)
	}
	b.strip.Show()
}

func (b *base) Active() bool {
	return b.active
}

// elapsedSeconds is only meaningful while active; Draw implementations guard
// with an Active check first.
func (b *base) elapsedSeconds() float64 {
	return float64(b.clock.Millis()-b.startMillis) / 1000.0
}
