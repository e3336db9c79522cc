package events

import (
	"math"
	"time"

	"github.com/davepl/brakelights/internal/strip"
)

const (
	// How long the initial bloom-strobe phase lasts before going solid red.
	brakeStrobeDuration = 0.5
	// The bar starts at 10% width and blooms to full over brakeBloomTime.
	brakeBloomStart = 0.10
	brakeBloomTime  = 0.50

	brakeStrobeOnHold  = 30 * time.Millisecond
	brakeStrobeOffHold = 20 * time.Millisecond
)

// BrakingEvent blooms a red bar from 10% width to the full strip while
// strobing between bright and dark red, then holds solid red.
type BrakingEvent struct {
	base
}

var _ Event = (*BrakingEvent)(nil)

func NewBraking(s strip.Strip, clock Clock, geo Geometry, colors Palette) *BrakingEvent {
	return &BrakingEvent{base: newBase(s, clock, geo, colors)}
}

// Draw renders the braking animation. The strobe flash happens too fast to
// wait for the caller's frame loop, so during the strobe phase one Draw runs
// a full 50ms cycle here (30 on, 20 off). The strobe stays crisp and the
// caller is never blocked for more than 50ms.
func (e *BrakingEvent) Draw() {
	if !e.Active() {
		return
	}

	if e.elapsedSeconds() < brakeStrobeDuration {
		e.drawBloom(e.colors.Red)
		e.clock.Sleep(brakeStrobeOnHold)

		// The bloom percentage is recomputed at the now-later elapsed time so
		// the bar keeps growing between the two flashes.
		e.drawBloom(e.colors.DarkRed)
		e.clock.Sleep(brakeStrobeOffHold)
		return
	}

	for i := 0; i < e.geo.UsablePixels; i++ {
		e.strip.SetPixelColor(i, e.colors.Red)
	}
	e.strip.Show()
}

func (e *BrakingEvent) drawBloom(c strip.Color) {
	pctComplete := math.Min(1.0, e.elapsedSeconds()/brakeBloomTime+brakeBloomStart)
	unusedEachEnd := int((1.0 - pctComplete) * float64(e.geo.UsablePixels) / 2)

	for i := unusedEachEnd; i < e.geo.UsablePixels-unusedEachEnd; i++ {
		e.strip.SetPixelColor(i, c)
	}
	e.strip.Show()
}
