package events

import (
	"time"

	"github.com/davepl/brakelights/internal/strip"
)

const policeSections = 8

type policeBarRow struct {
	sections [policeSections]strip.Color
	hold     time.Duration
}

// PoliceBarEvent breaks the strip into 8 equal sections and alternates
// red/blue/white patterns from a fixed 11-row table.
//
// Unlike the other events, Draw is not a render-current-instant call: one
// invocation plays the full table back synchronously, flushing and holding
// per row, and the next invocation restarts from row 0 irrespective of
// elapsed time. The caller is blocked for the whole table duration.
type PoliceBarEvent struct {
	base
	rows []policeBarRow
}

var _ Event = (*PoliceBarEvent)(nil)

func NewPoliceBar(s strip.Strip, clock Clock, geo Geometry, colors Palette) *PoliceBarEvent {
	return &PoliceBarEvent{
		base: newBase(s, clock, geo, colors),
		rows: policeBarRows(colors),
	}
}

func (e *PoliceBarEvent) Draw() {
	if !e.Active() {
		return
	}

	sectionSize := e.geo.UsablePixels / policeSections
	if sectionSize < 1 {
		sectionSize = 1
	}

	for _, row := range e.rows {
		for i := 0; i < e.geo.UsablePixels; i++ {
			section := i / sectionSize
			if section >= policeSections {
				// the final section absorbs any remainder pixels
				section = policeSections - 1
			}
			e.strip.SetPixelColor(i, row.sections[section])
		}
		e.strip.Show()
		e.clock.Sleep(row.hold)
	}
}

func policeBarRows(colors Palette) []policeBarRow {
	r, b, w := colors.Red, colors.Blue, colors.White
	return []policeBarRow{
		{sections: [policeSections]strip.Color{b, b, r, r, b, b, r, r}, hold: 200 * time.Millisecond},
		{sections: [policeSections]strip.Color{r, r, b, b, r, r, b, b}, hold: 200 * time.Millisecond},
		{sections: [policeSections]strip.Color{w, b, r, r, b, b, r, r}, hold: 20 * time.Millisecond},
		{sections: [policeSections]strip.Color{b, b, r, r, b, b, r, w}, hold: 20 * time.Millisecond},
		{sections: [policeSections]strip.Color{b, w, r, r, b, b, r, r}, hold: 20 * time.Millisecond},
		{sections: [policeSections]strip.Color{b, b, r, r, b, b, w, r}, hold: 20 * time.Millisecond},
		{sections: [policeSections]strip.Color{b, b, w, r, b, b, r, r}, hold: 20 * time.Millisecond},
		{sections: [policeSections]strip.Color{b, b, r, r, b, w, r, r}, hold: 20 * time.Millisecond},
		{sections: [policeSections]strip.Color{b, b, r, w, b, b, r, r}, hold: 20 * time.Millisecond},
		{sections: [policeSections]strip.Color{b, b, r, r, w, b, r, r}, hold: 20 * time.Millisecond},
		{sections: [policeSections]strip.Color{r, r, b, b, r, r, b, b}, hold: 200 * time.Millisecond},
	}
}
