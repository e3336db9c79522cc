package events

import (
	"math"

	"github.com/davepl/brakelights/internal/strip"
)

// Time for the backup light to bloom from the center to the full strip.
const backupBloomTime = 0.25

// BackupEvent illuminates the whole strip in white, quickly blooming out from
// the center, then holds full white until End.
type BackupEvent struct {
	base
}

var _ Event = (*BackupEvent)(nil)

func NewBackup(s strip.Strip, clock Clock, geo Geometry, colors Palette) *BackupEvent {
	return &BackupEvent{base: newBase(s, clock, geo, colors)}
}

func (e *BackupEvent) Draw() {
	if !e.Active() {
		return
	}

	pctComplete := math.Min(e.elapsedSeconds()/backupBloomTime, 1.0)
	lit := int(float64(e.geo.UsablePixels) * pctComplete)
	first := e.geo.UsablePixels/2 - lit/2
	last := e.geo.UsablePixels/2 + lit/2

	for i := 0; i < e.geo.UsablePixels; i++ {
		if i < first || i > last {
			e.strip.SetPixelColor(i, e.colors.Black)
		} else {
			e.strip.SetPixelColor(i, e.colors.White)
		}
	}
	e.strip.Show()
}
