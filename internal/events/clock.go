package events

import (
	"time"
)

// Clock supplies monotonic milliseconds since process start and the blocking
// waits the strobe animations use. Elapsed-time math is done with unsigned
// subtraction so a 32-bit wraparound still yields the right delta.
type Clock interface {
	Millis() uint32
	Sleep(d time.Duration)
}

type wallClock struct {
	start time.Time
}

func NewWallClock() Clock {
	return &wallClock{start: time.Now()}
}

func (c *wallClock) Millis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

func (c *wallClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
