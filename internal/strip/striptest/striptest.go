// Package striptest provides an in-memory pixel sink that records every
// write and snapshots the buffer on each flush, for asserting on exactly
// what an animation pushed to the strip.
package striptest

import (
	"github.com/davepl/brakelights/internal/strip"
)

type Write struct {
	Index int
	Color strip.Color
}

type Recorder struct {
	buffer []strip.Color
	Writes []Write
	Frames [][]strip.Color
}

var _ strip.Strip = (*Recorder)(nil)

func New(pixels int) *Recorder {
	return &Recorder{
		buffer: make([]strip.Color, pixels),
	}
}

func (r *Recorder) SetPixelColor(i int, c strip.Color) {
	r.Writes = append(r.Writes, Write{Index: i, Color: c})
	if i >= 0 && i < len(r.buffer) {
		r.buffer[i] = c
	}
}

func (r *Recorder) Show() {
	frame := make([]strip.Color, len(r.buffer))
	copy(frame, r.buffer)
	r.Frames = append(r.Frames, frame)
}

// Shows reports how many times the buffer was flushed.
func (r *Recorder) Shows() int {
	return len(r.Frames)
}

// LastFrame returns the buffer contents at the most recent flush, or nil if
// the strip was never flushed.
func (r *Recorder) LastFrame() []strip.Color {
	if len(r.Frames) == 0 {
		return nil
	}
	return r.Frames[len(r.Frames)-1]
}

// Pixel returns the current (possibly unflushed) buffer value.
func (r *Recorder) Pixel(i int) strip.Color {
	return r.buffer[i]
}

// Touched reports whether any write ever targeted pixel i.
func (r *Recorder) Touched(i int) bool {
	for _, w := range r.Writes {
		if w.Index == i {
			return true
		}
	}
	return false
}

// Reset clears recorded writes and frames but keeps the current buffer.
func (r *Recorder) Reset() {
	r.Writes = nil
	r.Frames = nil
}
