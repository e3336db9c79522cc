package vehicle

import (
	"go.uber.org/zap"

	"github.com/davepl/brakelights/internal/events"
	"github.com/davepl/brakelights/internal/strip"
)

// State is a snapshot of the vehicle inputs the light bar reacts to.
type State struct {
	Brake     bool
	Reverse   bool
	LeftTurn  bool
	RightTurn bool
	Hazard    bool
	Police    bool
}

// Controller owns one instance of each lighting event and keeps exactly one
// active at a time. Events are constructed once and Begin/End-cycled as the
// inputs change.
type Controller struct {
	police  *events.PoliceBarEvent
	braking *events.BrakingEvent
	backup  *events.BackupEvent
	left    *events.SignalEvent
	right   *events.SignalEvent
	hazard  *events.SignalEvent

	active events.Event
}

func NewController(s strip.Strip, clock events.Clock, geo events.Geometry, colors events.Palette) *Controller {
	return &Controller{
		police:  events.NewPoliceBar(s, clock, geo, colors),
		braking: events.NewBraking(s, clock, geo, colors),
		backup:  events.NewBackup(s, clock, geo, colors),
		left:    events.NewSignal(s, clock, geo, colors, events.LeftTurn),
		right:   events.NewSignal(s, clock, geo, colors, events.RightTurn),
		hazard:  events.NewSignal(s, clock, geo, colors, events.Hazard),
	}
}

// Apply switches the active event to match the inputs: End the old one
// (blanking the strip), Begin the new one so its animation starts from its
// first phase.
func (c *Controller) Apply(state State) {
	want := c.selectEvent(state)
	if want == c.active {
		return
	}

	if c.active != nil {
		c.active.End()
	}
	c.active = want
	if want != nil {
		logger.With(zap.Any("state", state)).Debug("Switching lighting event")
		want.Begin()
	}
}

// selectEvent is the arbitration policy: police overrides everything, then
// braking, then reverse, then the signals (hazard before a single turn).
func (c *Controller) selectEvent(state State) events.Event {
	switch {
	case state.Police:
		return c.police
	case state.Brake:
		return c.braking
	case state.Reverse:
		return c.backup
	case state.Hazard:
		return c.hazard
	case state.LeftTurn:
		return c.left
	case state.RightTurn:
		return c.right
	}
	return nil
}

// Draw ticks the active event, if any.
func (c *Controller) Draw() {
	if c.active != nil {
		c.active.Draw()
	}
}

// Active returns the currently active event, or nil when the bar is dark.
func (c *Controller) Active() events.Event {
	return c.active
}

// Stop ends the active event, leaving the strip blanked.
func (c *Controller) Stop() {
	if c.active != nil {
		c.active.End()
		c.active = nil
	}
}
