package vehicle

import (
	"time"
)

// InputSource supplies the vehicle state each frame. Real deployments wire
// this to brake/reverse/turn-stalk GPIOs; the demo uses a scripted source.
type InputSource interface {
	State() State
}

// Step holds one scripted input state and how long it lasts.
type Step struct {
	State State
	For   time.Duration
}

// Script is a looping, time-driven input source: the current step is always
// recomputed from elapsed wall time, the same stateless pattern the
// animations use.
type Script struct {
	steps []Step
	total time.Duration
	start time.Time
}

var _ InputSource = (*Script)(nil)

func NewScript(steps []Step) *Script {
	var total time.Duration
	for _, s := range steps {
		total += s.For
	}
	return &Script{
		steps: steps,
		total: total,
		start: time.Now(),
	}
}

func (s *Script) State() State {
	if s.total == 0 {
		return State{}
	}

	pos := time.Since(s.start) % s.total
	for _, step := range s.steps {
		if pos < step.For {
			return step.State
		}
		pos -= step.For
	}
	return State{}
}

// DemoScript cycles through every event: left turn, right turn, hazards,
// braking, reverse, and the police bar, with dark gaps between them.
func DemoScript() []Step {
	return []Step{
		{State: State{LeftTurn: true}, For: 4 * time.Second},
		{State: State{}, For: time.Second},
		{State: State{RightTurn: true}, For: 4 * time.Second},
		{State: State{}, For: time.Second},
		{State: State{Hazard: true}, For: 4 * time.Second},
		{State: State{}, For: time.Second},
		{State: State{Brake: true}, For: 3 * time.Second},
		{State: State{}, For: time.Second},
		{State: State{Reverse: true}, For: 3 * time.Second},
		{State: State{}, For: time.Second},
		{State: State{Police: true}, For: 4 * time.Second},
		{State: State{}, For: 2 * time.Second},
	}
}
