package vehicle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/davepl/brakelights/vehicle"
)

func TestScript_EmptyIsIdle(t *testing.T) {
	s := vehicle.NewScript(nil)
	assert.Equal(t, vehicle.State{}, s.State())
}

func TestScript_SingleStep(t *testing.T) {
	s := vehicle.NewScript([]vehicle.Step{
		{State: vehicle.State{Brake: true}, For: time.Hour},
	})
	assert.Equal(t, vehicle.State{Brake: true}, s.State())
}

func TestDemoScript_CoversEveryEvent(t *testing.T) {
	var brake, reverse, left, right, hazard, police bool
	for _, step := range vehicle.DemoScript() {
		brake = brake || step.State.Brake
		reverse = reverse || step.State.Reverse
		left = left || step.State.LeftTurn
		right = right || step.State.RightTurn
		hazard = hazard || step.State.Hazard
		police = police || step.State.Police
	}
	assert.True(t, brake)
	assert.True(t, reverse)
	assert.True(t, left)
	assert.True(t, right)
	assert.True(t, hazard)
	assert.True(t, police)
}
