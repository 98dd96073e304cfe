package camera

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/aether-stage/engine"
	"github.com/lixenwraith/aether-stage/parameter"
	"github.com/lixenwraith/aether-stage/vmath"
)

func TestChoreographerBoundaries(t *testing.T) {
	c := NewChoreographer(parameter.BootDuration)

	assert.Equal(t, StartPose(), c.PoseAt(0))
	assert.Equal(t, EndPose(), c.PoseAt(parameter.BootDuration.Seconds()))

	// Clamped, no overshoot past the end waypoint
	for _, tm := range []float64{5.0, 5.0001, 7, 100} {
		assert.Equal(t, EndPose().Position, c.PoseAt(tm).Position, "t=%v", tm)
	}
	// Negative time pins to the start
	assert.Equal(t, StartPose().Position, c.PoseAt(-3).Position)
}

func TestChoreographerEasedPath(t *testing.T) {
	c := NewChoreographer(4 * time.Second)
	start, end := StartPose().Position, EndPose().Position

	pose := c.PoseAt(2)
	eased := 1 - 0.5*0.5*0.5
	assert.InDelta(t, vmath.Lerp(start.X, end.X, eased), pose.Position.X, 1e-12)
	assert.InDelta(t, vmath.Lerp(start.Y, end.Y, eased), pose.Position.Y, 1e-12)
	assert.InDelta(t, vmath.Lerp(start.Z, end.Z, eased), pose.Position.Z, 1e-12)
	assert.Equal(t, LookTarget(), pose.Target)

	// Distance to the end waypoint shrinks monotonically
	prev := vmath.V3FDist(start, end)
	for i := 1; i <= 100; i++ {
		d := vmath.V3FDist(c.PoseAt(float64(i)*0.04).Position, end)
		assert.LessOrEqual(t, d, prev)
		prev = d
	}
}

func TestChoreographerOneWayHandoff(t *testing.T) {
	c := NewChoreographer(parameter.BootDuration)

	pose, wrote := c.Update(engine.PhaseBooting, 1.0)
	assert.True(t, wrote)
	assert.Equal(t, c.PoseAt(1.0), pose)

	_, wrote = c.Update(engine.PhaseSteady, 5.0)
	assert.False(t, wrote)
	assert.True(t, c.Released())

	// A stray booting phase afterward never reclaims the camera
	last := c.Last()
	pose, wrote = c.Update(engine.PhaseBooting, 2.0)
	assert.False(t, wrote)
	assert.Equal(t, last, pose)
}

func TestChoreographerZeroDuration(t *testing.T) {
	c := NewChoreographer(0)
	assert.Equal(t, EndPose(), c.PoseAt(0))
}
