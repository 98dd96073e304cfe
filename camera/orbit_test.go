package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/aether-stage/parameter"
	"github.com/lixenwraith/aether-stage/vmath"
)

func TestOrbitStartsAtHandoffPose(t *testing.T) {
	o := NewOrbit(EndPose(), 60)
	pose := o.Pose()

	end := EndPose().Position
	assert.InDelta(t, end.X, pose.Position.X, 1e-9)
	assert.InDelta(t, end.Y, pose.Position.Y, 1e-9)
	assert.InDelta(t, end.Z, pose.Position.Z, 1e-9)
	assert.Equal(t, LookTarget(), pose.Target)

	// Still frames keep the pose still
	for i := 0; i < 30; i++ {
		pose = o.Update()
	}
	assert.InDelta(t, end.X, pose.Position.X, 1e-9)
}

func TestOrbitClampsDrag(t *testing.T) {
	o := NewOrbit(EndPose(), 60)

	o.Drag(10, 10)
	for i := 0; i < 600; i++ {
		o.Update()
	}
	az, polar := o.Angles()
	assert.InDelta(t, parameter.OrbitMaxAzimuth, az, 1e-6)
	assert.InDelta(t, parameter.OrbitMaxPolar, polar, 1e-6)

	o.Drag(-10, -10)
	for i := 0; i < 600; i++ {
		o.Update()
		az, polar = o.Angles()
		assert.GreaterOrEqual(t, az, parameter.OrbitMinAzimuth)
		assert.LessOrEqual(t, az, parameter.OrbitMaxAzimuth)
		assert.GreaterOrEqual(t, polar, parameter.OrbitMinPolar)
		assert.LessOrEqual(t, polar, parameter.OrbitMaxPolar)
	}
	assert.InDelta(t, parameter.OrbitMinAzimuth, az, 1e-6)
	assert.InDelta(t, parameter.OrbitMinPolar, polar, 1e-6)
}

func TestOrbitNoPan(t *testing.T) {
	o := NewOrbit(EndPose(), 30)
	radius := o.Radius()

	o.Drag(0.3, -0.05)
	for i := 0; i < 90; i++ {
		pose := o.Update()
		assert.Equal(t, LookTarget(), pose.Target)
		assert.InDelta(t, radius, vmath.V3FDist(pose.Position, pose.Target), 1e-9)
	}
}

func TestOrbitIgnoresNaNDrag(t *testing.T) {
	o := NewOrbit(EndPose(), 60)
	az, polar := o.Angles()

	o.Drag(math.NaN(), 0.1)
	o.Update()

	az2, polar2 := o.Angles()
	assert.Equal(t, az, az2)
	assert.Equal(t, polar, polar2)
}
