package particle

import (
	"github.com/lixenwraith/aether-stage/engine"
	"github.com/lixenwraith/aether-stage/parameter"
	"github.com/lixenwraith/aether-stage/vmath"
)

// SparkConfig is the ambient ember field that falls through the stage during boot
func SparkConfig() Config {
	return Config{
		Name:  "sparks",
		Count: parameter.SparkCount,
		SpawnMin: vmath.V3F(
			-parameter.SparkSpawnHalfWidthX,
			parameter.SparkSpawnMinY,
			parameter.SparkSpawnCenterZ-parameter.SparkSpawnHalfDepthZ,
		),
		SpawnMax: vmath.V3F(
			parameter.SparkSpawnHalfWidthX,
			parameter.SparkSpawnMaxY,
			parameter.SparkSpawnCenterZ+parameter.SparkSpawnHalfDepthZ,
		),
		Axis:       vmath.AxisY,
		Direction:  -1,
		SpeedMin:   parameter.SparkSpeedMin,
		SpeedRange: parameter.SparkSpeedRange,
		Threshold:  parameter.SparkRecycleY,
		RespawnMin: parameter.SparkRespawnMinY,
		RespawnMax: parameter.SparkRespawnMaxY,
		RerollAxes: []vmath.Axis{vmath.AxisX},
		JitterAxes: []vmath.Axis{vmath.AxisX},
		JitterRate: parameter.SparkJitterRate,
		Size:       parameter.SparkSize,
		Color:      parameter.PanelEdgeColor,
	}
}

// PhotonConfig is the floor field flowing along -Z through the circuit grid
func PhotonConfig() Config {
	return Config{
		Name:  "photons",
		Count: parameter.PhotonCount,
		SpawnMin: vmath.V3F(
			-parameter.PhotonSpawnHalfWidthX,
			parameter.PhotonFloorY,
			parameter.PhotonSpawnCenterZ-parameter.PhotonSpawnHalfDepthZ,
		),
		SpawnMax: vmath.V3F(
			parameter.PhotonSpawnHalfWidthX,
			parameter.PhotonFloorY,
			parameter.PhotonSpawnCenterZ+parameter.PhotonSpawnHalfDepthZ,
		),
		Axis:       vmath.AxisZ,
		Direction:  -1,
		SpeedMin:   parameter.PhotonSpeedMin,
		SpeedRange: parameter.PhotonSpeedRange,
		Threshold:  parameter.PhotonRecycleZ,
		RespawnMin: parameter.PhotonRespawnZ,
		RespawnMax: parameter.PhotonRespawnZ,
		RerollAxes: []vmath.Axis{vmath.AxisX},
		Size:       parameter.PhotonSize,
		Color:      parameter.PanelEdgeColor,
	}
}

// SparkOpacity follows the spark harmonic
func SparkOpacity(p engine.Pulses) float64 {
	return parameter.SparkOpacityBase + p.Spark*parameter.SparkOpacityAmplitude
}

// PhotonOpacity follows the base harmonic with a boot-dependent amplitude
func PhotonOpacity(phase engine.BootPhase, p engine.Pulses) float64 {
	if phase.IsBooting() {
		return parameter.PhotonOpacityBaseBooting + p.Base*parameter.PhotonOpacityAmplitudeBooting
	}
	return parameter.PhotonOpacityBaseSteady + p.Base*parameter.PhotonOpacityAmplitudeSteady
}
