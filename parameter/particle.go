package parameter

// Spark field: falling embers during boot
const (
	SparkCount = 300

	// Spawn volume
	SparkSpawnHalfWidthX = 7.0
	SparkSpawnMinY       = -1.0
	SparkSpawnMaxY       = 9.0
	SparkSpawnHalfDepthZ = 9.0
	SparkSpawnCenterZ    = -3.0

	// Fall speed sampled per particle at spawn/recycle (units/sec)
	SparkSpeedMin   = 5.0
	SparkSpeedRange = 8.0

	// SparkJitterRate is the lateral wander amplitude (units/sec)
	SparkJitterRate = 3.0

	// Recycle below floor, respawn in a band above the ceiling
	SparkRecycleY    = -4.0
	SparkRespawnMinY = 8.0
	SparkRespawnMaxY = 12.0

	SparkSize = 0.18

	// Opacity = base + spark pulse * amplitude
	SparkOpacityBase      = 0.7
	SparkOpacityAmplitude = 0.3
)

// Circuit photons: flow along the floor toward the back of the stage
const (
	PhotonCount = 80

	PhotonSpawnHalfWidthX = 15.0
	PhotonFloorY          = -3.95
	PhotonSpawnHalfDepthZ = 15.0
	PhotonSpawnCenterZ    = -5.0

	PhotonSpeedMin   = 0.5
	PhotonSpeedRange = 0.5

	PhotonRecycleZ = -20.0
	PhotonRespawnZ = 10.0

	PhotonSize = 0.06

	// Opacity = base + base pulse * amplitude, both boot dependent
	PhotonOpacityBaseBooting      = 0.5
	PhotonOpacityBaseSteady       = 0.08
	PhotonOpacityAmplitudeBooting = 0.2
	PhotonOpacityAmplitudeSteady  = 0.04
)

// Simplex jitter sampling
const (
	// SimplexJitterScale is the spatial frequency of the noise field
	SimplexJitterScale = 0.35
	// SimplexJitterSpeed is how fast the field evolves (noise units/sec)
	SimplexJitterSpeed = 0.8
)
