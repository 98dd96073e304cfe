package parameter

// Floor grid
const (
	GridX, GridY, GridZ = 0.0, -4.0, -5.0
	GridSize            = 50.0

	// Booting: opacity = base + edge pulse * amplitude
	GridOpacityBootBase      = 0.4
	GridOpacityBootAmplitude = 0.35

	// Steady: opacity and heat decay toward these at GridDecayRate
	GridOpacitySteady = 0.1
	GridDecayRate     = 0.03

	GridCellColorHot     = "#660011"
	GridCellColorCool    = "#220000"
	GridSectionColor     = "#ff0033"
	GridCellThickHot     = 0.8
	GridCellThickCool    = 0.3
	GridSectionThickHot  = 1.8
	GridSectionThickCool = 0.5

	GridFadeDistance = 30.0
)
