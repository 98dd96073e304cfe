package parameter

// Terminal projection
const (
	// CellAspect is terminal cell height over width
	CellAspect = 2.0

	// NearPlane culls points closer than this along the view axis
	NearPlane = 0.1

	// HUDRows reserved at the bottom of the screen
	HUDRows = 1

	// GridLineSpacing is world units between drawn grid lines, section lines only
	GridLineSpacing = 5.0

	// GridLineStep is the sampling step along a grid line
	GridLineStep = 0.5

	// MarkerBeamSamples is how many points draw a marker beam
	MarkerBeamSamples = 8
)

// GlyphMedium is the opacity below which line glyphs thin to a dot
const GlyphMedium = 0.3
