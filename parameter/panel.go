package parameter

// Panel layout
const (
	// PanelSpacingX is horizontal distance between neighbouring panels
	PanelSpacingX = 0.9

	// Depth per index; the active panel is pulled further along -Z
	PanelDepthInactive = 1.6
	PanelDepthActive   = 2.0

	// PanelBootScale collapses panels to a near-singularity while booting
	PanelBootScale = 0.02

	// Active panel vertical bob
	PanelBobAmplitude = 0.05
	PanelBobFreq      = 2.0

	// Smoothing rates per 60 Hz reference frame
	PanelPositionRateBooting = 0.012
	PanelPositionRateSteady  = 0.08
	PanelScaleRate           = 0.025
	PanelBobRate             = 0.1
)

// Edge and inner glow opacity
const (
	PanelEdgeBootBase        = 0.5
	PanelEdgeBootAmplitude   = 0.4
	PanelEdgeActiveBase      = 0.6
	PanelEdgeActiveAmplitude = 0.2
	PanelEdgeInactive        = 0.25
	PanelInnerBootBase       = 0.3
	PanelInnerBootAmplitude  = 0.5
	PanelInnerActive         = 0.1
	PanelInnerInactive       = 0.0
)

// Panel group placement and surface
const (
	PanelGroupOffsetX = -2.0
	PanelGroupYaw     = -0.25

	PanelWidth  = 6.0
	PanelHeight = 4.0

	PanelTintActive   = "#180005"
	PanelTintInactive = "#050505"
	PanelEdgeColor    = "#ff0033"
	PanelInnerColor   = "#ffffff"
)
