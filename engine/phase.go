package engine

// BootPhase is the stage-wide animation state
// The only transition is Booting -> Steady, owned by the stage orchestrator
type BootPhase uint8

const (
	PhaseBooting BootPhase = iota
	PhaseSteady
)

func (p BootPhase) String() string {
	switch p {
	case PhaseBooting:
		return "Booting"
	case PhaseSteady:
		return "Steady"
	default:
		return "Unknown"
	}
}

// IsBooting reports whether scripted boot animation is in control
func (p BootPhase) IsBooting() bool {
	return p == PhaseBooting
}
