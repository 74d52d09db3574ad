package session

import "github.com/Faultbox/primforge/pkg/math"

// MinSnapStep is the smallest accepted snap step.
const MinSnapStep = 1e-4

// DefaultSnapStep is the snap step used when none is configured.
const DefaultSnapStep = 10

// Snap is the grid snapping configuration for the Move tool.
type Snap struct {
	Enabled bool
	Step    float32 // world units
}

// NewSnap builds a snap configuration, raising the step to MinSnapStep.
func NewSnap(enabled bool, step float32) Snap {
	return Snap{Enabled: enabled, Step: max(step, MinSnapStep)}
}

// Apply rounds v to the nearest multiple of the step.
func (s Snap) Apply(v float32) float32 {
	return math.Snap(v, max(s.Step, MinSnapStep))
}
