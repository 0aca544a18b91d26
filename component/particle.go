package component

import (
	"github.com/lixenwraith/vinyl-slasher/core"
)

// Particle is a visual-only spark emitted by a slice
type Particle struct {
	Kinetic

	// Life fades from 1 to 0; the particle is removed at or below 0
	Life  float64
	Color core.RGB
}
