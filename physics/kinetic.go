// Package physics integrates target and particle motion and samples launch trajectories
package physics

import (
	"github.com/lixenwraith/vinyl-slasher/component"
	"github.com/lixenwraith/vinyl-slasher/parameter"
)

// Surface is the play surface size in surface units
type Surface struct {
	W, H float64
}

// Ready reports whether the surface has known dimensions
func (s Surface) Ready() bool {
	return s.W > 0 && s.H > 0
}

// Integrate performs one frame of projectile motion: v.y += g; p += v
func Integrate(k *component.Kinetic, gravity float64) {
	k.Vel.Y += gravity
	k.Pos = k.Pos.Add(k.Vel)
}

// StepTarget advances a target by one frame: gravity, position, rotation
func StepTarget(t *component.Target) {
	Integrate(&t.Kinetic, parameter.TargetGravity)
	t.Rotation += t.RotationSpeed
}

// Escaped reports a target that fell below the bottom edge by more than its radius
func Escaped(t *component.Target, height float64) bool {
	return t.Pos.Y > height+t.Radius
}
