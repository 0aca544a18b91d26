// Package effect emits and decays slice particles; nothing here touches game state
package effect

import (
	"math"

	"github.com/lixenwraith/vinyl-slasher/component"
	"github.com/lixenwraith/vinyl-slasher/core"
	"github.com/lixenwraith/vinyl-slasher/parameter"
	"github.com/lixenwraith/vinyl-slasher/vmath"
)

var palette = func() []core.RGB {
	out := make([]core.RGB, len(parameter.ParticlePalette))
	for i, h := range parameter.ParticlePalette {
		out[i] = core.MustHex(h)
	}
	return out
}()

// Burst appends parameter.ParticleBurstCount particles at origin to dst
// Directions are uniform over the lower half-plane, angle in [0, π)
func Burst(dst []component.Particle, src vmath.Source, origin vmath.Vec2) []component.Particle {
	for i := 0; i < parameter.ParticleBurstCount; i++ {
		angle := src.Float64() * math.Pi
		dst = append(dst, component.Particle{
			Kinetic: component.Kinetic{
				Pos: origin,
				Vel: vmath.FromAngle(angle, parameter.ParticleSpeed),
			},
			Life:  1,
			Color: vmath.Pick(src, palette),
		})
	}
	return dst
}

// Step advances every particle by one frame and compacts out the expired ones in place
func Step(particles []component.Particle) []component.Particle {
	alive := particles[:0]
	for _, p := range particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel.Y += parameter.ParticleGravity
		p.Life -= parameter.ParticleLifeStep
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	clear(particles[len(alive):])
	return alive
}

