package parameter

// Slice Particles
const (
	// ParticleBurstCount is the number of particles emitted per slice
	ParticleBurstCount = 5

	// ParticleSpeed is the fixed initial speed (surface units per frame)
	ParticleSpeed = 2.0

	// ParticleGravity is added to vertical velocity every frame
	ParticleGravity = 0.2

	// ParticleLifeStep is subtracted from life every frame, a particle lasts 50 frames
	ParticleLifeStep = 0.02
)

// ParticlePalette is the color set particles are drawn from
var ParticlePalette = []string{"#ff0080", "#00ffff", "#ffff00", "#ff00ff"}
