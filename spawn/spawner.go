// Package spawn creates targets, assigns album rewards, and paces spawn bursts
package spawn

import (
	"time"

	"github.com/lixenwraith/vinyl-slasher/catalog"
	"github.com/lixenwraith/vinyl-slasher/component"
	"github.com/lixenwraith/vinyl-slasher/core"
	"github.com/lixenwraith/vinyl-slasher/parameter"
	"github.com/lixenwraith/vinyl-slasher/physics"
	"github.com/lixenwraith/vinyl-slasher/vmath"
)

var vinylColors = func() []core.RGB {
	out := make([]core.RGB, len(parameter.VinylPalette))
	for i, h := range parameter.VinylPalette {
		out[i] = core.MustHex(h)
	}
	return out
}()

// Spawner produces targets from a random source and the album catalog
type Spawner struct {
	src         vmath.Source
	catalog     *catalog.Catalog
	rewardRatio float64
}

// NewSpawner creates a spawner; a nil or empty catalog yields plain targets only
func NewSpawner(src vmath.Source, cat *catalog.Catalog) *Spawner {
	return &Spawner{
		src:         src,
		catalog:     cat,
		rewardRatio: parameter.RewardChance,
	}
}

// Spawn creates one target, or returns false when the surface has no size yet
func (s *Spawner) Spawn(surface physics.Surface) (*component.Target, bool) {
	if !surface.Ready() {
		return nil, false
	}

	radius := vmath.Range(s.src, parameter.TargetRadiusMin, parameter.TargetRadiusSpan)
	color := vmath.Pick(s.src, vinylColors)

	var look component.Appearance = component.Plain{Color: color}
	if vmath.Chance(s.src, s.rewardRatio) {
		if album := s.catalog.Random(s.src); album != nil {
			look = component.Special{Album: album}
		}
	}

	launch := physics.SampleLaunch(s.src, surface, radius)

	return &component.Target{
		Kinetic:       component.Kinetic{Pos: launch.Pos, Vel: launch.Vel},
		Rotation:      s.src.Float64() * parameter.TargetFullTurn,
		RotationSpeed: (s.src.Float64() - 0.5) * parameter.TargetSpinMax,
		Radius:        radius,
		Appearance:    look,
	}, true
}

// BurstSize returns how many targets the next burst holds, 2 or 3
func (s *Spawner) BurstSize() int {
	return parameter.SpawnBurstMin + s.src.Intn(parameter.SpawnBurstExtra+1)
}

// Cadence decides when a burst is due, measured in session time
type Cadence struct {
	interval time.Duration
	last     time.Time
	primed   bool
}

// NewCadence creates a cadence firing every parameter.SpawnBurstInterval
func NewCadence() *Cadence {
	return &Cadence{interval: parameter.SpawnBurstInterval}
}

// Reset arms the cadence so the next Due call fires immediately
func (c *Cadence) Reset() {
	c.primed = false
	c.last = time.Time{}
}

// Due reports whether a burst should start at now, recording it if so
func (c *Cadence) Due(now time.Time) bool {
	if !c.primed || now.Sub(c.last) > c.interval {
		c.primed = true
		c.last = now
		return true
	}
	return false
}

// Stagger returns the delay of the i-th member of a burst
func Stagger(i int) time.Duration {
	return time.Duration(i) * parameter.SpawnStagger
}
