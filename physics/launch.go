package physics

import (
	"github.com/lixenwraith/vinyl-slasher/parameter"
	"github.com/lixenwraith/vinyl-slasher/vmath"
)

// LaunchKind identifies the spawn branch
type LaunchKind uint8

const (
	// LaunchCenter rises near-vertically from the bottom center
	LaunchCenter LaunchKind = iota
	// LaunchLeft arcs inward from the left edge
	LaunchLeft
	// LaunchRight arcs inward from the right edge
	LaunchRight
)

// Launch is a sampled spawn origin and initial velocity
type Launch struct {
	Kind LaunchKind
	Pos  vmath.Vec2
	Vel  vmath.Vec2
}

// SampleLaunch draws an origin and velocity for a target of the given radius
// 20% center launches with small horizontal jitter, 80% edge launches split by a coin flip
func SampleLaunch(src vmath.Source, s Surface, radius float64) Launch {
	y := s.H - parameter.TargetLaunchInset

	if vmath.Chance(src, parameter.CenterLaunchChance) {
		x := s.W/2 + (src.Float64()-parameter.TargetCenterBias)*parameter.TargetCenterSpread
		vx := (src.Float64() - 0.5) * parameter.TargetCenterJitter
		vy := -vmath.Range(src, parameter.TargetLaunchSpeedMin, parameter.TargetLaunchSpeedSpan)
		return Launch{Kind: LaunchCenter, Pos: vmath.V(x, y), Vel: vmath.V(vx, vy)}
	}

	fromLeft := src.Float64() > 0.5
	speed := vmath.Range(src, parameter.TargetSideSpeedMin, parameter.TargetSideSpeedSpan)
	vy := -vmath.Range(src, parameter.TargetLaunchSpeedMin, parameter.TargetLaunchSpeedSpan)

	if fromLeft {
		return Launch{Kind: LaunchLeft, Pos: vmath.V(radius, y), Vel: vmath.V(speed, vy)}
	}
	return Launch{Kind: LaunchRight, Pos: vmath.V(s.W-radius, y), Vel: vmath.V(-speed, vy)}
}
