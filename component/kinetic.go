package component

import "github.com/lixenwraith/vinyl-slasher/vmath"

// Kinetic holds position and velocity in surface units (per frame)
type Kinetic struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
}
