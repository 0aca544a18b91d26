package component

import (
	"github.com/lixenwraith/vinyl-slasher/catalog"
	"github.com/lixenwraith/vinyl-slasher/core"
	"github.com/lixenwraith/vinyl-slasher/vmath"
)

// Appearance is the closed set of target looks: Plain or Special
type Appearance interface {
	appearance()
}

// Plain is an ordinary vinyl disc
type Plain struct {
	Color core.RGB
}

// Special carries an album; slicing it unlocks the album
type Special struct {
	Album *catalog.Album
}

func (Plain) appearance()   {}
func (Special) appearance() {}

// Target is a spawned vinyl flying across the play surface
type Target struct {
	Kinetic

	Rotation      float64 // radians
	RotationSpeed float64 // radians per frame
	Radius        float64

	Appearance Appearance

	// Sliced excludes the target from the rest of the frame in which it was hit
	Sliced bool
}

// Album returns the album of a Special target
func (t *Target) Album() (*catalog.Album, bool) {
	if s, ok := t.Appearance.(Special); ok && s.Album != nil {
		return s.Album, true
	}
	return nil, false
}

// Center returns the target position
func (t *Target) Center() vmath.Vec2 {
	return t.Pos
}
